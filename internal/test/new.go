package test

import (
	"agent-router/internal/router"
	pkgLog "agent-router/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleRoute(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, router router.Router) Handler {
	return &handler{
		l:      l,
		router: router,
	}
}

// RegisterRoutes registers the dry-run endpoints under /test.
func RegisterRoutes(r gin.IRouter, h Handler) {
	g := r.Group("/test")
	g.POST("/route", h.HandleRoute)
	g.GET("/health", h.HandleHealthCheck)
}
