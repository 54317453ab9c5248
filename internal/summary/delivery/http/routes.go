package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(r gin.IRouter, h *handler) {
	r.POST("/agent1/summarize", h.Summarize)
}
