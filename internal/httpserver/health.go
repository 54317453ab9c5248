package httpserver

import (
	"agent-router/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	BannerMessage = "Agent Router Microservice is running!"
	HealthVersion = "1.0.0"
	ServiceName   = "agent-router"
)

// ReadinessChecker is implemented by dependencies that can refuse traffic,
// such as the LLM manager when no provider initialized.
type ReadinessChecker interface {
	Ready() error
}

type statusResp struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func status(s string) statusResp {
	return statusResp{Status: s, Version: HealthVersion, Service: ServiceName}
}

// root handles the service banner
// @Summary Service banner
// @Description Confirm the service is running
// @Tags Health
// @Produce json
// @Success 200 {object} response.MessageResp
// @Router / [get]
func (srv HTTPServer) root(c *gin.Context) {
	response.OK(c, response.MessageResp{Message: BannerMessage})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} httpserver.statusResp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, status("healthy"))
}

// readyCheck reports 503 until every readiness checker passes.
// @Summary Readiness Check
// @Description Check if the API can reach an LLM provider
// @Tags Health
// @Produce json
// @Success 200 {object} httpserver.statusResp
// @Failure 503 {object} response.ErrorResp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	for _, rc := range srv.readiness {
		if err := rc.Ready(); err != nil {
			srv.l.Warnf(c.Request.Context(), "internal.httpserver.readyCheck: %v", err)
			response.Unavailable(c, err)
			return
		}
	}
	response.OK(c, status("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} httpserver.statusResp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, status("alive"))
}
