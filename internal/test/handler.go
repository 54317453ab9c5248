package test

import (
	"net/http"
	"strings"

	"agent-router/internal/router"
	pkgLog "agent-router/pkg/log"
	"agent-router/pkg/response"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l      pkgLog.Logger
	router router.Router
}

// HandleRoute runs only the routing stage for a prompt
// @Summary Dry-run routing
// @Description Show which tool the orchestrator would select for a prompt, and with which arguments, without executing it
// @Tags test
// @Accept json
// @Produce json
// @Param request body RouteRequest true "Prompt to route"
// @Success 200 {object} RouteResponse
// @Failure 422 {object} response.ErrorResp "Validation Error"
// @Failure 500 {object} RouteResponse
// @Router /test/route [post]
func (h *handler) HandleRoute(c *gin.Context) {
	ctx := c.Request.Context()

	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Unprocessable(c, err)
		return
	}
	if strings.TrimSpace(req.UserPrompt) == "" {
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResp{Detail: "user_prompt must not be empty"})
		return
	}

	decision, err := h.router.Route(ctx, req.UserPrompt)
	if err != nil {
		h.l.Errorf(ctx, "internal.test.HandleRoute: Routing failed: %v", err)
		c.JSON(http.StatusInternalServerError, RouteResponse{
			Success: false,
			Error:   "Routing failed",
			Details: err.Error(),
		})
		return
	}

	resp := RouteResponse{
		Success:   true,
		Selection: decision.Selection.String(),
		ToolName:  decision.ToolName,
		Known:     decision.Direct() || decision.Selection.IsTool(),
		Args:      decision.Args,
		Text:      decision.Text,
	}

	h.l.Infof(ctx, "internal.test.HandleRoute: selection=%q tool=%q", resp.Selection, resp.ToolName)

	c.JSON(http.StatusOK, resp)
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
