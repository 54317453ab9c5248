package http

import (
	"github.com/gin-gonic/gin"

	"agent-router/pkg/response"
)

// ProcessQuery godoc
// @Summary     Process a user query
// @Description Routes the query to the best-suited agent (summarizer, document Q&A or web search) or answers directly, then returns a natural language answer with a one-line justification of the choice.
// @Tags        Orchestrator
// @Accept      json
// @Produce     json
// @Param       body body processReq true "User prompt"
// @Success     200  {object} processResp
// @Failure     422  {object} response.ErrorResp "Validation Error"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /process_query [POST]
func (h *handler) ProcessQuery(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Unprocessable(c, err)
		return
	}

	h.l.Info(ctx, "internal.agent.delivery.http.ProcessQuery: request received",
		"prompt_size", len(req.UserPrompt),
	)

	output, err := h.uc.Process(ctx, req.UserPrompt)
	if err != nil {
		h.l.Errorf(ctx, "internal.agent.delivery.http.ProcessQuery: uc.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessResp(output))
}
