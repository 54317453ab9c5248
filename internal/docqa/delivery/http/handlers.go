package http

import (
	"github.com/gin-gonic/gin"

	"agent-router/pkg/response"
)

// RespondToQuery godoc
// @Summary     Query Responder
// @Description Responds to a user query based on the provided documents.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body respondReq true "Query and context documents"
// @Success     200  {object} respondResp
// @Failure     422  {object} response.ErrorResp "Validation Error"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /agent2/respond_to_query [POST]
func (h *handler) RespondToQuery(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRespondReq(c)
	if err != nil {
		response.Unprocessable(c, err)
		return
	}

	h.l.Info(ctx, "internal.docqa.delivery.http.RespondToQuery: request received",
		"query", req.UserQuery,
		"documents", len(req.DocumentsList),
	)

	output, err := h.uc.Answer(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.docqa.delivery.http.RespondToQuery: uc.Answer: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRespondResp(output))
}
