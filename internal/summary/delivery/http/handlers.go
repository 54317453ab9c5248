package http

import (
	"github.com/gin-gonic/gin"

	"agent-router/pkg/response"
)

// Summarize godoc
// @Summary     Document Summarizer and Keyword Extractor
// @Description Summarizes the given document content and extracts a list of keywords.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body summarizeReq true "Document to summarize"
// @Success     200  {object} summarizeResp
// @Failure     422  {object} response.ErrorResp "Validation Error"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /agent1/summarize [POST]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummarizeReq(c)
	if err != nil {
		response.Unprocessable(c, err)
		return
	}

	h.l.Info(ctx, "internal.summary.delivery.http.Summarize: request received", "document_length", len(req.DocumentContent))

	output, err := h.uc.Summarize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.summary.delivery.http.Summarize: uc.Summarize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummarizeResp(output))
}
