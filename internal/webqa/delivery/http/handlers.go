package http

import (
	"github.com/gin-gonic/gin"

	"agent-router/pkg/response"
)

// SearchInternet godoc
// @Summary     Internet-Connected Agent
// @Description Answers a question from live web search results and returns the primary source URL.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Question"
// @Success     200  {object} searchResp
// @Failure     422  {object} response.ErrorResp "Validation Error"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /agent3/search_internet [POST]
func (h *handler) SearchInternet(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Unprocessable(c, err)
		return
	}

	h.l.Info(ctx, "internal.webqa.delivery.http.SearchInternet: request received", "query", req.UserQuery)

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.webqa.delivery.http.SearchInternet: uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}
