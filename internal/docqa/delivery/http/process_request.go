package http

import (
	"github.com/gin-gonic/gin"
)

// processRespondReq binds and validates the respond-to-query request body.
func (h *handler) processRespondReq(c *gin.Context) (respondReq, error) {
	var req respondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
