package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processQueryReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
