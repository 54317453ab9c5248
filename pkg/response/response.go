package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "agent-router/pkg/errors"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends err with the status code of its HTTPError, or 500 otherwise.
func Error(c *gin.Context, err error) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		c.JSON(httpErr.Code, ErrorResp{Detail: httpErr.Message})
		return
	}
	InternalError(c, err)
}

// InternalError sends 500 with the error text as detail.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResp{
		Detail: pkgErrors.NewInternalError(err).Message,
	})
}

// Unprocessable sends 422 for request bodies that fail binding or validation.
func Unprocessable(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResp{Detail: err.Error()})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ErrorResp{Detail: "Too many requests"})
}

// Unavailable sends 503 when a dependency the service needs is not ready.
func Unavailable(c *gin.Context, err error) {
	c.JSON(http.StatusServiceUnavailable, ErrorResp{Detail: err.Error()})
}
