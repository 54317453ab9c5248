package http

import (
	"errors"
	"net/http"

	"agent-router/internal/docqa"
	pkgErrors "agent-router/pkg/errors"
)

var errQueryRequired = errors.New("user_query must not be empty")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, docqa.ErrEmptyQuery):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.NewInternalError(err)
	}
}
