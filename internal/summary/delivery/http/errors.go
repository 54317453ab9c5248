package http

import (
	"errors"
	"net/http"

	"agent-router/internal/summary"
	pkgErrors "agent-router/pkg/errors"
)

var errDocumentRequired = errors.New("document_content must not be empty")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognized is reported as an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, summary.ErrEmptyDocument):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.NewInternalError(err)
	}
}
