package http

import (
	"errors"

	pkgErrors "agent-router/pkg/errors"
)

var errPromptRequired = errors.New("user_prompt must not be empty")

// mapError translates orchestration errors into HTTP errors from pkg/errors.
// Only the Route stage can fail a request, and that is always a 500.
func (h *handler) mapError(err error) error {
	return pkgErrors.NewInternalError(err)
}
