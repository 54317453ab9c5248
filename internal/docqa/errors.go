package docqa

import "errors"

var (
	ErrEmptyQuery = errors.New("query is required")
)
