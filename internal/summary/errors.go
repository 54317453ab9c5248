package summary

import "errors"

var (
	ErrEmptyDocument = errors.New("document content is required")
)
