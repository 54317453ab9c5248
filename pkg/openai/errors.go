package openai

import (
	"errors"

	goopenai "github.com/sashabaranov/go-openai"
)

// StatusCode returns the HTTP status carried by a GenerateContent error,
// or 0 when the request never got an HTTP answer.
func StatusCode(err error) int {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
