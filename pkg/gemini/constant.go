package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds one generateContent call
	DefaultTimeout = 60 * time.Second

	apiKeyHeader = "x-goog-api-key"
)
