package tavily

import "time"

const (
	DefaultBaseURL = "https://api.tavily.com"
	DefaultTimeout = 30 * time.Second

	searchPath  = "/search"
	searchDepth = "basic"
)
