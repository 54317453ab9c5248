package openai

import "time"

const (
	// DefaultModel is the default OpenAI chat model.
	DefaultModel = "o4-mini-2025-04-16"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 60 * time.Second
)

// Base URLs of OpenAI-compatible vendors.
const (
	BaseURLOpenAI   = "https://api.openai.com/v1"
	BaseURLQwen     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	BaseURLDeepSeek = "https://api.deepseek.com/v1"
)

// Default models of the OpenAI-compatible vendors.
const (
	DefaultModelQwen     = "qwen-plus"
	DefaultModelDeepSeek = "deepseek-chat"
)
