package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"agent-router/config"
	"agent-router/pkg/gemini"
	"agent-router/pkg/openai"
)

// openAICompatible lists the vendors served through the OpenAI chat API,
// with the endpoint and model used when the config leaves them empty.
var openAICompatible = map[string]struct{ baseURL, model string }{
	"openai":   {openai.BaseURLOpenAI, openai.DefaultModel},
	"qwen":     {openai.BaseURLQwen, openai.DefaultModelQwen},
	"alibaba":  {openai.BaseURLQwen, openai.DefaultModelQwen},
	"deepseek": {openai.BaseURLDeepSeek, openai.DefaultModelDeepSeek},
}

// InitializeProviders builds the enabled providers in ascending priority.
// A provider that cannot be built is skipped and reported as a warning;
// the error is only returned when nothing usable remains.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []string, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}
	sort.SliceStable(enabled, func(i, j int) bool { return enabled[i].Priority < enabled[j].Priority })

	var (
		providers []Provider
		warnings  []string
	)
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, warnings, fmt.Errorf("no providers successfully initialized: %s", strings.Join(warnings, "; "))
	}
	return providers, warnings, nil
}

// NewManagerConfig converts config.LLMConfig durations into a manager Config.
func NewManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	retryDelay, err := parseDuration(cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("invalid llm.retry_delay: %w", err)
	}
	maxTotal, err := parseDuration(cfg.MaxTotalTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid llm.max_total_timeout: %w", err)
	}
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	timeout, err := parseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("provider %s: invalid timeout: %w", cfg.Name, err)
	}

	if cfg.Name == "gemini" {
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil
	}

	vendor, ok := openAICompatible[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
	ocfg := openai.Config{APIKey: cfg.APIKey, BaseURL: vendor.baseURL, Model: vendor.model, Timeout: timeout}
	if cfg.BaseURL != "" {
		ocfg.BaseURL = cfg.BaseURL
	}
	if cfg.Model != "" {
		ocfg.Model = cfg.Model
	}
	client, err := openai.New(ocfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
	}
	return NewOpenAIAdapter(cfg.Name, client), nil
}

func parseDuration(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	return time.ParseDuration(raw)
}
