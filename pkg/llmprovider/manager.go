package llmprovider

import (
	"context"
	"fmt"
	"time"

	"agent-router/pkg/log"
	"agent-router/pkg/metrics"
)

// Manager tries providers in priority order. It is read-only after
// construction and safe for concurrent use; *Manager implements Generator.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config controls retries and fallback across providers.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int           // Attempts per provider, at least one is always made
	RetryDelay      time.Duration // Base delay, doubled after every failed attempt
	MaxTotalTimeout time.Duration // Bound on the whole chain, 0 disables it
}

// DefaultConfig is a single attempt against the first provider.
func DefaultConfig() *Config {
	return &Config{RetryAttempts: 1}
}

func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = DefaultConfig()
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Ready reports whether at least one provider can serve requests.
func (m *Manager) Ready() error {
	if len(m.providers) == 0 {
		return ErrNoProvidersConfigured
	}
	return nil
}

// Providers lists the provider names in the order they are tried.
func (m *Manager) Providers() []string {
	names := make([]string, 0, len(m.providers))
	for _, p := range m.providers {
		names = append(names, p.Name())
	}
	return names
}

// GenerateContent sends req to the first provider and, when fallback is
// enabled, to the following ones until one succeeds.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	tried := 0
	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				lastErr = err
			}
			return nil, fmt.Errorf("%w after %d provider(s): %w", ErrAllProvidersFailed, tried, lastErr)
		}

		tried++
		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}
	if len(req.Messages) == 0 {
		return fmt.Errorf("%w: no messages", ErrInvalidRequest)
	}
	return nil
}

// generateWithRetry calls one provider up to RetryAttempts times with
// exponential backoff. Errors that another attempt cannot fix end the loop.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := m.config.RetryDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		start := time.Now()
		resp, err := provider.GenerateContent(ctx, req)
		metrics.RecordLLMRequest(provider.Name(), time.Since(start), err)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if !retryable(err) {
			break
		}
		if attempt+1 < attempts {
			m.logger.Debug(ctx, "LLM attempt failed, retrying",
				"provider", provider.Name(),
				"attempt", attempt+1,
				"error", err.Error(),
			)
		}
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var input, output int
	if resp.Usage != nil {
		input, output = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	metrics.RecordLLMTokens(provider.Name(), input, output)

	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", input,
		"output_tokens", output,
	)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
