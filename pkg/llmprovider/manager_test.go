package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// scriptedProvider returns errs in order, then text once errs run out.
type scriptedProvider struct {
	name  string
	errs  []error
	text  string
	calls []time.Time
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.calls = append(p.calls, time.Now())
	if n := len(p.calls); n <= len(p.errs) {
		return nil, p.errs[n-1]
	}
	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: p.text}}},
		ProviderName: p.name,
		ModelName:    p.name + "-model",
		Usage:        &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}, nil
}

func (p *scriptedProvider) Name() string  { return p.name }
func (p *scriptedProvider) Model() string { return p.name + "-model" }

func failing(name string, n int) *scriptedProvider {
	p := &scriptedProvider{name: name}
	for i := 0; i < n; i++ {
		p.errs = append(p.errs, errors.New(name+" unavailable"))
	}
	return p
}

type mockLogger struct {
	infos []string
	warns []string
}

func first(arg []any) string {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			return msg
		}
	}
	return ""
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    { m.infos = append(m.infos, first(arg)) }
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    { m.warns = append(m.warns, first(arg)) }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func ping() *Request { return NewTextRequest("", "ping") }

func TestGenerateContent(t *testing.T) {
	tests := []struct {
		name      string
		providers []*scriptedProvider
		cfg       *Config
		wantText  string
		wantFrom  string
		wantErr   bool
		wantCalls []int
	}{
		{
			name:      "primary answers",
			providers: []*scriptedProvider{{name: "primary", text: "hi"}, {name: "secondary", text: "unused"}},
			cfg:       &Config{FallbackEnabled: true, RetryAttempts: 3},
			wantText:  "hi",
			wantFrom:  "primary",
			wantCalls: []int{1, 0},
		},
		{
			name:      "falls back after retries",
			providers: []*scriptedProvider{failing("primary", 2), {name: "secondary", text: "from secondary"}},
			cfg:       &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantText:  "from secondary",
			wantFrom:  "secondary",
			wantCalls: []int{2, 1},
		},
		{
			name:      "retry recovers on same provider",
			providers: []*scriptedProvider{{name: "primary", errs: []error{errors.New("blip")}, text: "second try"}},
			cfg:       &Config{RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantText:  "second try",
			wantFrom:  "primary",
			wantCalls: []int{2},
		},
		{
			name:      "no fallback when disabled",
			providers: []*scriptedProvider{failing("primary", 1), {name: "secondary", text: "unused"}},
			cfg:       &Config{FallbackEnabled: false, RetryAttempts: 1},
			wantErr:   true,
			wantCalls: []int{1, 0},
		},
		{
			name:      "every provider fails",
			providers: []*scriptedProvider{failing("primary", 3), failing("secondary", 3)},
			cfg:       &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond},
			wantErr:   true,
			wantCalls: []int{3, 3},
		},
		{
			name:      "zero retry attempts still tries once",
			providers: []*scriptedProvider{failing("primary", 1)},
			cfg:       &Config{RetryAttempts: 0},
			wantErr:   true,
			wantCalls: []int{1},
		},
		{
			name:      "nil config is a single attempt",
			providers: []*scriptedProvider{failing("primary", 1), {name: "secondary"}},
			wantErr:   true,
			wantCalls: []int{1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers := make([]Provider, 0, len(tt.providers))
			for _, p := range tt.providers {
				providers = append(providers, p)
			}
			logger := &mockLogger{}
			m := NewManager(providers, tt.cfg, logger)

			resp, err := m.GenerateContent(context.Background(), ping())
			if tt.wantErr {
				if !errors.Is(err, ErrAllProvidersFailed) {
					t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
				}
				if len(logger.infos) != 0 {
					t.Errorf("unexpected success log: %v", logger.infos)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.Text() != tt.wantText || resp.ProviderName != tt.wantFrom {
					t.Errorf("got %q from %s, want %q from %s", resp.Text(), resp.ProviderName, tt.wantText, tt.wantFrom)
				}
				if len(logger.infos) != 1 {
					t.Errorf("expected one success log, got %v", logger.infos)
				}
			}
			for i, want := range tt.wantCalls {
				if got := len(tt.providers[i].calls); got != want {
					t.Errorf("provider %s called %d times, want %d", tt.providers[i].name, got, want)
				}
			}
		})
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	p := &scriptedProvider{name: "primary", text: "unused"}
	m := NewManager([]Provider{p}, nil, &mockLogger{})

	for name, req := range map[string]*Request{"nil": nil, "empty": {}} {
		if _, err := m.GenerateContent(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("%s: expected ErrInvalidRequest, got %v", name, err)
		}
	}
	if len(p.calls) != 0 {
		t.Errorf("provider must not be called for invalid requests, got %d calls", len(p.calls))
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	m := NewManager(nil, nil, &mockLogger{})
	if _, err := m.GenerateContent(context.Background(), ping()); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
	if !errors.Is(m.Ready(), ErrNoProvidersConfigured) {
		t.Errorf("Ready() should report missing providers")
	}
}

func TestGenerateContent_RejectedRequestIsNotRetried(t *testing.T) {
	rejected := classify("primary", 400, errors.New("bad schema"))
	primary := &scriptedProvider{name: "primary", errs: []error{rejected, rejected, rejected}}
	secondary := &scriptedProvider{name: "secondary", text: "ok"}
	m := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 3}, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), ping())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(primary.calls) != 1 {
		t.Errorf("rejected request retried: %d calls", len(primary.calls))
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("expected fallback to secondary, got %s", resp.ProviderName)
	}
}

func TestGenerateContent_BackoffDoubles(t *testing.T) {
	delay := 20 * time.Millisecond
	p := failing("primary", 3)
	m := NewManager([]Provider{p}, &Config{RetryAttempts: 3, RetryDelay: delay}, &mockLogger{})

	if _, err := m.GenerateContent(context.Background(), ping()); err == nil {
		t.Fatal("expected error")
	}
	if len(p.calls) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(p.calls))
	}
	if gap := p.calls[1].Sub(p.calls[0]); gap < delay {
		t.Errorf("first retry after %v, want at least %v", gap, delay)
	}
	if gap := p.calls[2].Sub(p.calls[1]); gap < 2*delay {
		t.Errorf("second retry after %v, want at least %v", gap, 2*delay)
	}
}

func TestGenerateContent_CancelledContext(t *testing.T) {
	p := &scriptedProvider{name: "primary", text: "unused"}
	m := NewManager([]Provider{p}, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.GenerateContent(ctx, ping())
	if !errors.Is(err, ErrAllProvidersFailed) || !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation wrapped in ErrAllProvidersFailed, got %v", err)
	}
	if len(p.calls) != 0 {
		t.Errorf("provider called after cancellation")
	}
}

func TestGenerateContent_MaxTotalTimeout(t *testing.T) {
	p := failing("primary", 5)
	m := NewManager([]Provider{p}, &Config{
		RetryAttempts:   5,
		RetryDelay:      50 * time.Millisecond,
		MaxTotalTimeout: 30 * time.Millisecond,
	}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), ping())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if len(p.calls) != 1 {
		t.Errorf("expected the deadline to stop retries after 1 call, got %d", len(p.calls))
	}
}

func TestManager_Providers(t *testing.T) {
	m := NewManager([]Provider{&scriptedProvider{name: "qwen"}, &scriptedProvider{name: "gemini"}}, nil, &mockLogger{})
	got := m.Providers()
	if len(got) != 2 || got[0] != "qwen" || got[1] != "gemini" {
		t.Errorf("unexpected provider order: %v", got)
	}
	if err := m.Ready(); err != nil {
		t.Errorf("Ready() = %v", err)
	}
}

func TestClassify(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name      string
		status    int
		err       error
		kind      error
		retryable bool
	}{
		{"rate limited", 429, cause, ErrProviderRateLimited, true},
		{"bad request", 400, cause, ErrInvalidRequest, false},
		{"unprocessable", 422, cause, ErrInvalidRequest, false},
		{"gateway timeout", 504, cause, ErrProviderTimeout, true},
		{"deadline", 0, context.DeadlineExceeded, ErrProviderTimeout, true},
		{"unclassified", 500, cause, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("openai", tt.status, tt.err)
			if !errors.Is(err, tt.err) {
				t.Errorf("cause lost: %v", err)
			}
			if tt.kind != nil && !errors.Is(err, tt.kind) {
				t.Errorf("expected kind %v, got %v", tt.kind, err)
			}
			if retryable(err) != tt.retryable {
				t.Errorf("retryable = %v, want %v", !tt.retryable, tt.retryable)
			}
			var pe *ProviderError
			if !errors.As(err, &pe) || pe.Provider != "openai" {
				t.Errorf("expected ProviderError for openai, got %#v", err)
			}
		})
	}

	if retryable(context.Canceled) {
		t.Error("cancellation must not be retried")
	}
}
