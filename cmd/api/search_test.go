package main

import (
	"context"
	"errors"
	"testing"

	"agent-router/config"
	"agent-router/pkg/websearch"
)

func TestNewSearcher(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.SearchConfig
		wantName string
		wantErr  bool
	}{
		{
			name:     "tavily configured",
			cfg:      config.SearchConfig{Provider: "tavily", Tavily: config.TavilyConfig{APIKey: "k"}},
			wantName: "tavily",
		},
		{
			name:     "tavily without key",
			cfg:      config.SearchConfig{Provider: "tavily"},
			wantName: "tavily",
		},
		{
			name:     "tavily invalid timeout",
			cfg:      config.SearchConfig{Provider: "tavily", Timeout: "soon", Tavily: config.TavilyConfig{APIKey: "k"}},
			wantName: "tavily",
			wantErr:  true,
		},
		{
			name:     "google without engine id",
			cfg:      config.SearchConfig{Provider: "google", Google: config.GoogleSearchConfig{APIKey: "k"}},
			wantName: "google",
			wantErr:  true,
		},
		{
			name:     "google with api key",
			cfg:      config.SearchConfig{Provider: "google", Google: config.GoogleSearchConfig{APIKey: "k", EngineID: "cx"}},
			wantName: "google",
		},
		{
			name:     "unknown provider",
			cfg:      config.SearchConfig{Provider: "bing"},
			wantName: "bing",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := newSearcher(context.Background(), tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if s == nil {
				t.Fatal("searcher must never be nil")
			}
			if s.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.wantName)
			}
		})
	}
}

func TestNewSearcher_UnconfiguredFailsPerRequest(t *testing.T) {
	s, err := newSearcher(context.Background(), config.SearchConfig{Provider: "tavily"})
	if err != nil {
		t.Fatalf("missing key must not fail startup: %v", err)
	}
	if _, err := s.Search(context.Background(), "q", 5); !errors.Is(err, websearch.ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
