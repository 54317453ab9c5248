package main

import (
	"context"
	"fmt"

	"agent-router/config"
	"agent-router/pkg/gsearch"
	"agent-router/pkg/tavily"
	"agent-router/pkg/websearch"
)

// newSearcher builds the configured web search backend. A backend that
// cannot be built is replaced by one that fails every search, so the
// service still starts and the other agents keep working.
func newSearcher(ctx context.Context, cfg config.SearchConfig) (websearch.Searcher, error) {
	switch cfg.Provider {
	case "tavily":
		if cfg.Tavily.APIKey == "" {
			return websearch.Unavailable("tavily", websearch.ErrNotConfigured), nil
		}
		client, err := tavily.New(tavily.Config{
			APIKey:  cfg.Tavily.APIKey,
			BaseURL: cfg.Tavily.BaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return websearch.Unavailable("tavily", err), err
		}
		return websearch.Instrument(client), nil

	case "google":
		client, err := gsearch.New(ctx, gsearch.Config{
			APIKey:          cfg.Google.APIKey,
			EngineID:        cfg.Google.EngineID,
			CredentialsPath: cfg.Google.CredentialsPath,
		})
		if err != nil {
			return websearch.Unavailable("google", err), err
		}
		return websearch.Instrument(client), nil

	default:
		err := fmt.Errorf("unknown search provider %q", cfg.Provider)
		return websearch.Unavailable(cfg.Provider, err), err
	}
}
