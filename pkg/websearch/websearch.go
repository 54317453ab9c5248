package websearch

import (
	"context"
	"errors"
	"time"

	"agent-router/pkg/metrics"
)

// DefaultMaxResults is the number of results requested per query.
const DefaultMaxResults = 5

// ErrNotConfigured is returned by a searcher whose backend has no credentials.
var ErrNotConfigured = errors.New("web search is not configured")

// Result is one search hit. Empty fields mean the backend did not supply them.
type Result struct {
	Title   string
	URL     string
	Snippet string
}

// Searcher queries a web search backend.
// Implementations are safe for concurrent use.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
	Name() string
}

type unavailable struct {
	name string
	err  error
}

// Unavailable returns a Searcher that fails every call with err.
// It lets the service start without search credentials.
func Unavailable(name string, err error) Searcher {
	return unavailable{name: name, err: err}
}

func (u unavailable) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	return nil, u.err
}

func (u unavailable) Name() string { return u.name }

type instrumented struct {
	next Searcher
}

// Instrument records call metrics around s.
func Instrument(s Searcher) Searcher {
	return instrumented{next: s}
}

func (i instrumented) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	start := time.Now()
	results, err := i.next.Search(ctx, query, maxResults)
	metrics.RecordSearch(i.next.Name(), time.Since(start), err)
	return results, err
}

func (i instrumented) Name() string { return i.next.Name() }
