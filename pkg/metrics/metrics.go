package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agent_router"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"method", "route"})

	llmRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "llm_requests_total",
		Help:      "Total number of LLM generation requests per provider",
	}, []string{"provider", "status"})

	llmLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "llm_request_duration_seconds",
		Help:      "LLM generation latency in seconds",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
	}, []string{"provider"})

	llmTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "llm_tokens_total",
		Help:      "Total tokens consumed per provider",
	}, []string{"provider", "direction"}) // direction: "input" or "output"

	searchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_requests_total",
		Help:      "Total number of web search requests",
	}, []string{"provider", "status"})

	searchLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_request_duration_seconds",
		Help:      "Web search latency in seconds",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"provider"})

	toolSelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tool_selections_total",
		Help:      "Orchestrator routing decisions by selection",
	}, []string{"selection"})

	finalizeOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "finalize_parse_outcomes_total",
		Help:      "Outcomes of parsing the final formatted answer",
	}, []string{"outcome"})

	rateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_requests_total",
		Help:      "Requests rejected by the rate limiter",
	})
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(method, route string, code int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, statusClass(code)).Inc()
	httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordLLMRequest records one generation attempt against a provider.
func RecordLLMRequest(provider string, elapsed time.Duration, err error) {
	llmRequests.WithLabelValues(provider, status(err)).Inc()
	llmLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// RecordLLMTokens records token usage reported by a provider.
func RecordLLMTokens(provider string, input, output int) {
	llmTokens.WithLabelValues(provider, "input").Add(float64(input))
	llmTokens.WithLabelValues(provider, "output").Add(float64(output))
}

// RecordSearch records one web search call.
func RecordSearch(provider string, elapsed time.Duration, err error) {
	searchRequests.WithLabelValues(provider, status(err)).Inc()
	searchLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// RecordToolSelection records the orchestrator's routing decision.
func RecordToolSelection(selection string) {
	toolSelections.WithLabelValues(selection).Inc()
}

// RecordFinalizeOutcome records how the final answer was parsed.
func RecordFinalizeOutcome(outcome string) {
	finalizeOutcomes.WithLabelValues(outcome).Inc()
}

// RecordRateLimited records a rejected request.
func RecordRateLimited() {
	rateLimited.Inc()
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
