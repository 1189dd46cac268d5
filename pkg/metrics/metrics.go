// Package metrics exposes Prometheus instruments for the voice command pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for CommandsTotal.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the service's Prometheus collectors.
//
// Metrics:
//   - voice_commands_total{intent,outcome} - commands handled
//   - voice_llm_request_duration_seconds{provider,outcome} - model call latency
//   - voice_task_store_size - number of tasks in each snapshot after a command
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	CommandsTotal      *prometheus.CounterVec
	LLMRequestDuration *prometheus.HistogramVec
	TaskStoreSize      prometheus.Histogram
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests
// so repeated construction does not collide.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voice_commands_total",
				Help: "Total number of voice commands processed",
			},
			[]string{"intent", "outcome"},
		),
		LLMRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "voice_llm_request_duration_seconds",
				Help:    "Duration of LLM provider calls in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			},
			[]string{"provider", "outcome"},
		),
		TaskStoreSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "voice_task_store_size",
				Help:    "Number of tasks in the snapshot returned after a command",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 250},
			},
		),
	}
}

// RecordCommand counts one processed command. intent may be empty when the
// transcript could not be interpreted.
func (m *Metrics) RecordCommand(intent string, err error) {
	if m == nil {
		return
	}
	if intent == "" {
		intent = "unknown"
	}
	m.CommandsTotal.WithLabelValues(intent, outcome(err)).Inc()
}

// ObserveLLMRequest matches llmprovider.Observer.
func (m *Metrics) ObserveLLMRequest(provider string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.LLMRequestDuration.WithLabelValues(provider, outcome(err)).Observe(elapsed.Seconds())
}

// ObserveStoreSize records the size of a returned snapshot.
func (m *Metrics) ObserveStoreSize(n int) {
	if m == nil {
		return
	}
	m.TaskStoreSize.Observe(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
