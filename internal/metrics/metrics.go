// Package metrics holds the Prometheus collectors of the extraction service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "voice_task_extractor"

// Rejection reasons.
const (
	ReasonEmptyInput         = "empty_input"
	ReasonTooLong            = "too_long"
	ReasonTranscriptionLimit = "transcription_limit"
	ReasonTaskLimit          = "task_limit"
	ReasonRateLimit          = "rate_limit"
)

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	extractions     *prometheus.CounterVec
	tasks           *prometheus.CounterVec
	duplicates      prometheus.Counter
	rejections      *prometheus.CounterVec
	extractDuration prometheus.Histogram
}

// New registers the collectors on a fresh registry together with the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Transcriptions run through the task extractor, by delivery channel.",
		}, []string{"channel"}),
		tasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_extracted_total",
			Help:      "Tasks handed back to callers, by priority.",
		}, []string{"priority"}),
		duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_deduplicated_total",
			Help:      "Extracted tasks dropped because the caller already had them.",
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Requests refused before or after extraction, by reason.",
		}, []string{"reason"}),
		extractDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_duration_seconds",
			Help:      "Time spent inside the extractor per transcription.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}),
	}

	m.registry.MustRegister(
		m.extractions,
		m.tasks,
		m.duplicates,
		m.rejections,
		m.extractDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveExtraction(channel string, took time.Duration) {
	m.extractions.WithLabelValues(channel).Inc()
	m.extractDuration.Observe(took.Seconds())
}

func (m *Metrics) AddTasks(priority string, n int) {
	if n > 0 {
		m.tasks.WithLabelValues(priority).Add(float64(n))
	}
}

func (m *Metrics) AddDuplicates(n int) {
	if n > 0 {
		m.duplicates.Add(float64(n))
	}
}

func (m *Metrics) Reject(reason string) {
	m.rejections.WithLabelValues(reason).Inc()
}
