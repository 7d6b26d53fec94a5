package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry    *prometheus.Registry
	analyses    *prometheus.CounterVec
	chats       *prometheus.CounterVec
	llmDuration *prometheus.HistogramVec
	uploadBytes prometheus.Counter
}

// New registers the service collectors on reg. A nil reg gets a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		analyses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_analyses_total",
				Help: "Total resume analyses by outcome",
			},
			[]string{"outcome"},
		),
		chats: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_replies_total",
				Help: "Total chat replies by outcome",
			},
			[]string{"outcome"},
		),
		llmDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "llm_request_duration_seconds",
				Help:    "Model request duration in seconds",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
			},
			[]string{"operation", "outcome"},
		),
		uploadBytes: factory.NewCounter(prometheus.CounterOpts{
			Name: "upload_bytes_total",
			Help: "Total bytes of uploaded resumes",
		}),
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// IncAnalysis counts a finished analysis.
func (m *Metrics) IncAnalysis(outcome string) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(outcome).Inc()
}

// IncChat counts a finished chat reply.
func (m *Metrics) IncChat(outcome string) {
	if m == nil {
		return
	}
	m.chats.WithLabelValues(outcome).Inc()
}

// ObserveLLM records the duration of one model call for operation.
func (m *Metrics) ObserveLLM(operation string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.llmDuration.WithLabelValues(operation, Outcome(err)).Observe(d.Seconds())
}

// AddUploadBytes adds n to the upload byte counter.
func (m *Metrics) AddUploadBytes(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.uploadBytes.Add(float64(n))
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	reg := m.Registry()
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}

// Outcome maps err to an outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
