// Package metrics collects Prometheus metrics for backend calls and generation polling.
package metrics

import (
	"strconv"
	"time"

	"blogpilot/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is used by the backend client and the generation poller.
type Recorder interface {
	RecordAPICall(endpoint string, statusCode int, duration time.Duration)
	RecordAPIFailure(endpoint string, kind string)
	RecordFallback(endpoint string)
	RecordJobStarted()
	RecordJobFinished(status string, duration time.Duration)
	RecordSlotResolved()
	RecordProbe(found bool)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	apiCalls      *prometheus.CounterVec
	apiFailures   *prometheus.CounterVec
	apiLatency    *prometheus.HistogramVec
	fallbacks     *prometheus.CounterVec
	jobsStarted   prometheus.Counter
	jobsFinished  *prometheus.CounterVec
	jobDuration   prometheus.Histogram
	slotsResolved prometheus.Counter
	probes        *prometheus.CounterVec
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	c := &Collector{
		apiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_calls_total",
			Help:      "Backend calls by endpoint and HTTP status.",
		}, []string{"endpoint", "status_code"}),
		apiFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_failures_total",
			Help:      "Failed backend calls by endpoint and error kind.",
		}, []string{"endpoint", "kind"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_latency_seconds",
			Help:      "Backend call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_fallbacks_total",
			Help:      "Reads answered with a fallback value.",
		}, []string{"endpoint"}),
		jobsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_jobs_started_total",
			Help:      "Generation jobs submitted.",
		}),
		jobsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_jobs_finished_total",
			Help:      "Generation jobs by terminal status.",
		}, []string{"status"}),
		jobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_job_duration_seconds",
			Help:      "Time from submit to terminal status.",
			Buckets:   []float64{1, 2, 5, 10, 20, 30, 60, 120, 180, 300},
		}),
		slotsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_slots_resolved_total",
			Help:      "Image placeholders replaced by a rendered image.",
		}),
		probes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_probes_total",
			Help:      "Image existence checks by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.apiCalls,
		c.apiFailures,
		c.apiLatency,
		c.fallbacks,
		c.jobsStarted,
		c.jobsFinished,
		c.jobDuration,
		c.slotsResolved,
		c.probes,
	)

	return c
}

// RecordAPICall records a completed HTTP exchange.
func (c *Collector) RecordAPICall(endpoint string, statusCode int, duration time.Duration) {
	c.apiCalls.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
	c.apiLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordAPIFailure records a failed call.
func (c *Collector) RecordAPIFailure(endpoint string, kind string) {
	c.apiFailures.WithLabelValues(endpoint, kind).Inc()
}

// RecordFallback records a read answered with its fallback value.
func (c *Collector) RecordFallback(endpoint string) {
	c.fallbacks.WithLabelValues(endpoint).Inc()
}

// RecordJobStarted records a submitted generation job.
func (c *Collector) RecordJobStarted() {
	c.jobsStarted.Inc()
}

// RecordJobFinished records a job reaching a terminal status.
func (c *Collector) RecordJobFinished(status string, duration time.Duration) {
	c.jobsFinished.WithLabelValues(status).Inc()
	c.jobDuration.Observe(duration.Seconds())
}

// RecordSlotResolved records one resolved image slot.
func (c *Collector) RecordSlotResolved() {
	c.slotsResolved.Inc()
}

// RecordProbe records one image existence check.
func (c *Collector) RecordProbe(found bool) {
	result := "missing"
	if found {
		result = "found"
	}
	c.probes.WithLabelValues(result).Inc()
}

// Nop discards everything. Used when metrics are disabled and in tests.
type Nop struct{}

func (Nop) RecordAPICall(string, int, time.Duration) {}
func (Nop) RecordAPIFailure(string, string)          {}
func (Nop) RecordFallback(string)                    {}
func (Nop) RecordJobStarted()                        {}
func (Nop) RecordJobFinished(string, time.Duration)  {}
func (Nop) RecordSlotResolved()                      {}
func (Nop) RecordProbe(bool)                         {}

// New returns a Collector registered with the default registry, or Nop when
// metrics are disabled.
func New(cfg *config.Config) Recorder {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return Nop{}
	}

	return NewCollector(prometheus.DefaultRegisterer, cfg.Metrics.Namespace)
}
