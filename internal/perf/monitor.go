// Package perf measures calculation times.
package perf

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/tartampluch/age-calculator/internal/config"
)

// Report summarizes the recent calculations.
type Report struct {
	Total           int64         `json:"totalCalculations"`
	Slow            int64         `json:"slowCalculations"`
	Average         time.Duration `json:"averageCalculationTime"`
	Recommendations []string      `json:"recommendations"`
}

// Monitor records calculation durations into Prometheus collectors, which hold
// the totals, and keeps the last config.CalculationWindowSize timings for the
// rolling average.
// It is safe for concurrent use.
type Monitor struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	slow         prometheus.Counter

	mu     sync.Mutex
	window []time.Duration
	next   int
}

// NewMonitor creates a Monitor with its own registry, so several instances
// (tests, GUI and CLI) never clash on registration.
func NewMonitor() *Monitor {
	m := &Monitor{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricCalculationsTotal,
			Help:      config.HelpCalculationsTotal,
		}, []string{config.MetricLabelOperation}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricCalculationDuration,
			Help:      config.HelpCalculationDuration,
			Buckets:   config.CalculationBuckets,
		}, []string{config.MetricLabelOperation}),
		slow: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricSlowCalculations,
			Help:      config.HelpSlowCalculations,
		}),
		window: make([]time.Duration, 0, config.CalculationWindowSize),
	}
	m.registry.MustRegister(m.calculations, m.duration, m.slow)
	return m
}

// Registry exposes the collectors, e.g. for gathering in tests or an exporter.
func (m *Monitor) Registry() *prometheus.Registry {
	return m.registry
}

// Track runs fn and records its duration under op.
func (m *Monitor) Track(op string, fn func()) {
	start := time.Now()
	fn()
	m.Observe(op, time.Since(start))
}

// Observe records one calculation that took d.
func (m *Monitor) Observe(op string, d time.Duration) {
	m.calculations.WithLabelValues(op).Inc()
	m.duration.WithLabelValues(op).Observe(d.Seconds())

	m.mu.Lock()
	if len(m.window) < config.CalculationWindowSize {
		m.window = append(m.window, d)
	} else {
		m.window[m.next] = d
	}
	m.next = (m.next + 1) % config.CalculationWindowSize
	m.mu.Unlock()

	if d > config.SlowCalculationThreshold {
		m.slow.Inc()
		slog.Warn(config.MsgSlowCalc,
			config.LogKeyComponent, config.CompPerf,
			config.LogKeyOperation, op,
			config.LogKeyDuration, d.Milliseconds(),
		)
	}
}

// Average returns the mean of the timings in the rolling window.
func (m *Monitor) Average() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.average()
}

func (m *Monitor) average() time.Duration {
	if len(m.window) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range m.window {
		sum += d
	}
	return sum / time.Duration(len(m.window))
}

// Report returns the totals gathered from the collectors, the rolling average
// and recommendations.
func (m *Monitor) Report() Report {
	r := Report{Average: m.Average(), Recommendations: []string{}}

	families, err := m.registry.Gather()
	if err != nil {
		slog.Warn(config.ErrMetricsGather,
			config.LogKeyComponent, config.CompPerf,
			config.LogKeyError, err)
	}
	r.Total = counterSum(families, prometheus.BuildFQName(config.MetricsNamespace, "", config.MetricCalculationsTotal))
	r.Slow = counterSum(families, prometheus.BuildFQName(config.MetricsNamespace, "", config.MetricSlowCalculations))

	if r.Average > config.AverageCalculationTarget {
		r.Recommendations = append(r.Recommendations, config.RecommendOptimizeCalc)
	}
	if r.Slow > 0 {
		r.Recommendations = append(r.Recommendations, config.RecommendSlowCalc)
	}
	return r
}

// counterSum adds up every series of the named counter family.
func counterSum(families []*dto.MetricFamily, name string) int64 {
	var sum float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			sum += metric.GetCounter().GetValue()
		}
	}
	return int64(sum)
}

// WriteMetrics writes every collector in the Prometheus text exposition format.
func (m *Monitor) WriteMetrics(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrMetricsGather, err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// LogReport writes the report at debug level.
func (m *Monitor) LogReport() {
	r := m.Report()
	slog.Debug(config.MsgPerfReport,
		config.LogKeyComponent, config.CompPerf,
		config.LogKeyCount, r.Total,
		config.LogKeySlow, r.Slow,
		config.LogKeyAverage, float64(r.Average.Microseconds())/1000,
		config.LogKeyAdvice, r.Recommendations,
	)
}
