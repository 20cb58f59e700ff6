// Package metrics exposes prometheus instrumentation for the colorability
// oracle: call counts and latency by outcome, and the size of every SAT
// instance handed to the backend.
//
// Collectors are registered on a caller-supplied Registerer; nothing is
// registered on the global default registry. A nil *OracleMetrics is valid
// and records nothing, so library callers may leave metrics unset.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "unitgraph"

// Outcome label values.
const (
	OutcomeSAT      = "sat"
	OutcomeUNSAT    = "unsat"
	OutcomeTimeout  = "timeout"
	OutcomeTooLarge = "resource_exhausted"
	OutcomeError    = "error"
)

// OracleMetrics groups the oracle collectors.
type OracleMetrics struct {
	calls     *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	variables prometheus.Histogram
}

// NewOracleMetrics creates and registers the oracle collectors on reg.
// Registering twice on the same Registerer reuses the existing collectors.
func NewOracleMetrics(reg prometheus.Registerer) (*OracleMetrics, error) {
	if reg == nil {
		return nil, errors.New("metrics: nil registerer")
	}
	m := &OracleMetrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "oracle",
			Name:      "calls_total",
			Help:      "Colorability oracle invocations by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "oracle",
			Name:      "duration_seconds",
			Help:      "Wall time of colorability oracle invocations.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 12),
		}, []string{"outcome"}),
		variables: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "oracle",
			Name:      "variables",
			Help:      "Boolean variables per SAT instance (|V|·k).",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
		}),
	}

	var err error
	if m.calls, err = register(reg, m.calls); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	if m.variables, err = register(reg, m.variables); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg, returning the already-registered collector on conflict.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("metrics: register: %w", err)
	}
	return c, nil
}

// Observe records one oracle call. variables ≤ 0 skips the size histogram
// (trivial answers never reach the backend).
func (m *OracleMetrics) Observe(outcome string, elapsed time.Duration, variables int) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	if variables > 0 {
		m.variables.Observe(float64(variables))
	}
}

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: Namespace}),
	)
	return reg
}

// Handler serves reg in the prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
