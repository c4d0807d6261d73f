// Package metrics records cipher operations as Prometheus metrics and writes them in the
// node_exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Registry holds all metrics for one run.
type Registry struct {
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	SymbolsTotal      *prometheus.CounterVec
	KeyHealsTotal     *prometheus.CounterVec
	TwistsTotal       *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.OperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hillc_operations_total",
			Help: "Total number of encryptions and decryptions",
		},
		[]string{"operation", "outcome"},
	)

	r.OperationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hillc_operation_duration_seconds",
			Help:    "Duration of a single encryption or decryption in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"operation"},
	)

	r.SymbolsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hillc_symbols_total",
			Help: "Total number of output symbols produced",
		},
		[]string{"operation"},
	)

	r.KeyHealsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hillc_key_heals_total",
			Help: "Singular keys seen at encryption, by heal outcome",
		},
		[]string{"outcome"}, // success, error
	)

	r.TwistsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hillc_twists_total",
			Help: "Encryptions by selected twist",
		},
		[]string{"twist"}, // Add, Subtract, Multiply
	)

	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// RecordOperation records one encryption or decryption.
func (r *Registry) RecordOperation(operation string, err error, symbols int, duration time.Duration) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}

	r.OperationsTotal.WithLabelValues(operation, outcome).Inc()
	r.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())

	if err == nil {
		r.SymbolsTotal.WithLabelValues(operation).Add(float64(symbols))
	}
}

// RecordHeal records an attempt to heal a singular key.
func (r *Registry) RecordHeal(healed bool) {
	if healed {
		r.KeyHealsTotal.WithLabelValues(OutcomeSuccess).Inc()
	} else {
		r.KeyHealsTotal.WithLabelValues(OutcomeError).Inc()
	}
}

// RecordTwist records the twist chosen for an encryption.
func (r *Registry) RecordTwist(twist string) {
	r.TwistsTotal.WithLabelValues(twist).Inc()
}

// WriteTextfile writes all metrics to path.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %q: %w", path, err)
	}

	return nil
}
