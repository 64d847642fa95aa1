// Package metrics exposes IBAN validation outcomes to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/go-iban/iban"
)

// Result label values.
const (
	ResultValid           = "valid"
	ResultInvalidFormat   = "invalid_format"
	ResultInvalidChecksum = "invalid_checksum"
	ResultUnknownCountry  = "unknown_country"
	ResultInvalidBBAN     = "invalid_bban"
	ResultError           = "error"
)

// Country label values used when the country is not a registry entry.
// Keeps label cardinality bounded by the registry size.
const (
	CountryNone  = "none"
	CountryOther = "other"
)

// Recorder counts validation outcomes. A nil *Recorder is a no-op.
//
// Metrics registered:
//   - {namespace}_validations_total{result,country}
//   - {namespace}_batch_duration_seconds
//   - {namespace}_batch_size
type Recorder struct {
	validations   *prometheus.CounterVec
	batchDuration prometheus.Histogram
	batchSize     prometheus.Histogram
}

// NewRecorder registers the collectors on reg under namespace (for example
// "iban").
func NewRecorder(reg prometheus.Registerer, namespace string) (*Recorder, error) {
	if reg == nil {
		return nil, errors.New("prometheus registerer is nil")
	}

	validations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validations_total",
		Help:      "IBAN validations by result and country",
	}, []string{"result", "country"}))
	if err != nil {
		return nil, err
	}

	batchDuration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "batch_duration_seconds",
		Help:      "Duration of bulk validation runs",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	}))
	if err != nil {
		return nil, err
	}

	batchSize, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "batch_size",
		Help:      "Number of inputs per bulk validation run",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	}))
	if err != nil {
		return nil, err
	}

	r := &Recorder{
		validations:   validations,
		batchDuration: batchDuration,
		batchSize:     batchSize,
	}
	return r, nil
}

// Observe records the outcome of one Parse call. country is the code the
// input carried, if format and checksum passed.
func (r *Recorder) Observe(country string, err error) {
	if r == nil {
		return
	}
	r.validations.WithLabelValues(Result(err), countryLabel(country, err)).Inc()
}

// ObserveBatch records one bulk run.
func (r *Recorder) ObserveBatch(size int, d time.Duration) {
	if r == nil {
		return
	}
	r.batchSize.Observe(float64(size))
	r.batchDuration.Observe(d.Seconds())
}

// Result maps a Parse error to its label value.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultValid
	case errors.Is(err, iban.ErrInvalidFormat):
		return ResultInvalidFormat
	case errors.Is(err, iban.ErrInvalidChecksum):
		return ResultInvalidChecksum
	case errors.Is(err, iban.ErrUnknownCountry):
		return ResultUnknownCountry
	case errors.Is(err, iban.ErrInvalidBBAN):
		return ResultInvalidBBAN
	default:
		return ResultError
	}
}

// register adds c to reg, or returns the collector already registered under
// the same descriptor so two recorders on one registry share counters.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register collector: %w", err)
	}
	return c, nil
}

func countryLabel(country string, err error) string {
	if country == "" {
		if b, ok := iban.BasicFrom(err); ok {
			country = b.CountryCode()
		}
	}
	if country == "" {
		return CountryNone
	}
	if _, ok := iban.Lookup(country); !ok {
		return CountryOther
	}
	return country
}
