package metrics

import (
	"delivery-estimate-service/internal/domain"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromRecorder records estimate runs and vehicle dispatches as Prometheus metrics.
type PromRecorder struct {
	estimates  *prometheus.CounterVec
	duration   prometheus.Histogram
	dispatches prometheus.Counter
	size       prometheus.Histogram
}

// register reuses an already registered collector of the same description.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// NewPromRecorder registers the estimator metrics on reg.
// A nil reg uses the default registerer.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	estimates, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "estimates_total",
		Help: "Total number of delivery estimate runs by outcome",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "estimate_duration_seconds",
		Help:    "Wall time of one estimate run",
		Buckets: prometheus.DefBuckets,
	}))
	if err != nil {
		return nil, err
	}

	dispatches, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shipments_dispatched_total",
		Help: "Total number of simulated vehicle trips",
	}))
	if err != nil {
		return nil, err
	}

	size, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "shipment_packages",
		Help:    "Number of packages carried per simulated trip",
		Buckets: prometheus.LinearBuckets(1, 1, 10),
	}))
	if err != nil {
		return nil, err
	}

	return &PromRecorder{
		estimates:  estimates,
		duration:   duration,
		dispatches: dispatches,
		size:       size,
	}, nil
}

func (r *PromRecorder) RecordDispatch(d domain.Dispatch) {
	r.dispatches.Inc()
	r.size.Observe(float64(len(d.PackageIDs)))
}

func (r *PromRecorder) RecordEstimate(outcome string, dur time.Duration) {
	r.estimates.WithLabelValues(outcome).Inc()
	r.duration.Observe(dur.Seconds())
}
