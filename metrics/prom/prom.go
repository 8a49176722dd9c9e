package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vpavlin/cached-property/attr"
)

// Adapter implements attr.Metrics and exports Prometheus counters.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	hits    prometheus.Counter
	misses  *prometheus.CounterVec
	compErr prometheus.Counter
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Attribute reads served from the stored value",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "misses_total",
				Help:        "Attribute reads that triggered a computation, by reason",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		compErr: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "compute_errors_total",
			Help:        "Computations that failed (nothing stored)",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.compErr)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter with a reason label.
func (a *Adapter) Miss(r attr.Reason) {
	a.misses.WithLabelValues(reason(r)).Inc()
}

// ComputeError increments the failed-computation counter.
func (a *Adapter) ComputeError() { a.compErr.Inc() }

// reason maps attr.Reason to a stable label value.
func reason(r attr.Reason) string {
	switch r {
	case attr.MissExpired:
		return "expired"
	default:
		return "cold"
	}
}

// Compile-time check: ensure Adapter implements attr.Metrics.
var _ attr.Metrics = (*Adapter)(nil)
