// Package tripprom exposes breaker activity as Prometheus metrics.
package tripprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tripkit/trip"
)

// Collector owns the metrics for one or more breakers and produces the hooks
// that drive them. Breakers sharing a Collector are told apart by their name.
type Collector struct {
	calls      *prometheus.CounterVec
	rejections *prometheus.CounterVec
	state      *prometheus.GaugeVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trip",
			Name:      "calls_total",
			Help:      "Calls attempted through the breaker, by result.",
		}, []string{"breaker", "result"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trip",
			Name:      "rejections_total",
			Help:      "Calls rejected while the breaker was unavailable.",
		}, []string{"breaker"}),
		state: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "trip",
			Name:      "state",
			Help:      "Current breaker state (0 healthy, 1 unstable, 2 unavailable, 3 trial).",
		}, []string{"breaker"}),
	}

	for _, col := range []prometheus.Collector{c.calls, c.rejections, c.state} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Hooks returns the breaker options that feed the collector:
//
//	c, err := tripprom.NewCollector(prometheus.DefaultRegisterer)
//	b, err := trip.New("api", c.Hooks()...)
func (c *Collector) Hooks() []trip.Option {
	return []trip.Option{
		trip.OnStateChange(func(name string, _, to trip.State) {
			c.state.WithLabelValues(name).Set(float64(to))
		}),
		trip.OnReject(func(name string) {
			c.rejections.WithLabelValues(name).Inc()
		}),
		trip.OnCall(func(name string, _ trip.State, err error) {
			result := "success"
			if err != nil {
				result = "failure"
			}
			c.calls.WithLabelValues(name, result).Inc()
		}),
	}
}
