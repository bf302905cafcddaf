package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aretw0/arbor/pkg/domain"
)

// Metrics holds the Prometheus collectors for one engine instance.
type Metrics struct {
	messages    prometheus.Counter
	transitions prometheus.Counter
	fallbacks   prometheus.Counter
	distance    prometheus.Histogram
}

// New creates the collectors and registers them on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		messages: factory.NewCounter(prometheus.CounterOpts{
			Name: "arbor_messages_total",
			Help: "Total user messages processed.",
		}),
		transitions: factory.NewCounter(prometheus.CounterOpts{
			Name: "arbor_transitions_total",
			Help: "Transitions taken because an edge keyword matched.",
		}),
		fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "arbor_fallbacks_total",
			Help: "Transitions that fell back to the root (leaf node reached).",
		}),
		distance: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "arbor_match_distance",
			Help:    "Edit distance of the winning keyword per message.",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		}),
	}
}

// Hooks returns lifecycle hooks that feed these collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMatch: func(_ context.Context, e *domain.MatchEvent) {
			m.messages.Inc()
			m.transitions.Inc()
			m.distance.Observe(float64(e.Distance))
		},
		OnFallback: func(_ context.Context, _ *domain.NodeEvent) {
			m.messages.Inc()
			m.fallbacks.Inc()
		},
	}
}
