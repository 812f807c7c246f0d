// Package metrics exposes Prometheus collectors for router observability,
// wired in through domain.LifecycleHooks.
package metrics

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the router metrics.
type Collector struct {
	routeDecisions *prometheus.CounterVec
	nodeVisits     *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

// NewCollector creates and registers the collectors on the given registerer
// (use prometheus.DefaultRegisterer for the default registry).
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		routeDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_route_decisions_total",
				Help: "Routing decisions by precedence category",
			},
			[]string{"category"},
		),
		nodeVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_node_visits_total",
				Help: "Node entry lifecycles by node name",
			},
			[]string{"node"},
		),
		activeSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "arbor_entered_sessions",
				Help: "Sessions currently entered into the dialog subsystem",
			},
		),
	}
	reg.MustRegister(c.routeDecisions, c.nodeVisits, c.activeSessions)
	return c
}

// Hooks returns lifecycle hooks feeding these collectors. Compose them with
// application hooks if both are needed.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRouteDecision: func(_ context.Context, e *domain.RouteEvent) {
			c.routeDecisions.WithLabelValues(string(e.Category)).Inc()
		},
		OnNodeEnter: func(_ context.Context, e *domain.NodeEvent) {
			name := e.NodeName
			if name == "" {
				name = "unnamed"
			}
			c.nodeVisits.WithLabelValues(name).Inc()
		},
		OnSessionEnter: func(_ context.Context, _ *domain.RouteEvent) {
			c.activeSessions.Inc()
		},
		OnSessionExit: func(_ context.Context, _ *domain.RouteEvent) {
			c.activeSessions.Dec()
		},
	}
}
