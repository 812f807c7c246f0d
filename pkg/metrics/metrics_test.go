package metrics_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/metrics"
)

func TestCollector_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	hooks := c.Hooks()
	ctx := context.Background()

	hooks.OnRouteDecision(ctx, &domain.RouteEvent{Category: domain.RouteEntry})
	hooks.OnRouteDecision(ctx, &domain.RouteEvent{Category: domain.RouteNode})
	hooks.OnRouteDecision(ctx, &domain.RouteEvent{Category: domain.RouteNode})

	hooks.OnNodeEnter(ctx, &domain.NodeEvent{NodeName: "menu"})
	hooks.OnNodeEnter(ctx, &domain.NodeEvent{NodeName: ""})

	hooks.OnSessionEnter(ctx, &domain.RouteEvent{Category: domain.RouteEntry})
	hooks.OnSessionEnter(ctx, &domain.RouteEvent{Category: domain.RouteEntry})
	hooks.OnSessionExit(ctx, &domain.RouteEvent{Category: domain.RouteExit})

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.Len(t, families, 3)

	count, err := testutil.GatherAndCount(reg,
		"arbor_route_decisions_total", "arbor_node_visits_total", "arbor_entered_sessions")
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestCollector_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewCollector(reg)

	assert.Panics(t, func() { metrics.NewCollector(reg) })
}
