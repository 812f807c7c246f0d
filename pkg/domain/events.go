package domain

import (
	"context"
	"time"
)

// RouteCategory names the precedence level that consumed an event.
type RouteCategory string

const (
	RouteEntry    RouteCategory = "entry"
	RouteBack     RouteCategory = "back"
	RouteExit     RouteCategory = "exit"
	RouteNode     RouteCategory = "node"
	RouteFallback RouteCategory = "fallback"
)

// RouteEvent records one routing decision.
type RouteEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	UserID    string        `json:"user_id"`
	Category  RouteCategory `json:"category"`
}

// NodeEvent records a node lifecycle transition for one user.
type NodeEvent struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	NodeName  string    `json:"node_name"` // "" for unnamed nodes
	Depth     int       `json:"depth"`     // history depth at event time
}

// LifecycleHooks defines callbacks for router observability. Nil hooks are
// skipped. Hooks run synchronously on the event's processing path and must
// not block.
type LifecycleHooks struct {
	OnRouteDecision func(context.Context, *RouteEvent)
	OnNodeEnter     func(context.Context, *NodeEvent)
	OnNodeLeave     func(context.Context, *NodeEvent)
	OnSessionEnter  func(context.Context, *RouteEvent)
	OnSessionExit   func(context.Context, *RouteEvent)
}
