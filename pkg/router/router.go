package router

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/dialog"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/aretw0/arbor/pkg/session"
)

// Router is the top-level handler registered with an outer priority-ordered
// dispatcher. It owns the root node and the session registry, and implements
// the precedence protocol that elects, per inbound event, one of
// {entry, back, exit, current node, fallback} and drives the corresponding
// lifecycle transition.
//
// The dispatcher must call Matches before Handle for the same event. Events
// for a single user must be delivered in arrival order and never
// concurrently; events for different users may be processed in parallel.
type Router struct {
	root    *dialog.Node
	channel ports.Channel

	entry     []dialog.Matcher
	back      []dialog.Matcher
	exit      []dialog.Matcher
	fallbacks []dialog.Matcher

	backTrigger  string
	backCallback dialog.HandlerFunc
	allowReentry bool

	sessions  *session.Registry
	hooks     domain.LifecycleHooks
	snapshots ports.SnapshotStore
	logger    *slog.Logger
}

var _ ports.Handler[dialog.Outcome] = (*Router)(nil)

// Option configures the Router.
type Option func(*Router)

// WithEntry appends subsystem-entry matchers (e.g. a /start command).
func WithEntry(matchers ...dialog.Matcher) Option {
	return func(r *Router) { r.entry = append(r.entry, matchers...) }
}

// WithBackTrigger sets the token that triggers back navigation and labels
// the back button appended to reply keyboards. Ignored when explicit back
// matchers are configured.
func WithBackTrigger(trigger string) Option {
	return func(r *Router) { r.backTrigger = trigger }
}

// WithBackCallback sets the handler invoked when the default back matcher
// elects. Nil is a no-op.
func WithBackCallback(cb dialog.HandlerFunc) Option {
	return func(r *Router) { r.backCallback = cb }
}

// WithBackMatchers replaces the default back matcher built from the back
// trigger.
func WithBackMatchers(matchers ...dialog.Matcher) Option {
	return func(r *Router) { r.back = append(r.back, matchers...) }
}

// WithExit appends subsystem-exit matchers.
func WithExit(matchers ...dialog.Matcher) Option {
	return func(r *Router) { r.exit = append(r.exit, matchers...) }
}

// WithFallbacks appends top-level fallback matchers, tested after the
// current node declines an event.
func WithFallbacks(matchers ...dialog.Matcher) Option {
	return func(r *Router) { r.fallbacks = append(r.fallbacks, matchers...) }
}

// WithReentry lets entry matchers fire even while the session is already
// entered, restarting the traversal at the root.
func WithReentry() Option {
	return func(r *Router) { r.allowReentry = true }
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Router) { r.hooks = hooks }
}

// WithSnapshotStore publishes a per-user session snapshot after each handled
// event. Publishing is best-effort: failures are logged, never propagated.
func WithSnapshotStore(store ports.SnapshotStore) Option {
	return func(r *Router) { r.snapshots = store }
}

// WithLogger sets a structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) { r.logger = logger }
}

// New creates a Router for the given tree root, sending through the given
// channel.
func New(root *dialog.Node, channel ports.Channel, opts ...Option) *Router {
	r := &Router{
		root:     root,
		channel:  channel,
		sessions: session.NewRegistry(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if len(r.back) == 0 && r.backTrigger != "" {
		r.back = []dialog.Matcher{dialog.OnText(r.backTrigger, r.backCallback)}
	}
	return r
}

// Sessions exposes the registry, e.g. for external eviction policies.
func (r *Router) Sessions() *session.Registry { return r.sessions }

// Matches evaluates the precedence protocol for the event's user session,
// short-circuiting at the first accepting matcher and recording the election
// on the session for the subsequent Handle call.
func (r *Router) Matches(ev domain.Event) bool {
	sess := r.sessions.Get(ev.UserID())

	if !sess.Entered || r.allowReentry {
		for _, m := range r.entry {
			if m.Match(ev) {
				sess.Route = session.Route{Category: domain.RouteEntry, Matcher: m}
				return true
			}
		}
	}
	if !sess.Entered {
		return false
	}

	// The displayed node, not the history top: nodes kept out of history
	// are still the ones receiving input while displayed.
	current := sess.Display

	if current != nil && current.AllowsBack() && sess.History.CanGoBack() {
		for _, m := range r.back {
			if m.Match(ev) {
				sess.Route = session.Route{Category: domain.RouteBack, Matcher: m}
				return true
			}
		}
	}

	for _, m := range r.exit {
		if m.Match(ev) {
			sess.Route = session.Route{Category: domain.RouteExit, Matcher: m}
			return true
		}
	}

	if current != nil {
		if el, ok := current.Match(ev, sess.Inside); ok {
			sess.Route = session.Route{Category: domain.RouteNode, Election: el}
			return true
		}
	}

	for _, m := range r.fallbacks {
		if m.Match(ev) {
			sess.Route = session.Route{Category: domain.RouteFallback, Matcher: m}
			return true
		}
	}

	sess.Route = session.Route{}
	return false
}

// Handle consumes the event using the election recorded by Matches, drives
// the session-level transition for the elected category, and returns the
// elected handler's outcome for callers composing this router inside a
// larger dispatch tree.
func (r *Router) Handle(ctx context.Context, ev domain.Event) (dialog.Outcome, error) {
	sess := r.sessions.Get(ev.UserID())
	route := sess.Route
	sess.Route = session.Route{}

	if route.Category == "" {
		return dialog.None(), fmt.Errorf("%w: user %s", domain.ErrNoRoute, ev.UserID())
	}

	// Best-effort working indicator; a channel failure here never blocks
	// routing.
	if err := r.channel.SendTyping(ctx, ev.UserID()); err != nil {
		r.logger.Debug("typing indicator failed", "user_id", ev.UserID(), "err", err)
	}

	r.emitRouteDecision(ctx, ev, route.Category)

	result, err := r.dispatch(ctx, sess, ev, route)
	if err != nil {
		return result, err
	}

	r.publishSnapshot(ctx, sess, ev.UserID())
	return result, nil
}

func (r *Router) dispatch(ctx context.Context, sess *session.Session, ev domain.Event, route session.Route) (dialog.Outcome, error) {
	if route.Category == domain.RouteNode {
		return r.handleNode(ctx, sess, ev, route.Election)
	}

	result, err := route.Matcher.Handle(ctx, ev, r.channel)
	if err != nil {
		return result, err
	}

	switch route.Category {
	case domain.RouteEntry:
		sess.Entered = true
		sess.Display = r.root
		sess.History.Reset(r.root, r.backTrigger)
		r.emitSessionEnter(ctx, ev)
		if err := r.runEntryCallback(ctx, ev, r.root); err != nil {
			return result, err
		}
		return result, r.enterNode(ctx, sess, ev, r.root)

	case domain.RouteBack:
		prev := sess.History.Back()
		sess.Display = prev
		sess.Inside = true
		if err := r.runEntryCallback(ctx, ev, prev); err != nil {
			return result, err
		}
		return result, r.enterNode(ctx, sess, ev, prev)

	case domain.RouteExit:
		sess.Entered = false
		r.emitSessionExit(ctx, ev)
		return result, nil
	}

	// Fallback: no session-level transition.
	return result, nil
}

// runEntryCallback invokes the node's declared entry-handler callback, if
// any, discarding its traversal directive. It runs when a node is displayed
// by a router-level transition (entry, back) or a static-successor chain,
// not when elected by its own entry matcher, which already ran.
func (r *Router) runEntryCallback(ctx context.Context, ev domain.Event, node *dialog.Node) error {
	cb := node.EntryCallback()
	if cb == nil {
		return nil
	}
	_, err := cb.Handle(ctx, ev, r.channel)
	return err
}
