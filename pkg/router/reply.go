package router

import (
	"context"
	"time"

	"github.com/aretw0/arbor/pkg/dialog"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/session"
)

// reply delivers a payload through the channel. A sequence is delivered as
// one logical reply: every item but the last goes out silently with a typing
// indicator in between, and only the last carries the keyboard directive.
func (r *Router) reply(ctx context.Context, ev domain.Event, payload domain.Payload, kb domain.Keyboard) error {
	seq, ok := payload.(domain.Sequence)
	if !ok {
		return r.channel.Reply(ctx, ev, payload, kb, false)
	}

	for i, item := range seq {
		if i == len(seq)-1 {
			return r.channel.Reply(ctx, ev, item, kb, false)
		}
		if err := r.channel.Reply(ctx, ev, item, domain.Keyboard{}, true); err != nil {
			return err
		}
		if err := r.channel.SendTyping(ctx, ev.UserID()); err != nil {
			r.logger.Debug("typing indicator failed", "user_id", ev.UserID(), "err", err)
		}
	}
	return nil
}

// publishSnapshot records the session's post-event state for introspection.
// Best-effort: failures are logged and dropped.
func (r *Router) publishSnapshot(ctx context.Context, sess *session.Session, userID string) {
	if r.snapshots == nil {
		return
	}
	snap := domain.SessionSnapshot{
		UserID:     userID,
		Entered:    sess.Entered,
		NodeName:   nodeName(sess.Display),
		Depth:      sess.History.Depth(),
		InsideNode: sess.Inside,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := r.snapshots.Save(ctx, snap); err != nil {
		r.logger.Warn("session snapshot save failed", "user_id", userID, "err", err)
	}
}

func nodeName(n *dialog.Node) string {
	if n == nil {
		return ""
	}
	return n.Name()
}

func (r *Router) emitRouteDecision(ctx context.Context, ev domain.Event, cat domain.RouteCategory) {
	if r.hooks.OnRouteDecision == nil {
		return
	}
	r.hooks.OnRouteDecision(ctx, &domain.RouteEvent{
		Timestamp: time.Now().UTC(),
		UserID:    ev.UserID(),
		Category:  cat,
	})
}

func (r *Router) emitSessionEnter(ctx context.Context, ev domain.Event) {
	if r.hooks.OnSessionEnter == nil {
		return
	}
	r.hooks.OnSessionEnter(ctx, &domain.RouteEvent{
		Timestamp: time.Now().UTC(),
		UserID:    ev.UserID(),
		Category:  domain.RouteEntry,
	})
}

func (r *Router) emitSessionExit(ctx context.Context, ev domain.Event) {
	if r.hooks.OnSessionExit == nil {
		return
	}
	r.hooks.OnSessionExit(ctx, &domain.RouteEvent{
		Timestamp: time.Now().UTC(),
		UserID:    ev.UserID(),
		Category:  domain.RouteExit,
	})
}

func (r *Router) emitNodeEnter(ctx context.Context, ev domain.Event, node *dialog.Node, sess *session.Session) {
	if r.hooks.OnNodeEnter == nil {
		return
	}
	r.hooks.OnNodeEnter(ctx, &domain.NodeEvent{
		Timestamp: time.Now().UTC(),
		UserID:    ev.UserID(),
		NodeName:  nodeName(node),
		Depth:     sess.History.Depth(),
	})
}

func (r *Router) emitNodeLeave(ctx context.Context, ev domain.Event, node *dialog.Node, sess *session.Session) {
	if r.hooks.OnNodeLeave == nil {
		return
	}
	r.hooks.OnNodeLeave(ctx, &domain.NodeEvent{
		Timestamp: time.Now().UTC(),
		UserID:    ev.UserID(),
		NodeName:  nodeName(node),
		Depth:     sess.History.Depth(),
	})
}
