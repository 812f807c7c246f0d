package router

import (
	"context"

	"github.com/aretw0/arbor/pkg/dialog"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/session"
)

// handleNode runs the node-level election: the elected handler first, then
// the lifecycle phase its kind dictates.
func (r *Router) handleNode(ctx context.Context, sess *session.Session, ev domain.Event, el dialog.Election) (dialog.Outcome, error) {
	node := sess.Display

	result, err := el.Matcher.Handle(ctx, ev, r.channel)
	if err != nil {
		return result, err
	}

	// A handler may elect the next node at runtime; the dynamic override
	// wins over the static successor for exactly one transition.
	if next, ok := result.Next(); ok {
		sess.PendingNext = next
	}

	switch {
	case result.Stays() || el.Kind == dialog.ElectFallback:
		// Stay in place: re-display the current node to re-prompt.
		display := sess.Display
		if err := r.runEntryCallback(ctx, ev, display); err != nil {
			return result, err
		}
		return result, r.enterNode(ctx, sess, ev, display)

	case el.Kind == dialog.ElectEntry:
		return result, r.enterNode(ctx, sess, ev, node)

	case el.Kind == dialog.ElectInside:
		// A menu records the elected child so the traversal routes into it.
		if el.Child != nil {
			sess.PendingNext = el.Child
		}
		return result, r.leaveNode(ctx, sess, ev, node)
	}

	return result, nil
}

// enterNode runs a node's entry lifecycle: mark the user inside, send the
// greeting with its keyboard directive, and, for nodes expecting no further
// input, fall straight through the body.
func (r *Router) enterNode(ctx context.Context, sess *session.Session, ev domain.Event, node *dialog.Node) error {
	sess.Inside = true
	r.emitNodeEnter(ctx, ev, node, sess)

	if g := node.Greeting(); g != nil {
		kb := node.Keyboard()
		// The back affordance joins a reply keyboard only while this node is
		// the history top with somewhere to go back to.
		if kb.HasReplyRows() && node.AllowsBack() &&
			sess.History.Current() == node && sess.History.CanGoBack() &&
			sess.History.BackTrigger() != "" {
			kb = kb.WithButton(sess.History.BackTrigger())
		}
		if err := r.reply(ctx, ev, g, kb); err != nil {
			return err
		}
	}

	// Announcement-only nodes auto-advance without waiting for input.
	if !node.HasInsideMatchers() {
		return r.leaveNode(ctx, sess, ev, node)
	}
	return nil
}

// leaveNode runs a node's inside lifecycle: send the closing payload, leave
// the body, resolve the next node (dynamic override beats the static
// successor), and chain into it.
func (r *Router) leaveNode(ctx context.Context, sess *session.Session, ev domain.Event, node *dialog.Node) error {
	if c := node.Closing(); c != nil {
		if err := r.reply(ctx, ev, c, domain.Keyboard{}); err != nil {
			return err
		}
	}

	sess.Inside = false
	r.emitNodeLeave(ctx, ev, node, sess)

	next := sess.PendingNext
	fromStatic := false
	if next == nil {
		next = node.Successor()
		fromStatic = next != nil
	}
	sess.PendingNext = nil

	if next == nil {
		// Terminal leaf. Nodes kept out of history re-enter their own body
		// so repeated events keep matching it (loop-on-invalid-input nodes).
		if !node.InHistory() {
			sess.Inside = true
		}
		return nil
	}

	sess.Display = next
	if next.InHistory() {
		sess.History.Push(next)
	}

	if next.AutoEntry() {
		// The entry-handler callback runs only for static-successor
		// transitions; a dynamic override's handler already had its say.
		if fromStatic {
			if err := r.runEntryCallback(ctx, ev, next); err != nil {
				return err
			}
		}
		return r.enterNode(ctx, sess, ev, next)
	}
	return nil
}
