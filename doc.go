/*
Package arbor is a hierarchical conversational state machine: it drives
multi-turn dialogs with many independent users over a message-based channel,
tracking each user's position in a tree of dialog nodes, navigating it
forward and back, and routing every inbound event to exactly one handler by
an ordered precedence protocol.

# Concept

A dialog tree is immutable configuration built once at startup: nodes carry
entry matchers, a greeting and keyboard, a body of in-node matchers, a
closing payload, and a static successor. Per-user traversal state (the
current node, a back-navigation history stack, and a pending dynamic
successor) lives in sessions created lazily per user identifier.

For every inbound event the router elects one consumer, short-circuiting in
strict order: subsystem entry, back navigation, subsystem exit, the user's
current node, then top-level fallbacks. Within every matcher list the first
declared matcher that accepts wins.

# Key Properties

  - Nodes are shared read-only across all sessions; only position is
    per-user state.
  - Back navigation is a strict inverse of history-participating forward
    navigation, guarded so it can never pop below the root.
  - Auto-entry nodes chain without user input until a node requires it.
  - Handlers steer traversal with a tagged Outcome: advance into a chosen
    node, stay and re-prompt, or no transition.

# Usage

Build a tree with pkg/dialog, wrap it in a router, and register the router
with your event dispatcher:

	package main

	import (
		"github.com/aretw0/arbor"
		"github.com/aretw0/arbor/pkg/dialog"
		"github.com/aretw0/arbor/pkg/domain"
	)

	func main() {
		faq := dialog.Named("faq", nil,
			dialog.WithGreeting(domain.NewText("Ask away.")),
			dialog.WithInside(dialog.OnAny(nil)),
		)
		root := dialog.NamedMenu("menu", nil, [][]*dialog.Node{{faq}},
			dialog.WithGreeting(domain.NewText("Pick a topic:")),
		)

		r := arbor.New(root, myChannel,
			arbor.WithEntry(dialog.OnText("/start", nil)),
			arbor.WithBackTrigger("⬅ back"),
		)

		// dispatcher loop: if r.Matches(ev) { r.Handle(ctx, ev) }
		_ = r
	}
*/
package arbor
