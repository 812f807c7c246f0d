package session

import (
	"github.com/aretw0/arbor/pkg/dialog"
	"github.com/aretw0/arbor/pkg/domain"
)

// Route captures the outcome of the matching phase for one event: which
// precedence category consumed it, the elected matcher (entry / back / exit
// / fallback categories) or the node-level election (node category). It is
// transient: valid only between Matches and the Handle call for the same
// event.
type Route struct {
	Category domain.RouteCategory
	Matcher  dialog.Matcher
	Election dialog.Election
}

// Session is the mutable per-user traversal state. All mutation happens
// while processing that user's own event; events for one user are processed
// serially, so no field-level locking is needed.
type Session struct {
	// Entered reports whether the subsystem is active for this user.
	Entered bool

	// Route is the transient election recorded by the matching phase.
	Route Route

	// Display is the node currently shown to the user. It may differ from
	// the history top during transitions through non-history nodes.
	Display *dialog.Node

	// Inside reports whether the user is inside the displayed node's body
	// (as opposed to entry-pending).
	Inside bool

	// PendingNext is a dynamic successor override set by a handler. It wins
	// over the static successor for exactly one transition and is cleared
	// unconditionally afterwards.
	PendingNext *dialog.Node

	// History is the back-navigation stack.
	History History
}
