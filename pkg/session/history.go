package session

import "github.com/aretw0/arbor/pkg/dialog"

type historyEntry struct {
	node *dialog.Node

	// backTrigger is the back-affordance token in effect for this entry.
	// Pushed entries inherit it from the previous top, so nested nodes share
	// the same affordance seeded at the root.
	backTrigger string
}

// History is the per-user stack of visited nodes enabling reversible
// navigation. The bottom of the stack is always the subsystem root while the
// session is entered. History is not safe for concurrent use; it is owned
// exclusively by its user's event-processing path.
type History struct {
	stack []historyEntry
}

// Reset replaces the stack with a single root entry carrying the configured
// back trigger.
func (h *History) Reset(root *dialog.Node, backTrigger string) {
	h.stack = []historyEntry{{node: root, backTrigger: backTrigger}}
}

// Push appends a visited node, inheriting the back trigger from the previous
// top.
func (h *History) Push(n *dialog.Node) {
	var trigger string
	if len(h.stack) > 0 {
		trigger = h.stack[len(h.stack)-1].backTrigger
	}
	h.stack = append(h.stack, historyEntry{node: n, backTrigger: trigger})
}

// Current returns the node on top of the stack, or nil when empty.
func (h *History) Current() *dialog.Node {
	if len(h.stack) == 0 {
		return nil
	}
	return h.stack[len(h.stack)-1].node
}

// BackTrigger returns the back-affordance token in effect at the top of the
// stack, or "" when empty.
func (h *History) BackTrigger() string {
	if len(h.stack) == 0 {
		return ""
	}
	return h.stack[len(h.stack)-1].backTrigger
}

// CanGoBack reports whether a previous entry exists to pop to.
func (h *History) CanGoBack() bool {
	return len(h.stack) > 1
}

// Back pops the top entry and returns the new top. Popping with no previous
// entry is a programming error: every call site must guard with CanGoBack.
func (h *History) Back() *dialog.Node {
	if !h.CanGoBack() {
		panic("session: history.Back below root")
	}
	h.stack = h.stack[:len(h.stack)-1]
	return h.stack[len(h.stack)-1].node
}

// Depth returns the number of entries on the stack.
func (h *History) Depth() int {
	return len(h.stack)
}
