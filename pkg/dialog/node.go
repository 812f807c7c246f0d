package dialog

import "github.com/aretw0/arbor/pkg/domain"

// Node is one state in the dialog tree. Nodes are immutable configuration:
// they are wired into a static tree at process startup, shared read-only
// across all sessions, and never mutated per user. Only per-user position in
// the tree is session state.
//
// A node optionally carries two capabilities attached by construction
// instead of inheritance: an identity (stable name doubling as a menu label
// and an exact-match entry pattern, see Named) and a menu composition
// (ordered children acting as a sub-menu, see NewMenu).
type Node struct {
	entry     []Matcher
	inside    []Matcher
	fallbacks []Matcher

	greeting domain.Payload
	keyboard domain.Keyboard
	closing  domain.Payload

	successor *Node

	autoEntry bool
	inHistory bool
	allowBack bool

	name string
	menu *menu

	kbFromNames bool
}

// Option configures a Node at construction.
type Option func(*Node)

// WithEntry appends entry matchers, tested while the node is not yet
// displayed for the user.
func WithEntry(matchers ...Matcher) Option {
	return func(n *Node) { n.entry = append(n.entry, matchers...) }
}

// WithInside appends in-node matchers, tested while the user is inside the
// node's body.
func WithInside(matchers ...Matcher) Option {
	return func(n *Node) { n.inside = append(n.inside, matchers...) }
}

// WithFallbacks appends in-node fallback matchers, tested after the in-node
// matchers. A fallback election re-displays the node instead of advancing.
func WithFallbacks(matchers ...Matcher) Option {
	return func(n *Node) { n.fallbacks = append(n.fallbacks, matchers...) }
}

// WithGreeting sets the payload sent when the node is displayed.
func WithGreeting(p domain.Payload) Option {
	return func(n *Node) { n.greeting = p }
}

// WithKeyboard sets the keyboard directive sent with the greeting.
func WithKeyboard(k domain.Keyboard) Option {
	return func(n *Node) { n.keyboard = k }
}

// WithClosing sets the payload sent when the node's body concludes.
func WithClosing(p domain.Payload) Option {
	return func(n *Node) { n.closing = p }
}

// WithSuccessor statically wires the next node.
func WithSuccessor(next *Node) Option {
	return func(n *Node) { n.successor = next }
}

// WithAutoEntry controls whether the node's entry lifecycle runs
// automatically when the traversal reaches it (default true).
func WithAutoEntry(enabled bool) Option {
	return func(n *Node) { n.autoEntry = enabled }
}

// WithHistory controls whether the node is pushed onto the navigation
// history when visited (default true). Nodes kept out of history never
// appear as back targets and loop on their own body when they lack a
// successor.
func WithHistory(enabled bool) Option {
	return func(n *Node) { n.inHistory = enabled }
}

// WithBack controls whether back navigation is offered while this node is
// current (default true).
func WithBack(enabled bool) Option {
	return func(n *Node) { n.allowBack = enabled }
}

// WithoutNameKeyboard suppresses the keyboard auto-built from menu children
// names (menus only).
func WithoutNameKeyboard() Option {
	return func(n *Node) { n.kbFromNames = false }
}

// New constructs a node. Flags default to auto-entry, history-participating
// and back-allowing, matching the common case of a plain dialog step.
func New(opts ...Option) *Node {
	n := &Node{
		autoEntry:   true,
		inHistory:   true,
		allowBack:   true,
		kbFromNames: true,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Named constructs a node with an identity: name is both the node's display
// label and its entry-match pattern (exact token). The callback runs when
// the name matcher elects; nil is a no-op.
func Named(name string, callback HandlerFunc, opts ...Option) *Node {
	n := New(opts...)
	n.name = name
	n.entry = append([]Matcher{OnText(name, callback)}, n.entry...)
	return n
}

// Then wires next as this node's static successor and returns next, so
// linear flows chain naturally:
//
//	ask.Then(confirm).Then(done)
//
// Wiring happens at tree construction, before the router sees traffic;
// re-wiring a live tree is not supported.
func (n *Node) Then(next *Node) *Node {
	n.successor = next
	return next
}

// Name returns the identity name, or "" for unnamed nodes.
func (n *Node) Name() string { return n.name }

// Successor returns the statically wired next node, if any.
func (n *Node) Successor() *Node { return n.successor }

// Greeting returns the entry payload, if configured.
func (n *Node) Greeting() domain.Payload { return n.greeting }

// Closing returns the body-conclusion payload, if configured.
func (n *Node) Closing() domain.Payload { return n.closing }

// Keyboard returns the keyboard directive sent with the greeting.
func (n *Node) Keyboard() domain.Keyboard { return n.keyboard }

// AutoEntry reports whether the node enters automatically when reached.
func (n *Node) AutoEntry() bool { return n.autoEntry }

// InHistory reports whether visits to the node are pushed onto history.
func (n *Node) InHistory() bool { return n.inHistory }

// AllowsBack reports whether back navigation is offered from this node.
func (n *Node) AllowsBack() bool { return n.allowBack }

// HasInsideMatchers reports whether the node expects input inside its body.
// Nodes without in-node matchers auto-advance through entry and body as one
// atomic step.
func (n *Node) HasInsideMatchers() bool { return len(n.inside) > 0 }

// EntryCallback returns the first declared entry matcher, whose handler
// doubles as the node's entry-handler callback, or nil.
func (n *Node) EntryCallback() Matcher {
	if len(n.entry) == 0 {
		return nil
	}
	return n.entry[0]
}

// Children returns the menu children in declared order, or nil for
// non-menu nodes. The returned slice is a read-only view.
func (n *Node) Children() []*Node {
	if n.menu == nil {
		return nil
	}
	return n.menu.children
}

// ElectionKind classifies which matcher list elected within a node.
type ElectionKind int

const (
	ElectEntry ElectionKind = iota
	ElectInside
	ElectFallback
)

// Election is the tagged result of a node-level match: which list fired,
// which matcher was elected, and, when the elected in-node matcher was
// contributed by a menu child, that child. Recording the child here avoids
// re-deriving it later by handler identity.
type Election struct {
	Kind    ElectionKind
	Matcher Matcher
	Child   *Node
}

// Match tests the event against this node's matcher lists. While the user is
// not inside the node only entry matchers apply; inside, the in-node
// matchers are tested first and the in-node fallbacks after. First match
// wins.
func (n *Node) Match(ev domain.Event, inside bool) (Election, bool) {
	if !inside {
		for _, m := range n.entry {
			if m.Match(ev) {
				return Election{Kind: ElectEntry, Matcher: m}, true
			}
		}
		return Election{}, false
	}
	for i, m := range n.inside {
		if m.Match(ev) {
			el := Election{Kind: ElectInside, Matcher: m}
			if n.menu != nil {
				el.Child = n.menu.owner(i)
			}
			return el, true
		}
	}
	for _, m := range n.fallbacks {
		if m.Match(ev) {
			return Election{Kind: ElectFallback, Matcher: m}, true
		}
	}
	return Election{}, false
}
