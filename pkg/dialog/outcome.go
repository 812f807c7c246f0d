package dialog

type outcomeKind int

const (
	outcomeNone outcomeKind = iota
	outcomeAdvance
	outcomeStay
)

// Outcome is the tagged result of a matcher handler. It distinguishes the
// three ways a handler can steer the traversal, removing any ambiguity
// between business values and control sentinels:
//
//   - None: no transition beyond what the node lifecycle performs.
//   - Advance(next): dynamically override the static successor for exactly
//     one transition (e.g. branching on validated input).
//   - StayAndReprompt: the input was not acceptable inside the current node;
//     re-display the current node's entry content.
type Outcome struct {
	kind outcomeKind
	next *Node
}

// None reports no traversal directive. It is the zero value.
func None() Outcome { return Outcome{} }

// Advance directs the traversal into next instead of the static successor.
func Advance(next *Node) Outcome {
	return Outcome{kind: outcomeAdvance, next: next}
}

// StayAndReprompt keeps the user in place and re-runs the displayed node's
// entry lifecycle.
func StayAndReprompt() Outcome { return Outcome{kind: outcomeStay} }

// Next returns the dynamic override, if any.
func (o Outcome) Next() (*Node, bool) {
	return o.next, o.kind == outcomeAdvance
}

// Stays reports whether the handler asked to stay and re-prompt.
func (o Outcome) Stays() bool { return o.kind == outcomeStay }
