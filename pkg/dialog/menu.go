package dialog

import "github.com/aretw0/arbor/pkg/domain"

// menu is the composition capability: the node's in-node matcher list is the
// concatenation, in declared child order, of each child's entry matchers.
// owners maps each contributed in-node matcher back to its child, so the
// elected child is known at match time.
type menu struct {
	children []*Node
	owners   []*Node
}

// owner returns the child that contributed the in-node matcher at index i,
// or nil for matchers declared directly on the node.
func (m *menu) owner(i int) *Node {
	if i < len(m.owners) {
		return m.owners[i]
	}
	return nil
}

// NewMenu constructs a composite node presenting its children as selectable
// options. Children are declared in rows; the auto-built reply keyboard
// mirrors the row structure using the names of named children. If two
// children share an equivalent entry matcher the first-declared child wins;
// declaration order is the only tie-break.
func NewMenu(rows [][]*Node, opts ...Option) *Node {
	n := New(opts...)
	attachMenu(n, rows)
	return n
}

// NamedMenu fuses identity and composition: the menu matches its own name as
// an entry token, and any subsequent message matching a child's name routes
// into that child.
func NamedMenu(name string, callback HandlerFunc, rows [][]*Node, opts ...Option) *Node {
	n := Named(name, callback, opts...)
	attachMenu(n, rows)
	return n
}

func attachMenu(n *Node, rows [][]*Node) {
	// In-node matchers declared directly on the node (before composition)
	// have no owning child.
	m := &menu{owners: make([]*Node, len(n.inside))}
	var kbRows [][]string
	for _, row := range rows {
		var kbRow []string
		for _, child := range row {
			m.children = append(m.children, child)
			if child.Name() != "" {
				kbRow = append(kbRow, child.Name())
			}
			for _, em := range child.entry {
				n.inside = append(n.inside, em)
				m.owners = append(m.owners, child)
			}
		}
		if len(kbRow) > 0 {
			kbRows = append(kbRows, kbRow)
		}
	}
	if n.kbFromNames && n.keyboard.IsZero() && len(kbRows) > 0 {
		n.keyboard = domain.ReplyKeyboard(kbRows...)
	}
	n.menu = m
}
