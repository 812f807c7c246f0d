package domain

// maxRowLen caps how many buttons share a row when the back affordance is
// appended to an existing keyboard.
const maxRowLen = 2

// Button is a single inline-keyboard button.
type Button struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// Keyboard is an immutable keyboard directive built once at node
// construction. Derived variants (e.g. with a back button appended) are
// produced as structurally-shared copies; the original is never mutated, so
// it is safe to share one Keyboard across all sessions.
type Keyboard struct {
	rows   [][]string
	inline [][]Button
	remove bool
}

// ReplyKeyboard builds a reply-keyboard directive from button label rows.
// The rows are copied so later changes by the caller cannot leak in.
func ReplyKeyboard(rows ...[]string) Keyboard {
	cp := make([][]string, len(rows))
	for i, row := range rows {
		cp[i] = append([]string(nil), row...)
	}
	return Keyboard{rows: cp}
}

// InlineKeyboard builds an inline-keyboard directive.
func InlineKeyboard(rows ...[]Button) Keyboard {
	cp := make([][]Button, len(rows))
	for i, row := range rows {
		cp[i] = append([]Button(nil), row...)
	}
	return Keyboard{inline: cp}
}

// RemoveKeyboard directs the channel to dismiss any visible reply keyboard.
func RemoveKeyboard() Keyboard {
	return Keyboard{remove: true}
}

// IsZero reports whether no directive is configured at all.
func (k Keyboard) IsZero() bool {
	return k.rows == nil && k.inline == nil && !k.remove
}

// HasReplyRows reports whether this is a reply-keyboard directive.
func (k Keyboard) HasReplyRows() bool { return len(k.rows) > 0 }

// Rows exposes the reply-keyboard rows. The returned slices are a read-only
// view; callers must not modify them.
func (k Keyboard) Rows() [][]string { return k.rows }

// Inline exposes the inline-keyboard rows as a read-only view.
func (k Keyboard) Inline() [][]Button { return k.inline }

// Removes reports whether this directive removes the visible keyboard.
func (k Keyboard) Removes() bool { return k.remove }

// WithButton returns a copy of a reply keyboard with one more button. The
// button joins the last row while it holds fewer than two buttons, otherwise
// it starts a new row. All untouched rows are shared with the receiver.
func (k Keyboard) WithButton(label string) Keyboard {
	if k.rows == nil {
		return ReplyKeyboard([]string{label})
	}
	rows := append([][]string(nil), k.rows...)
	last := len(rows) - 1
	if len(rows[last]) < maxRowLen {
		rows[last] = append(append([]string(nil), rows[last]...), label)
	} else {
		rows = append(rows, []string{label})
	}
	return Keyboard{rows: rows}
}
