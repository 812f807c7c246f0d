package dialog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor/pkg/dialog"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

func msg(text string) domain.Event {
	return domain.Message{User: "u1", Body: text}
}

func TestNode_Match(t *testing.T) {
	n := dialog.New(
		dialog.WithEntry(dialog.OnText("open", nil)),
		dialog.WithInside(dialog.OnText("body", nil)),
		dialog.WithFallbacks(dialog.OnAny(nil)),
	)

	t.Run("outside only entry matchers apply", func(t *testing.T) {
		el, ok := n.Match(msg("open"), false)
		require.True(t, ok)
		assert.Equal(t, dialog.ElectEntry, el.Kind)

		_, ok = n.Match(msg("body"), false)
		assert.False(t, ok)
	})

	t.Run("inside matchers outrank fallbacks", func(t *testing.T) {
		el, ok := n.Match(msg("body"), true)
		require.True(t, ok)
		assert.Equal(t, dialog.ElectInside, el.Kind)

		el, ok = n.Match(msg("nonsense"), true)
		require.True(t, ok)
		assert.Equal(t, dialog.ElectFallback, el.Kind)
	})

	t.Run("inside entry matchers do not apply", func(t *testing.T) {
		n := dialog.New(dialog.WithEntry(dialog.OnText("open", nil)))
		_, ok := n.Match(msg("open"), true)
		assert.False(t, ok)
	})
}

func TestNode_Defaults(t *testing.T) {
	n := dialog.New()
	assert.True(t, n.AutoEntry())
	assert.True(t, n.InHistory())
	assert.True(t, n.AllowsBack())
	assert.False(t, n.HasInsideMatchers())
	assert.Nil(t, n.EntryCallback())
	assert.Nil(t, n.Children())
}

func TestNamed_EntryByName(t *testing.T) {
	var called int
	n := dialog.Named("orders", func(ctx context.Context, ev domain.Event, ch ports.Channel) (dialog.Outcome, error) {
		called++
		return dialog.None(), nil
	})

	assert.Equal(t, "orders", n.Name())

	el, ok := n.Match(msg("orders"), false)
	require.True(t, ok)
	assert.Equal(t, dialog.ElectEntry, el.Kind)

	_, err := el.Matcher.Handle(context.Background(), msg("orders"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, called)

	// The name matcher doubles as the entry-handler callback.
	require.NotNil(t, n.EntryCallback())
	_, err = n.EntryCallback().Handle(context.Background(), msg("orders"), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, called)
}

func TestNode_Then(t *testing.T) {
	a := dialog.New()
	b := dialog.New()
	c := dialog.New()

	got := a.Then(b).Then(c)

	assert.Same(t, c, got)
	assert.Same(t, b, a.Successor())
	assert.Same(t, c, b.Successor())
}

func TestMenu_ChildElection(t *testing.T) {
	a := dialog.Named("a", nil)
	b := dialog.Named("b", nil)
	m := dialog.NewMenu([][]*dialog.Node{{a, b}})

	el, ok := m.Match(msg("b"), true)
	require.True(t, ok)
	assert.Equal(t, dialog.ElectInside, el.Kind)
	assert.Same(t, b, el.Child)

	assert.Equal(t, []*dialog.Node{a, b}, m.Children())
}

func TestMenu_FirstDeclaredChildWins(t *testing.T) {
	first := dialog.Named("dup", nil)
	second := dialog.Named("dup", nil)
	m := dialog.NewMenu([][]*dialog.Node{{first, second}})

	el, ok := m.Match(msg("dup"), true)
	require.True(t, ok)
	assert.Same(t, first, el.Child)
}

func TestMenu_DirectInsideMatchersHaveNoChild(t *testing.T) {
	child := dialog.Named("child", nil)
	m := dialog.NewMenu([][]*dialog.Node{{child}},
		dialog.WithInside(dialog.OnText("direct", nil)),
	)

	el, ok := m.Match(msg("direct"), true)
	require.True(t, ok)
	assert.Equal(t, dialog.ElectInside, el.Kind)
	assert.Nil(t, el.Child)

	el, ok = m.Match(msg("child"), true)
	require.True(t, ok)
	assert.Same(t, child, el.Child)
}

func TestMenu_KeyboardFromChildNames(t *testing.T) {
	a := dialog.Named("a", nil)
	b := dialog.Named("b", nil)
	c := dialog.Named("c", nil)
	unnamed := dialog.New(dialog.WithEntry(dialog.OnText("hidden", nil)))

	t.Run("mirrors the row structure", func(t *testing.T) {
		m := dialog.NewMenu([][]*dialog.Node{{a, b}, {c, unnamed}})
		assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, m.Keyboard().Rows())
	})

	t.Run("an explicit keyboard wins", func(t *testing.T) {
		m := dialog.NewMenu([][]*dialog.Node{{a}},
			dialog.WithKeyboard(domain.ReplyKeyboard([]string{"custom"})),
		)
		assert.Equal(t, [][]string{{"custom"}}, m.Keyboard().Rows())
	})

	t.Run("suppressed on request", func(t *testing.T) {
		m := dialog.NewMenu([][]*dialog.Node{{a}}, dialog.WithoutNameKeyboard())
		assert.True(t, m.Keyboard().IsZero())
	})
}
