package dialog

import (
	"context"
	"regexp"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// HandlerFunc is the callback half of a matcher. It may send replies through
// the channel and steers the traversal with its Outcome. A nil HandlerFunc
// is a valid no-op that yields None.
type HandlerFunc func(ctx context.Context, ev domain.Event, ch ports.Channel) (Outcome, error)

// Matcher pairs a predicate with the handler invoked when the predicate
// accepts an event. Within any matcher list the first matcher (in declared
// order) that accepts wins; later matchers are never evaluated.
type Matcher interface {
	Match(ev domain.Event) bool
	Handle(ctx context.Context, ev domain.Event, ch ports.Channel) (Outcome, error)
}

type funcMatcher struct {
	match  func(domain.Event) bool
	handle HandlerFunc
}

func (m *funcMatcher) Match(ev domain.Event) bool {
	return m.match(ev)
}

func (m *funcMatcher) Handle(ctx context.Context, ev domain.Event, ch ports.Channel) (Outcome, error) {
	if m.handle == nil {
		return None(), nil
	}
	return m.handle(ctx, ev, ch)
}

// On builds a matcher from an arbitrary predicate.
func On(match func(domain.Event) bool, handle HandlerFunc) Matcher {
	return &funcMatcher{match: match, handle: handle}
}

// OnText matches the exact text token.
func OnText(text string, handle HandlerFunc) Matcher {
	return On(func(ev domain.Event) bool {
		return ev.Text() == text
	}, handle)
}

// OnPrefix matches any text starting with the given prefix.
func OnPrefix(prefix string, handle HandlerFunc) Matcher {
	return On(func(ev domain.Event) bool {
		return strings.HasPrefix(ev.Text(), prefix)
	}, handle)
}

// OnRegex matches text against the pattern. The pattern must compile; a bad
// pattern is a configuration error and fails fast at tree construction.
func OnRegex(pattern string, handle HandlerFunc) Matcher {
	re := regexp.MustCompile(pattern)
	return On(func(ev domain.Event) bool {
		return re.MatchString(ev.Text())
	}, handle)
}

// OnMedia matches events carrying an attachment of the given kind.
func OnMedia(kind domain.MediaKind, handle HandlerFunc) Matcher {
	return On(func(ev domain.Event) bool {
		a, ok := ev.(domain.Attachable)
		if !ok {
			return false
		}
		att := a.Attachment()
		return att != nil && att.Kind == kind
	}, handle)
}

// OnAny matches every event. Useful as the last in-node matcher or as a
// fallback.
func OnAny(handle HandlerFunc) Matcher {
	return On(func(domain.Event) bool { return true }, handle)
}
