package ports

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

// Handler is the check-then-act contract an outer priority-ordered
// dispatcher drives: Matches must be consulted (and return true) before
// Handle is invoked for the same event. A false from Matches is a "not for
// me" signal, not an error; the dispatcher tries its other handlers.
//
// R is the result type Handle yields to callers composing the handler inside
// a larger dispatch tree.
type Handler[R any] interface {
	Matches(ev domain.Event) bool
	Handle(ctx context.Context, ev domain.Event) (R, error)
}
