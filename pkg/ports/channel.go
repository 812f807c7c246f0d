package ports

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

// Channel is the outbound collaborator the router sends through. The router
// treats sends as fire-and-forget: a channel failure is logged by the caller
// but never rolls back session transitions already applied.
type Channel interface {
	// SendTyping signals a best-effort "working" indicator to the user.
	SendTyping(ctx context.Context, userID string) error

	// Reply delivers a payload in response to an inbound event. The keyboard
	// directive may be zero. Silent replies suppress user notification.
	Reply(ctx context.Context, ev domain.Event, payload domain.Payload, keyboard domain.Keyboard, silent bool) error
}
