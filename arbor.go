package arbor

import (
	"github.com/aretw0/arbor/pkg/dialog"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/aretw0/arbor/pkg/router"
)

// Router is the top-level dialog handler. See pkg/router for the full API.
type Router = router.Router

// Option configures the Router.
type Option = router.Option

// New creates a dialog router for the given tree root, sending through the
// given channel. It is the library entry point:
//
//	menu := dialog.NamedMenu("menu", nil, [][]*dialog.Node{{faq, support}},
//		dialog.WithGreeting(domain.NewText("What can I do for you?")),
//	)
//	r := arbor.New(menu, channel,
//		arbor.WithEntry(dialog.OnText("/start", nil)),
//		arbor.WithBackTrigger("⬅ back"),
//	)
//
// Register r with your dispatcher; it consumes events only after Matches
// returns true, per the check-then-act contract in pkg/ports.
func New(root *dialog.Node, channel ports.Channel, opts ...Option) *Router {
	return router.New(root, channel, opts...)
}

// Re-exported options, so simple setups need only the arbor and dialog
// packages.
var (
	WithEntry          = router.WithEntry
	WithBackTrigger    = router.WithBackTrigger
	WithBackCallback   = router.WithBackCallback
	WithBackMatchers   = router.WithBackMatchers
	WithExit           = router.WithExit
	WithFallbacks      = router.WithFallbacks
	WithReentry        = router.WithReentry
	WithLifecycleHooks = router.WithLifecycleHooks
	WithSnapshotStore  = router.WithSnapshotStore
	WithLogger         = router.WithLogger
)
