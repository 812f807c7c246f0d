/*
Package dialog defines the static configuration of a conversation tree:
nodes, their matchers, and the tagged outcomes handlers use to steer
traversal.

Nodes are built once at startup and shared read-only across every session;
the router (pkg/router) drives their lifecycle against per-user session
state (pkg/session). Identity and menu composition are capabilities attached
at construction rather than subclasses: see Named, NewMenu and NamedMenu.
*/
package dialog
