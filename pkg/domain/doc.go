/*
Package domain contains the core domain models for the Arbor dialog router.

It defines the data carried across the routing boundary: inbound events,
outbound payloads and keyboard directives, lifecycle events for
observability, and session snapshots for introspection. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Event: The inbound unit (user identifier + matchable content).
  - Payload: Outbound content: text, a media item, or an ordered sequence.
  - Keyboard: An immutable reply/inline/removal keyboard directive.
  - LifecycleHooks: Observability callbacks for routing and node transitions.
  - SessionSnapshot: A read-only per-user traversal snapshot.
*/
package domain
