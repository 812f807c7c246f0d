/*
Package ports defines the driven ports (interfaces) at the router's
boundaries.

These interfaces decouple the core routing logic from external
implementations, allowing the router to be wired to any transport client,
dispatcher, or snapshot backend.

# Key Interfaces

  - Channel: The outbound collaborator (typing indicator, replies).
  - Handler: The check-then-act contract driven by an outer dispatcher.
  - SnapshotStore: Persistence for introspection snapshots.
*/
package ports
