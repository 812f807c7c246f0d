/*
Package router implements the ordered-precedence event routing protocol over
a dialog tree.

For every inbound event the router elects exactly one consumer (a
subsystem-entry matcher, the back handler, a subsystem-exit matcher, the
user's current node, or a top-level fallback), short-circuiting at the first
match, and then drives the node lifecycle transition that election dictates.
Per-user traversal state lives in pkg/session; the tree itself (pkg/dialog)
is immutable shared configuration.
*/
package router
