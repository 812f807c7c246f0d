/*
Package session holds the per-user mutable state of the dialog router: the
session itself, the back-navigation history stack, and the lazily-populated
registry mapping user identifiers to sessions.
*/
package session
