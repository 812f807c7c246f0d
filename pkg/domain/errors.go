package domain

import "errors"

// ErrCaptionNotSupported is returned when a caption is paired with a media
// kind that cannot carry one.
var ErrCaptionNotSupported = errors.New("caption not supported for media kind")

// ErrSessionNotFound is returned by snapshot stores when a user has no
// recorded snapshot.
var ErrSessionNotFound = errors.New("session not found")

// ErrNoRoute is returned when Handle is invoked without a preceding
// successful Matches call for the same event, breaking the check-then-act
// contract of the outer dispatcher.
var ErrNoRoute = errors.New("no route elected for event")
