package hookstate

import (
	"errors"
)

// common errors
var (
	ErrNotFound         = errors.New("not found")
	ErrUnknownStateKey  = errors.New("unknown state key")
	ErrInvalidStateKey  = errors.New("invalid state key")
	ErrInvalidStateData = errors.New("invalid state data")
	ErrInvalidLength    = errors.New("invalid input length")
	ErrInvalidXfl       = errors.New("invalid xfl value")
)

// IsAbsence returns true for errors that mean "no such entry" rather
// than a protocol mismatch. Absence is not a failure, the caller reads
// it as "not registered" / "no candidate" / "no reputation data".
func IsAbsence(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStructural returns true for decode failures that signal a protocol
// version mismatch between this client and the deployed hooks. These
// must be surfaced, never swallowed.
func IsStructural(err error) bool {
	return errors.Is(err, ErrInvalidStateData) || errors.Is(err, ErrUnknownStateKey)
}
