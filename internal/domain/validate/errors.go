package validate

import (
	"errors"
	"fmt"
)

// Sentinel kinds for validation failures. Each carries a short machine
// tag; the wrapping sites add the human-readable detail.
var (
	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidLane     = errors.New("invalid lane")
	ErrInvalidPriority = errors.New("invalid priority")
)

// ErrIDNotFound is the "well-formed but unknown" flavor of ErrInvalidID.
// It unwraps to ErrInvalidID, so both flavors share one machine tag while
// the HTTP layer can still pick a not-found status for this one.
var ErrIDNotFound = fmt.Errorf("%w: not found", ErrInvalidID)
