package rerank

import "errors"

// ErrUnknownClient reports a target id that is not present in the snapshot
// handed to the engine. Inputs are validated before the engine runs, so
// this is a caller bug rather than a user-facing condition.
var ErrUnknownClient = errors.New("unknown client in rerank input")
