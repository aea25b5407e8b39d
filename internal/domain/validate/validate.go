// Package validate checks move-request inputs before they reach the
// reranking engine. The engine assumes pre-validated inputs, so every
// user-supplied value passes through here first.
package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/okian/laneboard/internal/domain/model"
)

// Lookup is the read-only store access the validator needs to confirm a
// client id exists. Satisfied by the repository store.
type Lookup interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// ClientID parses raw as a client id and confirms the client exists.
// Both failure modes wrap ErrInvalidID so callers can map them to a single
// client-facing error kind while keeping the human-readable detail.
func ClientID(ctx context.Context, store Lookup, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidID, raw)
	}
	ok, err := store.Exists(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("looking up client %d: %w", id, err)
	}
	if !ok {
		return 0, fmt.Errorf("%w: no client with id %d", ErrIDNotFound, id)
	}
	return id, nil
}

// Priority validates an optional requested priority. Absence is valid and
// means "no explicit priority requested". A present value must be a
// positive integer; zero, negatives, and fractions are rejected.
func Priority(raw *json.Number) (*int, error) {
	if raw == nil {
		return nil, nil
	}
	n, err := raw.Int64()
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidPriority, raw.String())
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d is not positive", ErrInvalidPriority, n)
	}
	p := int(n)
	return &p, nil
}

// LaneName validates an optional requested lane. Absence is valid and
// means "stay in the current lane".
func LaneName(raw *string) (*model.Lane, error) {
	if raw == nil {
		return nil, nil
	}
	lane, err := model.ParseLane(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLane, *raw)
	}
	return &lane, nil
}
