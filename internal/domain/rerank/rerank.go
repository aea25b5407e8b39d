// Package rerank computes dense per-lane priority assignments when a
// single client moves. It is the only code allowed to change a client's
// lane or priority.
//
// The engine is a pure function over a snapshot of the board: it never
// performs I/O, never mutates its input, and returns a fully materialized
// next state for the caller to persist in one transaction. For every lane
// the returned state keeps priorities dense: exactly {1..count(lane)},
// no gaps, no duplicates.
package rerank

import (
	"fmt"

	"github.com/okian/laneboard/internal/domain/model"
)

// Move returns the board state after moving the client with targetID.
//
// lane and priority are the requested destination; either may be nil.
// A nil lane means "stay in the current lane". A nil priority means
// "bottom of the destination lane" for a cross-lane move and "leave
// everything as is" for a same-lane move. A priority past the end of the
// destination lane is clamped to the bottom rather than rejected.
//
// Inputs are assumed pre-validated: a targetID absent from items is a
// broken caller contract and yields ErrUnknownClient. The input slice is
// never modified; the result is always a fresh slice.
func Move(items []model.Client, targetID int, lane *model.Lane, priority *int) ([]model.Client, error) {
	idx := -1
	for i := range items {
		if items[i].ID == targetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownClient, targetID)
	}

	origLane := items[idx].Lane
	origRank := items[idx].Priority

	destLane := origLane
	if lane != nil {
		destLane = *lane
	}

	// Bottom of the destination lane once the target is in it: the lane's
	// other members plus the target itself. Works for both same-lane and
	// cross-lane moves because the target is counted exactly once.
	maxRank := 1
	for i := range items {
		if items[i].ID != targetID && items[i].Lane == destLane {
			maxRank++
		}
	}

	var destRank int
	switch {
	case priority != nil:
		destRank = *priority
		if destRank > maxRank {
			destRank = maxRank
		}
	case destLane == origLane:
		// No lane change and no explicit priority: nothing to do.
		destRank = origRank
	default:
		destRank = maxRank
	}

	next := make([]model.Client, len(items))
	copy(next, items)

	if destLane == origLane && destRank == origRank {
		return next, nil
	}

	for i := range next {
		if next[i].ID == targetID {
			next[i].Lane = destLane
			next[i].Priority = destRank
			continue
		}
		c := &next[i]
		if destLane == origLane {
			if c.Lane != destLane {
				continue
			}
			switch {
			case destRank < origRank && c.Priority >= destRank && c.Priority < origRank:
				// Target moves up; displaced neighbors slide down one.
				c.Priority++
			case destRank > origRank && c.Priority > origRank && c.Priority <= destRank:
				// Target moves down; neighbors above the gap slide up one.
				c.Priority--
			}
			continue
		}
		// Cross-lane: close the gap left behind, then open the slot ahead.
		if c.Lane == origLane && c.Priority >= origRank {
			c.Priority--
		}
		if c.Lane == destLane && c.Priority >= destRank {
			c.Priority++
		}
	}

	return next, nil
}
