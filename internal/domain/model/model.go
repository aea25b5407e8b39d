// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Lane is one of the three fixed workflow stages a client can occupy.
type Lane string

// The three recognized lanes, in board order.
const (
	LaneBacklog    Lane = "backlog"
	LaneInProgress Lane = "in-progress"
	LaneComplete   Lane = "complete"
)

// Lanes lists every lane in board order. The set is fixed; there is no
// fourth lane and no way to add one at runtime.
func Lanes() []Lane {
	return []Lane{LaneBacklog, LaneInProgress, LaneComplete}
}

// ParseLane converts a wire value into a Lane.
func ParseLane(s string) (Lane, error) {
	switch Lane(strings.TrimSpace(s)) {
	case LaneBacklog:
		return LaneBacklog, nil
	case LaneInProgress:
		return LaneInProgress, nil
	case LaneComplete:
		return LaneComplete, nil
	default:
		return "", fmt.Errorf("unrecognized lane %q", s)
	}
}

// Order returns the lane's position on the board, starting at 0 for
// backlog. Used only for stable presentation ordering.
func (l Lane) Order() int {
	switch l {
	case LaneBacklog:
		return 0
	case LaneInProgress:
		return 1
	case LaneComplete:
		return 2
	default:
		return 3
	}
}

// Client is a tracked work item. ID is immutable after seeding; only Lane
// and Priority change, and only through the reranking engine.
type Client struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Lane        Lane   `json:"lane"`
	// Priority is the dense 1-based rank within Lane; 1 is most urgent.
	Priority int `json:"priority"`
}
