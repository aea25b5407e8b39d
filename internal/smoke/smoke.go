// Package smoke exercises a running laneboard instance: it fires a
// stream of randomized move requests at the HTTP API, then re-reads the
// board and checks that every lane still holds a dense 1-based ranking.
package smoke

import (
	"time"

	"github.com/okian/laneboard/internal/domain/model"
)

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL string        // base URL of the service
	Moves   int           // number of move requests to issue
	Seed    int64         // RNG seed; zero picks one from the clock
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // log every move
}

// move is one randomized reorder request.
type move struct {
	ID       int
	Lane     *model.Lane
	Priority *int
}

// Stats summarizes a smoke run.
type Stats struct {
	MovesIssued int
	MovesFailed int
	StartTime   time.Time
	Duration    time.Duration
}
