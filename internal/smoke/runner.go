package smoke

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/okian/laneboard/internal/domain/model"
	"github.com/okian/laneboard/pkg/logger"

	"github.com/google/uuid"
)

// Run executes a complete smoke pass: health check, randomized move
// storm, then a density verification of the final board.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Get()
	stats := &Stats{StartTime: time.Now()}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	runID := uuid.NewString()

	log.Info(ctx, "starting smoke run",
		logger.String("run_id", runID),
		logger.String("base_url", cfg.BaseURL),
		logger.Int("moves", cfg.Moves),
		logger.Any("seed", seed),
	)

	c := newClient(cfg)
	if err := c.health(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	board, err := c.board(ctx)
	if err != nil {
		return err
	}
	if len(board) == 0 {
		return fmt.Errorf("board is empty; nothing to move")
	}
	if err := VerifyDense(board); err != nil {
		return fmt.Errorf("board invalid before any move: %w", err)
	}

	for i := 0; i < cfg.Moves; i++ {
		m := randomMove(rng, board)
		next, err := c.submit(ctx, m)
		if err != nil {
			stats.MovesFailed++
			return fmt.Errorf("move %d failed: %w", i+1, err)
		}
		stats.MovesIssued++

		if err := VerifyDense(next); err != nil {
			return fmt.Errorf("density broken after move %d (client %d): %w", i+1, m.ID, err)
		}
		if cfg.Verbose {
			log.Info(ctx, "move applied",
				logger.Int("move", i+1),
				logger.Int("client", m.ID),
			)
		}
		board = next
	}

	stats.Duration = time.Since(stats.StartTime)
	log.Info(ctx, "smoke run passed",
		logger.String("run_id", runID),
		logger.Int("moves", stats.MovesIssued),
		logger.String("duration", stats.Duration.String()),
	)
	return nil
}

// randomMove picks a client and a destination. Roughly a third of moves
// omit the lane, a third omit the priority, and the rest set both, so
// all clamping and defaulting paths get traffic.
func randomMove(rng *rand.Rand, board []model.Client) move {
	target := board[rng.Intn(len(board))]
	lanes := model.Lanes()

	m := move{ID: target.ID}
	switch rng.Intn(3) {
	case 0:
		p := 1 + rng.Intn(len(board)+2) // occasionally past the end, to hit clamping
		m.Priority = &p
	case 1:
		l := lanes[rng.Intn(len(lanes))]
		m.Lane = &l
	default:
		l := lanes[rng.Intn(len(lanes))]
		p := 1 + rng.Intn(len(board)+2)
		m.Lane = &l
		m.Priority = &p
	}
	return m
}
