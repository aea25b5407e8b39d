// Package service provides the core business service that implements the
// dependencies required by the HTTP API: board reads and the single
// serialized write path through the reranking engine.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/laneboard/internal/adapters/repository"
	"github.com/okian/laneboard/internal/domain/model"
	"github.com/okian/laneboard/internal/domain/rerank"
	"github.com/okian/laneboard/pkg/logger"
	"github.com/okian/laneboard/pkg/metrics"
)

// Service owns the record store handle for the process lifetime and
// serializes all moves: one writer at a time, per the board's
// single-writer model.
type Service struct {
	mu sync.Mutex

	store  repository.Store
	dbPath string
	seed   []model.Client

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDBPath sets the SQLite database location.
func WithDBPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dbPath = path
		}
	}
}

// WithSeed sets the client set used to populate an empty store.
func WithSeed(clients []model.Client) Option {
	return func(s *Service) {
		s.seed = clients
	}
}

// WithStore injects a pre-built store, bypassing DB setup. The service
// still owns teardown.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration: in-memory store,
// fixed seed board.
func New(opts ...Option) *Service {
	s := &Service{
		dbPath: repository.MemoryPath,
		seed:   repository.SeedClients(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens and seeds the record store. Idempotent.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		store, err := repository.New(ctx, s.dbPath, repository.WithSeed(s.seed))
		if err != nil {
			return fmt.Errorf("opening record store: %w", err)
		}
		s.store = store
	}

	clients, err := s.store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("reading initial board: %w", err)
	}
	refreshBoardGauges(clients)

	s.started = true
	s.logger.Info(ctx, "board service started",
		logger.String("db_path", s.dbPath),
		logger.Int("clients", len(clients)),
	)
	return nil
}

// Stop closes the store handle. Idempotent.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Error(context.Background(), "closing record store", logger.Error(err))
	}
	s.started = false
	s.logger.Info(context.Background(), "board service stopped")
}

// List returns the board, optionally filtered to one lane, ordered by
// lane then priority.
func (s *Service) List(ctx context.Context, lane *model.Lane) ([]model.Client, error) {
	clients, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if lane == nil {
		return clients, nil
	}
	filtered := make([]model.Client, 0, len(clients))
	for _, c := range clients {
		if c.Lane == *lane {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Get returns one client by id.
func (s *Service) Get(ctx context.Context, id int) (model.Client, error) {
	return s.store.GetByID(ctx, id)
}

// Exists reports whether a client id is tracked. Satisfies the
// validator's Lookup.
func (s *Service) Exists(ctx context.Context, id int) (bool, error) {
	return s.store.Exists(ctx, id)
}

// Move re-ranks the board for one client's lane/priority change and
// persists the result atomically, returning the full updated board.
// Inputs must be pre-validated; an unknown id surfacing here is an
// invariant failure, logged and returned as an error.
func (s *Service) Move(ctx context.Context, id int, lane *model.Lane, priority *int) ([]model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()

	current, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var before model.Client
	for _, c := range current {
		if c.ID == id {
			before = c
			break
		}
	}

	next, err := rerank.Move(current, id, lane, priority)
	if err != nil {
		s.logger.Error(ctx, "rerank contract violation",
			logger.Int("id", id),
			logger.Error(err),
		)
		return nil, err
	}

	var after model.Client
	for _, c := range next {
		if c.ID == id {
			after = c
			break
		}
	}

	kind := moveKind(before, after)
	if kind == "noop" {
		// True no-op: nothing changed, nothing to persist.
		metrics.RecordMove(kind)
		return next, nil
	}

	if err := s.store.SaveAll(ctx, next); err != nil {
		return nil, err
	}

	metrics.RecordMove(kind)
	metrics.RecordMoveDuration(float64(time.Since(start).Microseconds()) / 1e3)
	refreshBoardGauges(next)

	s.logger.Info(ctx, "client moved",
		logger.Int("id", id),
		logger.String("kind", kind),
		logger.String("from_lane", string(before.Lane)),
		logger.Int("from_priority", before.Priority),
		logger.String("to_lane", string(after.Lane)),
		logger.Int("to_priority", after.Priority),
	)
	return next, nil
}

// GetStats returns a point-in-time snapshot for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	stats := map[string]interface{}{
		"dbPath": s.dbPath,
	}
	clients, err := s.store.GetAll(ctx)
	if err != nil {
		stats["error"] = err.Error()
		return stats
	}
	stats["totalClients"] = len(clients)
	for _, lane := range model.Lanes() {
		n := 0
		for _, c := range clients {
			if c.Lane == lane {
				n++
			}
		}
		stats[string(lane)] = n
	}
	return stats
}

func moveKind(before, after model.Client) string {
	switch {
	case before.Lane == after.Lane && before.Priority == after.Priority:
		return "noop"
	case before.Lane == after.Lane:
		return "same_lane"
	default:
		return "cross_lane"
	}
}

func refreshBoardGauges(clients []model.Client) {
	total := 0
	for _, lane := range model.Lanes() {
		n := 0
		for _, c := range clients {
			if c.Lane == lane {
				n++
			}
		}
		metrics.UpdateLaneSize(string(lane), n)
		total += n
	}
	metrics.UpdateTotalClients(total)
}
