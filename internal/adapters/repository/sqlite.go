package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/laneboard/internal/domain/model"
	"github.com/okian/laneboard/pkg/metrics"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// MemoryPath selects a non-persistent in-memory database, used by tests
// and as a zero-config default.
const MemoryPath = ":memory:"

// laneOrderExpr keeps list output in board order without a join table.
const laneOrderExpr = `CASE lane WHEN 'backlog' THEN 0 WHEN 'in-progress' THEN 1 ELSE 2 END`

// SQLiteStore implements Store on a single SQLite database file.
type SQLiteStore struct {
	db   *sql.DB
	path string
	seed []model.Client
}

// Compile-time check that SQLiteStore satisfies Store.
var _ Store = (*SQLiteStore)(nil)

// New opens (creating if necessary) the database at path, applies the
// schema, and seeds the configured client set when the table is empty.
// Pass MemoryPath for a throwaway in-memory store.
func New(ctx context.Context, path string, opts ...Option) (*SQLiteStore, error) {
	s := &SQLiteStore{path: path}
	for _, opt := range opts {
		opt(s)
	}

	dsn := path
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("%w: creating store directory: %v", ErrStore, err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrStore, path, err)
	}
	// One connection: the service is single-writer and this keeps the
	// in-memory mode coherent (each sqlite :memory: connection is its
	// own database).
	db.SetMaxOpenConns(1)
	s.db = db

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: applying schema: %v", ErrStore, err)
	}
	if err := s.seedIfEmpty(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// seedIfEmpty inserts the configured seed set when the table has no rows.
func (s *SQLiteStore) seedIfEmpty(ctx context.Context) error {
	if len(s.seed) == 0 {
		return nil
	}
	n, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin seed: %v", ErrStore, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO clients (id, name, description, lane, priority) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare seed: %v", ErrStore, err)
	}
	defer func() { _ = stmt.Close() }()

	for _, c := range s.seed {
		if _, err := stmt.ExecContext(ctx, c.ID, c.Name, c.Description, string(c.Lane), c.Priority); err != nil {
			return fmt.Errorf("%w: seeding client %d: %v", ErrStore, c.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit seed: %v", ErrStore, err)
	}
	return nil
}

// GetAll returns every client, ordered by lane then priority.
func (s *SQLiteStore) GetAll(ctx context.Context) ([]model.Client, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreQueryDuration("get_all", msSince(start)) }()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, lane, priority FROM clients ORDER BY `+laneOrderExpr+`, priority`)
	if err != nil {
		metrics.RecordStoreError("get_all")
		return nil, fmt.Errorf("%w: listing clients: %v", ErrStore, err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Client
	for rows.Next() {
		var c model.Client
		var lane string
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &lane, &c.Priority); err != nil {
			metrics.RecordStoreError("get_all")
			return nil, fmt.Errorf("%w: scanning client row: %v", ErrStore, err)
		}
		c.Lane = model.Lane(lane)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		metrics.RecordStoreError("get_all")
		return nil, fmt.Errorf("%w: reading client rows: %v", ErrStore, err)
	}
	return out, nil
}

// GetByID returns one client or ErrNotFound.
func (s *SQLiteStore) GetByID(ctx context.Context, id int) (model.Client, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreQueryDuration("get_by_id", msSince(start)) }()

	var c model.Client
	var lane string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, lane, priority FROM clients WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Description, &lane, &c.Priority)
	if err == sql.ErrNoRows {
		return model.Client{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		metrics.RecordStoreError("get_by_id")
		return model.Client{}, fmt.Errorf("%w: fetching client %d: %v", ErrStore, id, err)
	}
	c.Lane = model.Lane(lane)
	return c, nil
}

// Exists reports whether a client id is tracked.
func (s *SQLiteStore) Exists(ctx context.Context, id int) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM clients WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		metrics.RecordStoreError("exists")
		return false, fmt.Errorf("%w: checking client %d: %v", ErrStore, id, err)
	}
	return true, nil
}

// SaveAll overwrites lane and priority for every listed client inside one
// transaction. A client id with no row fails the whole batch.
func (s *SQLiteStore) SaveAll(ctx context.Context, clients []model.Client) error {
	start := time.Now()
	defer func() { metrics.RecordStoreQueryDuration("save_all", msSince(start)) }()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		metrics.RecordStoreError("save_all")
		return fmt.Errorf("%w: begin save: %v", ErrStore, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `UPDATE clients SET lane = ?, priority = ? WHERE id = ?`)
	if err != nil {
		metrics.RecordStoreError("save_all")
		return fmt.Errorf("%w: prepare save: %v", ErrStore, err)
	}
	defer func() { _ = stmt.Close() }()

	for _, c := range clients {
		res, err := stmt.ExecContext(ctx, string(c.Lane), c.Priority, c.ID)
		if err != nil {
			metrics.RecordStoreError("save_all")
			return fmt.Errorf("%w: updating client %d: %v", ErrStore, c.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			metrics.RecordStoreError("save_all")
			return fmt.Errorf("%w: updating client %d: %v", ErrStore, c.ID, err)
		}
		if n == 0 {
			return fmt.Errorf("%w: id %d", ErrNotFound, c.ID)
		}
	}
	if err := tx.Commit(); err != nil {
		metrics.RecordStoreError("save_all")
		return fmt.Errorf("%w: commit save: %v", ErrStore, err)
	}
	return nil
}

// Count returns the number of tracked clients.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n); err != nil {
		metrics.RecordStoreError("count")
		return 0, fmt.Errorf("%w: counting clients: %v", ErrStore, err)
	}
	return n, nil
}

// Path returns the database location, for stats reporting.
func (s *SQLiteStore) Path() string { return s.path }

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: closing store: %v", ErrStore, err)
	}
	return nil
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1e3
}
