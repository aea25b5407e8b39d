// Package repository defines the record store interface and its SQLite
// implementation. The store is the sole writer of persisted state; the
// reranking engine computes next states but never touches storage.
package repository

import (
	"context"

	"github.com/okian/laneboard/internal/domain/model"
)

// Store provides read access to the client set and the single atomic
// write path used to persist a reranked board.
type Store interface {
	// GetAll returns every client, ordered by lane then priority.
	GetAll(ctx context.Context) ([]model.Client, error)

	// GetByID returns one client. Returns ErrNotFound for unknown ids.
	GetByID(ctx context.Context, id int) (model.Client, error)

	// Exists reports whether a client with the given id is tracked.
	Exists(ctx context.Context, id int) (bool, error)

	// SaveAll overwrites lane and priority for every listed client in a
	// single transaction. Either all updates commit or none do.
	SaveAll(ctx context.Context, clients []model.Client) error

	// Count returns the number of tracked clients.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying store handle.
	Close() error
}
