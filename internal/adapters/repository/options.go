package repository

import "github.com/okian/laneboard/internal/domain/model"

// Option applies a configuration option to the SQLiteStore.
type Option func(*SQLiteStore)

// WithSeed sets the client set inserted when the store opens empty.
// An already-populated database is left untouched.
func WithSeed(clients []model.Client) Option {
	return func(s *SQLiteStore) {
		s.seed = clients
	}
}
