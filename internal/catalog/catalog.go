// Package catalog implements the fixed set of analytical queries over
// the academic records schema. Every operation is read-only, runs in
// its own read transaction, and returns an explicit row type; a join
// path with no matches yields an empty slice, never an error.
package catalog

import (
	"log/slog"

	"github.com/leapstack-labs/registrar/internal/store"
)

// Catalog exposes the query operations over a store.
type Catalog struct {
	store  *store.Store
	logger *slog.Logger
}

// New creates a catalog over st. A nil logger discards output.
func New(st *store.Store, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{store: st, logger: logger}
}

// contains builds a case-insensitive substring LIKE pattern.
func contains(fragment string) string {
	return "%" + fragment + "%"
}
