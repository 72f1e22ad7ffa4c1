// Package store persists the id -> recipe mapping. The whole collection
// is the unit of durability: Load returns everything, Flush replaces
// everything. Callers own the read-modify-write cycle; the store makes
// no atomicity promise across two calls, only that a single Flush is
// all-or-nothing with respect to readers.
package store

import (
	"context"

	"github.com/fruitstand/backend/internal/model"
)

// Collection is the full id -> recipe mapping.
type Collection map[string]*model.Recipe

// Store is the durable map store behind the recipe service. Production
// backends are file (flat JSON) and bolt; tests use memory.
type Store interface {
	// Load returns the entire collection.
	Load(ctx context.Context) (Collection, error)
	// Flush atomically replaces the durable collection.
	Flush(ctx context.Context, c Collection) error
	// Close releases any underlying resources.
	Close() error
}
