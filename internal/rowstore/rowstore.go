// Package rowstore defines the persistence port: named row collections
// scoped to the authenticated user. Implementations live in the supabase
// (hosted backend) and postgres (self-hosted) subpackages.
package rowstore

import (
	"context"
	"errors"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/mapper"
)

var (
	ErrNoSession = errors.New("no authenticated session")
	ErrNotFound  = errors.New("row not found")
)

// Store is a row-oriented store addressed by collection name. Every call
// is implicitly scoped to the authenticated user; implementations attach
// the user id on writes and filter on reads.
type Store interface {
	// Select returns all of the user's rows in the collection.
	Select(ctx context.Context, collection string) ([]mapper.Record, error)
	// Insert stores a new row, letting the backend assign the id.
	Insert(ctx context.Context, collection string, rec mapper.Record) (mapper.Record, error)
	// Upsert inserts the row or fully replaces the one matching its id.
	Upsert(ctx context.Context, collection string, rec mapper.Record) error
	// Update applies a partial patch to the row with the given id.
	Update(ctx context.Context, collection, id string, patch mapper.Record) error
	// Delete removes the row with the given id.
	Delete(ctx context.Context, collection, id string) error
}

// Session exposes the authenticated identity whose rows are being
// managed. Absence of a session gates all data operations.
type Session interface {
	UserID() string
}
