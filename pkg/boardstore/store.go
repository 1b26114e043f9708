package boardstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("boardstore: not found")

// Record is a stored board: the boardspec JSON it was authored from, its
// most recent IGES export (nil until the board has been built at least
// once), and bookkeeping metadata.
type Record struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Spec      []byte    `bson:"spec" json:"spec"`
	IGES      []byte    `bson:"iges,omitempty" json:"iges,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Store is the board-record storage backend interface.
type Store interface {
	// Create assigns rec a new ID and CreatedAt/UpdatedAt, then persists
	// it.
	Create(ctx context.Context, rec *Record) error

	// Get retrieves a record by ID, or ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*Record, error)

	// Update persists changes to an existing record, refreshing
	// UpdatedAt. Returns ErrNotFound if id does not exist.
	Update(ctx context.Context, rec *Record) error

	// Delete removes a record by ID. Deleting a nonexistent ID is not an
	// error.
	Delete(ctx context.Context, id string) error

	// List returns every stored record, in no particular order.
	List(ctx context.Context) ([]*Record, error)

	// Close releases any resources held by the store (connections,
	// file handles).
	Close() error
}
