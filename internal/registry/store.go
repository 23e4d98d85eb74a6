package registry

import (
	"context"

	"github.com/google/uuid"
)

// Price is the value held by one price table entry. Non-negative by
// construction: JSON bodies carrying a negative or fractional price fail
// to decode.
type Price uint64

// Store is the price table. Implementations must be safe for concurrent
// use: reads may overlap, mutations are exclusive.
type Store interface {
	// List returns all current price values in no particular order.
	List() []Price

	// Create inserts a new entry under id. Callers mint id themselves;
	// identifiers are drawn from a 128-bit random space, so collisions
	// are not handled.
	Create(id uuid.UUID, p Price)

	// Get reports the value under id and whether the entry exists.
	Get(id uuid.UUID) (Price, bool)

	// Update replaces the value under id in full. Returns false when the
	// entry does not exist; nothing is inserted in that case.
	Update(id uuid.UUID, p Price) bool

	// Delete removes the entry under id, reporting whether it existed.
	Delete(id uuid.UUID) bool

	// Ping reports whether the store can serve requests.
	Ping(ctx context.Context) error
}

func NewStore() Store {
	return NewMemStore()
}
