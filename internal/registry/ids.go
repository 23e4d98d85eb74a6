package registry

import "github.com/google/uuid"

// IDMinter mints identifiers for newly created price records. Tests swap
// in fixed values; production uses RandomIDs.
type IDMinter interface {
	Mint() uuid.UUID
}

type RandomIDs struct{}

func (RandomIDs) Mint() uuid.UUID { return uuid.New() }
