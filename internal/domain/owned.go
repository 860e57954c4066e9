package domain

import "github.com/google/uuid"

// Owned is implemented by any entity bound to a single owning account.
// The authorization layer uses it to decide whether a caller may act on
// a record.
type Owned interface {
	OwnerID() uuid.UUID
}
