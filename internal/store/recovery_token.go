package store

import (
	"context"
	"database/sql"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
	"github.com/google/uuid"
)

// RecoveryTokenStore defines the interface for password recovery token
// persistence. Only the recovery flow controller talks to this store;
// tokens are never handed to API callers.
type RecoveryTokenStore interface {
	// Create persists a new recovery token.
	// Returns ErrTokenExists if the token string collides with an existing
	// one (backstopped by the store's unique constraint).
	Create(ctx context.Context, token *domain.RecoveryToken) error

	// GetByToken retrieves a recovery token by exact string match.
	// Returns ErrTokenNotFound if no such token exists; an already-consumed
	// token is indistinguishable from one that never existed.
	GetByToken(ctx context.Context, token string) (*domain.RecoveryToken, error)

	// Delete consumes a token by ID. Returns ErrTokenNotFound if the token
	// was already consumed.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteForUser removes all recovery tokens for the given user. Used on
	// issuance to enforce the at-most-one-live-token invariant. Deleting
	// zero rows is not an error.
	DeleteForUser(ctx context.Context, userID uuid.UUID) error

	// WithTx returns a new RecoveryTokenStore instance that uses the
	// provided transaction.
	WithTx(tx *sql.Tx) RecoveryTokenStore
}
