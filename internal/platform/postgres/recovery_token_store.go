package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
	"github.com/Marcosdev03/projeto-checklistv02/internal/platform/logger"
	"github.com/Marcosdev03/projeto-checklistv02/internal/store"
	"github.com/google/uuid"
)

// RecoveryTokenStore implements the store.RecoveryTokenStore interface
// using a PostgreSQL database as the storage backend.
type RecoveryTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRecoveryTokenStore creates a new PostgreSQL implementation of the
// RecoveryTokenStore interface. If logger is nil, the default logger is used.
func NewRecoveryTokenStore(db store.DBTX, logger *slog.Logger) *RecoveryTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &RecoveryTokenStore{
		db:     db,
		logger: logger.With(slog.String("component", "recovery_token_store")),
	}
}

// Ensure RecoveryTokenStore implements store.RecoveryTokenStore interface
var _ store.RecoveryTokenStore = (*RecoveryTokenStore)(nil)

// Create implements store.RecoveryTokenStore.Create
// Returns store.ErrTokenExists on a token string collision.
func (s *RecoveryTokenStore) Create(ctx context.Context, token *domain.RecoveryToken) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := token.Validate(); err != nil {
		log.Warn("recovery token validation failed during create",
			slog.String("error", err.Error()),
			slog.String("token_id", token.ID.String()))
		return err
	}

	query := `
		INSERT INTO recovery_tokens (id, user_id, token, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		token.ID,
		token.UserID,
		token.Token,
		token.ExpiresAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("recovery token collision",
				slog.String("token_id", token.ID.String()))
			return store.ErrTokenExists
		}

		log.Error("failed to create recovery token",
			slog.String("error", err.Error()),
			slog.String("token_id", token.ID.String()),
			slog.String("user_id", token.UserID.String()))
		return MapError(err)
	}

	log.Info("recovery token created",
		slog.String("token_id", token.ID.String()),
		slog.String("user_id", token.UserID.String()),
		slog.Time("expires_at", token.ExpiresAt))
	return nil
}

// GetByToken implements store.RecoveryTokenStore.GetByToken
// Returns store.ErrTokenNotFound if no token matches. The token string
// itself is never logged.
func (s *RecoveryTokenStore) GetByToken(ctx context.Context, value string) (*domain.RecoveryToken, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, token, expires_at
		FROM recovery_tokens
		WHERE token = $1
	`

	var token domain.RecoveryToken
	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&token.ID,
		&token.UserID,
		&token.Token,
		&token.ExpiresAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("recovery token not found")
			return nil, store.ErrTokenNotFound
		}
		log.Error("failed to get recovery token",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &token, nil
}

// Delete implements store.RecoveryTokenStore.Delete
// Returns store.ErrTokenNotFound if the token was already consumed.
func (s *RecoveryTokenStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM recovery_tokens WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete recovery token",
			slog.String("error", err.Error()),
			slog.String("token_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrTokenNotFound); err != nil {
		return err
	}

	log.Info("recovery token consumed",
		slog.String("token_id", id.String()))
	return nil
}

// DeleteForUser implements store.RecoveryTokenStore.DeleteForUser
// Deleting zero rows is not an error: most issuances have no prior token.
func (s *RecoveryTokenStore) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM recovery_tokens WHERE user_id = $1`, userID)
	if err != nil {
		log.Error("failed to delete recovery tokens for user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return MapError(err)
	}

	if rowsAffected, err := result.RowsAffected(); err == nil && rowsAffected > 0 {
		log.Debug("deleted prior recovery tokens",
			slog.String("user_id", userID.String()),
			slog.Int64("count", rowsAffected))
	}

	return nil
}

// WithTx implements store.RecoveryTokenStore.WithTx
func (s *RecoveryTokenStore) WithTx(tx *sql.Tx) store.RecoveryTokenStore {
	return &RecoveryTokenStore{
		db:     tx,
		logger: s.logger,
	}
}
