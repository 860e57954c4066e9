package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
	"github.com/Marcosdev03/projeto-checklistv02/internal/store"
)

// MockRecoveryTokenStore implements store.RecoveryTokenStore for testing
type MockRecoveryTokenStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, token *domain.RecoveryToken) error
	GetByTokenFn    func(ctx context.Context, token string) (*domain.RecoveryToken, error)
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
	DeleteForUserFn func(ctx context.Context, userID uuid.UUID) error

	// Data for default implementation, keyed by token ID
	Tokens map[uuid.UUID]*domain.RecoveryToken
}

// NewMockRecoveryTokenStore creates a new mock store with initialized defaults
func NewMockRecoveryTokenStore() *MockRecoveryTokenStore {
	return &MockRecoveryTokenStore{
		Tokens: make(map[uuid.UUID]*domain.RecoveryToken),
	}
}

// Create implements the RecoveryTokenStore interface
func (m *MockRecoveryTokenStore) Create(ctx context.Context, token *domain.RecoveryToken) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, token)
	}

	for _, existing := range m.Tokens {
		if existing.Token == token.Token {
			return store.ErrTokenExists
		}
	}
	m.Tokens[token.ID] = token
	return nil
}

// GetByToken implements the RecoveryTokenStore interface
func (m *MockRecoveryTokenStore) GetByToken(ctx context.Context, token string) (*domain.RecoveryToken, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}

	for _, existing := range m.Tokens {
		if existing.Token == token {
			return existing, nil
		}
	}
	return nil, store.ErrTokenNotFound
}

// Delete implements the RecoveryTokenStore interface
func (m *MockRecoveryTokenStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Tokens[id]; !exists {
		return store.ErrTokenNotFound
	}
	delete(m.Tokens, id)
	return nil
}

// DeleteForUser implements the RecoveryTokenStore interface
func (m *MockRecoveryTokenStore) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteForUserFn != nil {
		return m.DeleteForUserFn(ctx, userID)
	}

	for id, token := range m.Tokens {
		if token.UserID == userID {
			delete(m.Tokens, id)
		}
	}
	return nil
}

// WithTx implements the RecoveryTokenStore interface. The mock ignores
// the transaction and returns itself.
func (m *MockRecoveryTokenStore) WithTx(tx *sql.Tx) store.RecoveryTokenStore {
	return m
}
