package domain_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
)

func TestNewRecoveryToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	token, err := domain.NewRecoveryToken(userID)
	require.NoError(t, err)

	assert.Equal(t, userID, token.UserID)
	assert.NotEqual(t, uuid.Nil, token.ID)

	// 32 random bytes, URL-safe encoded without padding
	raw, err := base64.RawURLEncoding.DecodeString(token.Token)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	// Expires roughly one hour from issuance
	lifetime := time.Until(token.ExpiresAt)
	assert.InDelta(t, domain.RecoveryTokenLifetime.Seconds(), lifetime.Seconds(), 5)
}

func TestNewRecoveryToken_Unique(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, err := domain.NewRecoveryToken(userID)
		require.NoError(t, err)
		assert.False(t, seen[token.Token], "token value repeated")
		seen[token.Token] = true
	}
}

func TestNewRecoveryToken_RequiresUser(t *testing.T) {
	t.Parallel()

	_, err := domain.NewRecoveryToken(uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrEmptyTokenUserID)
}

func TestRecoveryTokenIsExpired(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	token := &domain.RecoveryToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Token:     "value",
		ExpiresAt: now.Add(time.Hour),
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before expiry", now, false},
		{"just before expiry", now.Add(time.Hour - time.Second), false},
		{"at expiry", now.Add(time.Hour), true},
		{"after expiry", now.Add(2 * time.Hour), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, token.IsExpired(tt.at))
		})
	}
}
