package domain

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecoveryTokenLifetime is the fixed offset between issuance and expiry.
const RecoveryTokenLifetime = time.Hour

// recoveryTokenBytes is the amount of randomness behind a token string.
const recoveryTokenBytes = 32

// Common validation errors for RecoveryToken
var (
	ErrEmptyTokenID     = errors.New("recovery token ID cannot be empty")
	ErrEmptyTokenUserID = errors.New("recovery token user ID cannot be empty")
	ErrEmptyTokenValue  = errors.New("recovery token value cannot be empty")
	ErrEmptyTokenExpiry = errors.New("recovery token expiry cannot be empty")
)

// RecoveryToken is a single-use, time-limited credential that allows an
// account to reset its password without knowing the old one. The token
// string is opaque, URL-safe and unique across the store.
type RecoveryToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"-"` // Delivered out-of-band only, never in API responses
	ExpiresAt time.Time `json:"expires_at"`
}

// NewRecoveryToken issues a fresh RecoveryToken for the given user. The
// token string is generated from 32 bytes of cryptographic randomness,
// URL-safe encoded, and the expiry is set one hour from issuance.
func NewRecoveryToken(userID uuid.UUID) (*RecoveryToken, error) {
	value, err := generateTokenValue()
	if err != nil {
		return nil, fmt.Errorf("failed to generate recovery token: %w", err)
	}

	token := &RecoveryToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     value,
		ExpiresAt: time.Now().UTC().Add(RecoveryTokenLifetime),
	}

	if err := token.Validate(); err != nil {
		return nil, err
	}

	return token, nil
}

// Validate checks if the RecoveryToken has valid data.
// Returns an error if any field fails validation.
func (t *RecoveryToken) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTokenID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTokenUserID
	}

	if t.Token == "" {
		return ErrEmptyTokenValue
	}

	if t.ExpiresAt.IsZero() {
		return ErrEmptyTokenExpiry
	}

	return nil
}

// IsExpired reports whether the token's expiry is at or before now.
func (t *RecoveryToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// OwnerID implements the Owned interface.
func (t *RecoveryToken) OwnerID() uuid.UUID {
	return t.UserID
}

// generateTokenValue returns a URL-safe random string carrying
// recoveryTokenBytes of entropy.
func generateTokenValue() (string, error) {
	b := make([]byte, recoveryTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
