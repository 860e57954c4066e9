package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("creates valid user", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("alice@example.com", "Alice", "password123")
		require.NoError(t, err)

		assert.NotEqual(t, "", user.ID.String())
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "Alice", user.FirstName)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsStaff)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("normalizes email domain", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("  Alice@EXAMPLE.COM ", "Alice", "password123")
		require.NoError(t, err)
		assert.Equal(t, "Alice@example.com", user.Email)
	})

	tests := []struct {
		name      string
		email     string
		firstName string
		password  string
		wantErr   error
	}{
		{
			name:      "empty email",
			email:     "",
			firstName: "Alice",
			password:  "password123",
			wantErr:   domain.ErrEmptyEmail,
		},
		{
			name:      "invalid email",
			email:     "not-an-email",
			firstName: "Alice",
			password:  "password123",
			wantErr:   domain.ErrInvalidEmail,
		},
		{
			name:      "empty first name",
			email:     "alice@example.com",
			firstName: "",
			password:  "password123",
			wantErr:   domain.ErrEmptyFirstName,
		},
		{
			name:      "password too short",
			email:     "alice@example.com",
			firstName: "Alice",
			password:  "short",
			wantErr:   domain.ErrPasswordTooShort,
		},
		{
			name:      "password too long",
			email:     "alice@example.com",
			firstName: "Alice",
			password:  strings.Repeat("a", 73),
			wantErr:   domain.ErrPasswordTooLong,
		},
		{
			name:      "empty password",
			email:     "alice@example.com",
			firstName: "Alice",
			password:  "",
			wantErr:   domain.ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := domain.NewUser(tt.email, tt.firstName, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase domain", "Bob@EXAMPLE.COM", "Bob@example.com"},
		{"local part preserved", "BOB@example.com", "BOB@example.com"},
		{"whitespace trimmed", "  bob@example.com  ", "bob@example.com"},
		{"no at sign", "not-an-email", "not-an-email"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, domain.NormalizeEmail(tt.input))
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store carries a hash but no plaintext password.
	user, err := domain.NewUser("carol@example.com", "Carol", "password123")
	require.NoError(t, err)

	user.Password = ""
	user.HashedPassword = "$2a$10$fakehashfakehashfakehash"
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyPassword)
}

func TestUserOwnerID(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("dave@example.com", "Dave", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, user.OwnerID())
}
