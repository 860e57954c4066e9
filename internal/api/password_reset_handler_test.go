package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
	"github.com/Marcosdev03/projeto-checklistv02/internal/mocks"
	"github.com/Marcosdev03/projeto-checklistv02/internal/service"
)

type resetHandlerFixture struct {
	handler    *PasswordResetHandler
	userStore  *mocks.MockUserStore
	tokenStore *mocks.MockRecoveryTokenStore
	mailer     *mocks.MockMailer
}

func newResetHandlerForTest(t *testing.T) *resetHandlerFixture {
	t.Helper()

	userStore := mocks.NewMockUserStore()
	tokenStore := mocks.NewMockRecoveryTokenStore()
	mailer := &mocks.MockMailer{}

	resetService, err := service.NewPasswordResetService(
		new(sql.DB),
		userStore,
		tokenStore,
		&mocks.MockPasswordHasher{},
		mailer,
		"https://checklist.example.com",
		slog.Default(),
	)
	require.NoError(t, err)

	return &resetHandlerFixture{
		handler:    NewPasswordResetHandler(resetService, slog.Default()),
		userStore:  userStore,
		tokenStore: tokenStore,
		mailer:     mailer,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payloadBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", target, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestPasswordResetHandlerRequest(t *testing.T) {
	t.Parallel()

	t.Run("known and unknown emails respond identically", func(t *testing.T) {
		t.Parallel()

		fixture := newResetHandlerForTest(t)
		seedActiveUser(t, fixture.userStore, "alice@example.com")

		known := postJSON(t, fixture.handler.Request, "/api/password-reset",
			map[string]interface{}{"email": "alice@example.com"})
		unknown := postJSON(t, fixture.handler.Request, "/api/password-reset",
			map[string]interface{}{"email": "nobody@example.com"})

		assert.Equal(t, http.StatusOK, known.Code)
		assert.Equal(t, http.StatusOK, unknown.Code)
		assert.JSONEq(t, known.Body.String(), unknown.Body.String(),
			"responses must not reveal whether the account exists")

		// Only the known address got mail.
		require.Len(t, fixture.mailer.Sent, 1)
		assert.Equal(t, "alice@example.com", fixture.mailer.Sent[0].To)
	})

	t.Run("response never contains the token", func(t *testing.T) {
		t.Parallel()

		fixture := newResetHandlerForTest(t)
		seedActiveUser(t, fixture.userStore, "alice@example.com")

		recorder := postJSON(t, fixture.handler.Request, "/api/password-reset",
			map[string]interface{}{"email": "alice@example.com"})
		require.Equal(t, http.StatusOK, recorder.Code)

		for _, token := range fixture.tokenStore.Tokens {
			assert.NotContains(t, recorder.Body.String(), token.Token)
		}
	})

	t.Run("invalid email format", func(t *testing.T) {
		t.Parallel()

		fixture := newResetHandlerForTest(t)
		recorder := postJSON(t, fixture.handler.Request, "/api/password-reset",
			map[string]interface{}{"email": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestPasswordResetHandlerConfirm(t *testing.T) {
	t.Parallel()

	issueToken := func(t *testing.T, fixture *resetHandlerFixture, user *domain.User) *domain.RecoveryToken {
		t.Helper()

		token, err := domain.NewRecoveryToken(user.ID)
		require.NoError(t, err)
		require.NoError(t, fixture.tokenStore.Create(context.Background(), token))
		return token
	}

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()

		fixture := newResetHandlerForTest(t)
		recorder := postJSON(t, fixture.handler.Confirm, "/api/password-reset/confirm",
			map[string]interface{}{
				"token":            "no-such-token",
				"new_password":     "newpassword1",
				"confirm_password": "newpassword1",
			})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid or already used token")
	})

	t.Run("password mismatch", func(t *testing.T) {
		t.Parallel()

		fixture := newResetHandlerForTest(t)
		user := seedActiveUser(t, fixture.userStore, "alice@example.com")
		token := issueToken(t, fixture, user)

		recorder := postJSON(t, fixture.handler.Confirm, "/api/password-reset/confirm",
			map[string]interface{}{
				"token":            token.Token,
				"new_password":     "newpassword1",
				"confirm_password": "different1",
			})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Passwords do not match")
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		fixture := newResetHandlerForTest(t)
		recorder := postJSON(t, fixture.handler.Confirm, "/api/password-reset/confirm",
			map[string]interface{}{"token": "x"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
