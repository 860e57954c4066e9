package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcosdev03/projeto-checklistv02/internal/mocks"
	"github.com/Marcosdev03/projeto-checklistv02/internal/service"
)

func newUserHandlerForTest(t *testing.T, userStore *mocks.MockUserStore) *UserHandler {
	t.Helper()

	userService, err := service.NewUserService(userStore, &mocks.MockPasswordHasher{}, slog.Default())
	require.NoError(t, err)

	jwtService := &mocks.MockJWTService{Token: "test-token", RefreshToken: "test-refresh"}
	return NewUserHandler(userService, jwtService, 30*time.Minute, slog.Default())
}

func TestUserHandlerRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"email":      "test@example.com",
				"first_name": "Test",
				"password":   "password12345",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"email":      "invalid-email",
				"first_name": "Test",
				"password":   "password12345",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"email":      "test@example.com",
				"first_name": "Test",
				"password":   "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing first name",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "password12345",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := newUserHandlerForTest(t, mocks.NewMockUserStore())

			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/accounts", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			handler.Register(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp AuthResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.NotEqual(t, uuid.Nil, resp.UserID)
				assert.Equal(t, "test-token", resp.AccessToken)
				assert.NotEmpty(t, resp.ExpiresAt)
			}
		})
	}

	t.Run("duplicate email conflicts", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := newUserHandlerForTest(t, userStore)

		payloadBytes, err := json.Marshal(map[string]interface{}{
			"email":      "dup@example.com",
			"first_name": "Test",
			"password":   "password12345",
		})
		require.NoError(t, err)

		first := httptest.NewRecorder()
		handler.Register(first, httptest.NewRequest("POST", "/api/accounts", bytes.NewBuffer(payloadBytes)))
		require.Equal(t, http.StatusCreated, first.Code)

		second := httptest.NewRecorder()
		handler.Register(second, httptest.NewRequest("POST", "/api/accounts", bytes.NewBuffer(payloadBytes)))
		assert.Equal(t, http.StatusConflict, second.Code)
	})
}

func TestUserHandlerGetMe(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := newUserHandlerForTest(t, userStore)
	user := seedActiveUser(t, userStore, "me@example.com")

	t.Run("returns own record without password fields", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		handler.GetMe(recorder, authedRequest("GET", "/api/accounts/me", nil, user.ID))

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp UserResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "me@example.com", resp.Email)
		assert.NotContains(t, recorder.Body.String(), "password")
		assert.NotContains(t, recorder.Body.String(), "hashed")
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		handler.GetMe(recorder, httptest.NewRequest("GET", "/api/accounts/me", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestUserHandlerGet(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := newUserHandlerForTest(t, userStore)
	user := seedActiveUser(t, userStore, "owner@example.com")

	tests := []struct {
		name       string
		callerID   uuid.UUID
		pathID     string
		wantStatus int
	}{
		{
			name:       "self read",
			callerID:   user.ID,
			pathID:     user.ID.String(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "foreign read forbidden",
			callerID:   uuid.New(),
			pathID:     user.ID.String(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "malformed id",
			callerID:   user.ID,
			pathID:     "not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := authedRequest("GET", "/api/accounts/"+tt.pathID, nil, tt.callerID)
			req = withURLParam(req, "id", tt.pathID)

			recorder := httptest.NewRecorder()
			handler.Get(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestUserHandlerUpdate(t *testing.T) {
	t.Parallel()

	t.Run("self update", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := newUserHandlerForTest(t, userStore)
		user := seedActiveUser(t, userStore, "owner@example.com")

		payloadBytes, err := json.Marshal(map[string]interface{}{"first_name": "Renamed"})
		require.NoError(t, err)

		req := authedRequest("PATCH", "/api/accounts/"+user.ID.String(), payloadBytes, user.ID)
		req = withURLParam(req, "id", user.ID.String())

		recorder := httptest.NewRecorder()
		handler.Update(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp UserResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Renamed", resp.FirstName)
	})

	t.Run("foreign update forbidden", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := newUserHandlerForTest(t, userStore)
		user := seedActiveUser(t, userStore, "owner@example.com")

		payloadBytes, err := json.Marshal(map[string]interface{}{"first_name": "Mallory"})
		require.NoError(t, err)

		req := authedRequest("PUT", "/api/accounts/"+user.ID.String(), payloadBytes, uuid.New())
		req = withURLParam(req, "id", user.ID.String())

		recorder := httptest.NewRecorder()
		handler.Update(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, "Alice", user.FirstName)
	})
}

func TestUserHandlerDelete(t *testing.T) {
	t.Parallel()

	t.Run("self delete", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := newUserHandlerForTest(t, userStore)
		user := seedActiveUser(t, userStore, "owner@example.com")

		req := authedRequest("DELETE", "/api/accounts/"+user.ID.String(), nil, user.ID)
		req = withURLParam(req, "id", user.ID.String())

		recorder := httptest.NewRecorder()
		handler.Delete(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, userStore.Users)
	})

	t.Run("foreign delete forbidden", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := newUserHandlerForTest(t, userStore)
		user := seedActiveUser(t, userStore, "owner@example.com")

		req := authedRequest("DELETE", "/api/accounts/"+user.ID.String(), nil, uuid.New())
		req = withURLParam(req, "id", user.ID.String())

		recorder := httptest.NewRecorder()
		handler.Delete(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Len(t, userStore.Users, 1)
	})
}
