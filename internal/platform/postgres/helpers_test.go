package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
	"github.com/Marcosdev03/projeto-checklistv02/internal/store"
)

// uniqueEmail returns an email address that cannot collide with rows left
// behind by other tests or prior runs.
func uniqueEmail() string {
	return fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8])
}

// insertTestUser creates and persists a user through the given store,
// returning the stored entity.
func insertTestUser(t *testing.T, ctx context.Context, s store.UserStore) *domain.User {
	t.Helper()

	user, err := domain.NewUser(uniqueEmail(), "Integration", "password1234")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$integrationtesthashvalueintegrationtesthashva"
	user.Password = ""

	require.NoError(t, s.Create(ctx, user))
	return user
}

// insertTestTask creates and persists a task owned by the given user.
func insertTestTask(
	t *testing.T,
	ctx context.Context,
	s store.TaskStore,
	userID uuid.UUID,
	title string,
	status domain.TaskStatus,
) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(userID, title, "created by integration test", status)
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, task))
	return task
}
