package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
	"github.com/Marcosdev03/projeto-checklistv02/internal/platform/postgres"
	"github.com/Marcosdev03/projeto-checklistv02/internal/store"
	"github.com/Marcosdev03/projeto-checklistv02/internal/testdb"
)

func TestTaskStore_CreateAndGet(t *testing.T) {
	db := testdb.Get(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewUserStore(tx, nil)
		taskStore := postgres.NewTaskStore(tx, nil)

		user := insertTestUser(t, ctx, userStore)
		task := insertTestTask(t, ctx, taskStore, user.ID, "write report", domain.TaskStatusPending)

		got, err := taskStore.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, task.ID, got.ID)
		assert.Equal(t, user.ID, got.UserID)
		assert.Equal(t, "write report", got.Title)
		assert.Equal(t, domain.TaskStatusPending, got.Status)
	})
}

func TestTaskStore_CreateUnknownOwner(t *testing.T) {
	db := testdb.Get(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		taskStore := postgres.NewTaskStore(tx, nil)

		task, err := domain.NewTask(uuid.New(), "orphan task", "", domain.TaskStatusPending)
		require.NoError(t, err)

		err = taskStore.Create(ctx, task)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestTaskStore_GetForUser(t *testing.T) {
	db := testdb.Get(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewUserStore(tx, nil)
		taskStore := postgres.NewTaskStore(tx, nil)

		owner := insertTestUser(t, ctx, userStore)
		other := insertTestUser(t, ctx, userStore)
		task := insertTestTask(t, ctx, taskStore, owner.ID, "owner only", domain.TaskStatusPending)

		got, err := taskStore.GetForUser(ctx, owner.ID, task.ID)
		require.NoError(t, err)
		assert.Equal(t, task.ID, got.ID)

		// Another user's lookup of the same row reports not found.
		_, err = taskStore.GetForUser(ctx, other.ID, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskStore_List(t *testing.T) {
	db := testdb.Get(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewUserStore(tx, nil)
		taskStore := postgres.NewTaskStore(tx, nil)

		owner := insertTestUser(t, ctx, userStore)
		other := insertTestUser(t, ctx, userStore)

		first := insertTestTask(t, ctx, taskStore, owner.ID, "first", domain.TaskStatusDone)
		time.Sleep(2 * time.Millisecond)
		second := insertTestTask(t, ctx, taskStore, owner.ID, "second", domain.TaskStatusPending)
		insertTestTask(t, ctx, taskStore, other.ID, "someone else's", domain.TaskStatusPending)

		tasks, err := taskStore.List(ctx, owner.ID, "")
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, second.ID, tasks[0].ID)
		assert.Equal(t, first.ID, tasks[1].ID)

		done, err := taskStore.List(ctx, owner.ID, domain.TaskStatusDone)
		require.NoError(t, err)
		require.Len(t, done, 1)
		assert.Equal(t, first.ID, done[0].ID)
	})
}

func TestTaskStore_ListEmpty(t *testing.T) {
	db := testdb.Get(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewUserStore(tx, nil)
		taskStore := postgres.NewTaskStore(tx, nil)

		user := insertTestUser(t, ctx, userStore)

		tasks, err := taskStore.List(ctx, user.ID, "")
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})
}

func TestTaskStore_Update(t *testing.T) {
	db := testdb.Get(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewUserStore(tx, nil)
		taskStore := postgres.NewTaskStore(tx, nil)

		user := insertTestUser(t, ctx, userStore)
		task := insertTestTask(t, ctx, taskStore, user.ID, "initial", domain.TaskStatusPending)

		task.Title = "revised"
		task.Description = "now with details"
		require.NoError(t, task.UpdateStatus(domain.TaskStatusInProgress))
		require.NoError(t, taskStore.Update(ctx, task))

		got, err := taskStore.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "revised", got.Title)
		assert.Equal(t, "now with details", got.Description)
		assert.Equal(t, domain.TaskStatusInProgress, got.Status)
	})
}

func TestTaskStore_Delete(t *testing.T) {
	db := testdb.Get(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewUserStore(tx, nil)
		taskStore := postgres.NewTaskStore(tx, nil)

		user := insertTestUser(t, ctx, userStore)
		task := insertTestTask(t, ctx, taskStore, user.ID, "short lived", domain.TaskStatusPending)

		require.NoError(t, taskStore.Delete(ctx, task.ID))

		_, err := taskStore.GetByID(ctx, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		err = taskStore.Delete(ctx, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}
