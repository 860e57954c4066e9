package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
	"github.com/Marcosdev03/projeto-checklistv02/internal/platform/postgres"
	"github.com/Marcosdev03/projeto-checklistv02/internal/store"
	"github.com/Marcosdev03/projeto-checklistv02/internal/testdb"
)

func TestRecoveryTokenStore_CreateAndGet(t *testing.T) {
	db := testdb.Get(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewUserStore(tx, nil)
		tokenStore := postgres.NewRecoveryTokenStore(tx, nil)

		user := insertTestUser(t, ctx, userStore)

		token, err := domain.NewRecoveryToken(user.ID)
		require.NoError(t, err)
		require.NoError(t, tokenStore.Create(ctx, token))

		got, err := tokenStore.GetByToken(ctx, token.Token)
		require.NoError(t, err)
		assert.Equal(t, token.ID, got.ID)
		assert.Equal(t, user.ID, got.UserID)
		assert.WithinDuration(t, token.ExpiresAt, got.ExpiresAt, time.Second)
	})
}

func TestRecoveryTokenStore_DuplicateToken(t *testing.T) {
	db := testdb.Get(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewUserStore(tx, nil)
		tokenStore := postgres.NewRecoveryTokenStore(tx, nil)

		user := insertTestUser(t, ctx, userStore)

		token, err := domain.NewRecoveryToken(user.ID)
		require.NoError(t, err)
		require.NoError(t, tokenStore.Create(ctx, token))

		clash, err := domain.NewRecoveryToken(user.ID)
		require.NoError(t, err)
		clash.Token = token.Token

		err = tokenStore.Create(ctx, clash)
		assert.ErrorIs(t, err, store.ErrTokenExists)
	})
}

func TestRecoveryTokenStore_GetNotFound(t *testing.T) {
	db := testdb.Get(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		tokenStore := postgres.NewRecoveryTokenStore(tx, nil)

		_, err := tokenStore.GetByToken(ctx, "not-a-stored-token")
		assert.ErrorIs(t, err, store.ErrTokenNotFound)
	})
}

func TestRecoveryTokenStore_DeleteConsumes(t *testing.T) {
	db := testdb.Get(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewUserStore(tx, nil)
		tokenStore := postgres.NewRecoveryTokenStore(tx, nil)

		user := insertTestUser(t, ctx, userStore)

		token, err := domain.NewRecoveryToken(user.ID)
		require.NoError(t, err)
		require.NoError(t, tokenStore.Create(ctx, token))

		require.NoError(t, tokenStore.Delete(ctx, token.ID))

		_, err = tokenStore.GetByToken(ctx, token.Token)
		assert.ErrorIs(t, err, store.ErrTokenNotFound)

		// A consumed token cannot be consumed twice.
		err = tokenStore.Delete(ctx, token.ID)
		assert.ErrorIs(t, err, store.ErrTokenNotFound)
	})
}

func TestRecoveryTokenStore_DeleteForUser(t *testing.T) {
	db := testdb.Get(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewUserStore(tx, nil)
		tokenStore := postgres.NewRecoveryTokenStore(tx, nil)

		user := insertTestUser(t, ctx, userStore)
		other := insertTestUser(t, ctx, userStore)

		first, err := domain.NewRecoveryToken(user.ID)
		require.NoError(t, err)
		require.NoError(t, tokenStore.Create(ctx, first))

		second, err := domain.NewRecoveryToken(user.ID)
		require.NoError(t, err)
		require.NoError(t, tokenStore.Create(ctx, second))

		kept, err := domain.NewRecoveryToken(other.ID)
		require.NoError(t, err)
		require.NoError(t, tokenStore.Create(ctx, kept))

		require.NoError(t, tokenStore.DeleteForUser(ctx, user.ID))

		_, err = tokenStore.GetByToken(ctx, first.Token)
		assert.ErrorIs(t, err, store.ErrTokenNotFound)
		_, err = tokenStore.GetByToken(ctx, second.Token)
		assert.ErrorIs(t, err, store.ErrTokenNotFound)

		// Other users' tokens are untouched.
		_, err = tokenStore.GetByToken(ctx, kept.Token)
		assert.NoError(t, err)

		// Deleting when nothing remains is not an error.
		assert.NoError(t, tokenStore.DeleteForUser(ctx, user.ID))
	})
}
