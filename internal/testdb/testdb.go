// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database. Tests are skipped when no database URL is configured,
// so the suite stays runnable without external dependencies.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/Marcosdev03/projeto-checklistv02/internal/platform/postgres/migrations"
)

// pingTimeout bounds the connectivity check when opening the test database.
const pingTimeout = 5 * time.Second

var migrateOnce sync.Once

// URL returns the database URL for integration tests. It checks DATABASE_URL
// and CHECKLIST_TEST_DB_URL in that order, returning the first non-empty
// value.
func URL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("CHECKLIST_TEST_DB_URL")
}

// Get opens the test database and brings its schema up to date, skipping the
// calling test when no database URL is configured. The connection is closed
// when the test finishes.
func Get(t *testing.T) *sql.DB {
	t.Helper()

	url := URL()
	if url == "" {
		t.Skip("integration test requires DATABASE_URL or CHECKLIST_TEST_DB_URL")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("warning: failed to close test database: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "test database is not reachable")

	// Migrations only need to run once per process; goose.Up is idempotent
	// but the bookkeeping queries are not free.
	migrateOnce.Do(func() {
		goose.SetBaseFS(migrations.Migrations)
		require.NoError(t, goose.SetDialect("pgx"), "failed to set migration dialect")
		require.NoError(t, goose.Up(db, "."), "failed to migrate test database")
	})

	return db
}

// WithTx runs fn inside a transaction that is rolled back when the test
// finishes, keeping tests isolated from each other and leaving no rows
// behind.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "failed to begin test transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("warning: failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
