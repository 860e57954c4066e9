// Package migrations holds the embedded goose SQL migrations for the
// PostgreSQL schema.
package migrations

import "embed"

// Migrations contains every *.sql migration file, ordered by version
// prefix.
//
//go:embed *.sql
var Migrations embed.FS
