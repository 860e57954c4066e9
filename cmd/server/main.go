// Package main implements the entry point for the checklist API server,
// a multi-tenant task tracking backend with account management and a
// mail-based password recovery flow.
package main

import (
	"context"
	"flag"
	"log"
)

func main() {
	migrate := flag.String("migrate", "", "run a migration command (up, down, status) before serving; up also serves, down and status exit")
	flag.Parse()

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	ctx := context.Background()

	if *migrate != "" {
		if err := app.runMigrations(ctx, *migrate); err != nil {
			app.logger.Error("Migrations failed", "error", err)
			log.Fatalf("Failed to run migrations: %v", err)
		}
		// down and status are administrative one-shots.
		if *migrate != "up" {
			return
		}
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
