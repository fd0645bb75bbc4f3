package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the kv table. The whole persistence surface is keyed
// blobs: one row per collection, rewritten whole on every mutation.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
