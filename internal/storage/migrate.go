package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"slices"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp applies every up migration in version order. The up scripts
// are idempotent, so running it on a current schema is a no-op.
func MigrateUp(db *sql.DB) error {
	names, err := migrationNames(".up.sql")
	if err != nil {
		return err
	}
	return runMigrations(db, names)
}

// MigrateDown reverts every migration, newest first.
func MigrateDown(db *sql.DB) error {
	names, err := migrationNames(".down.sql")
	if err != nil {
		return err
	}
	slices.Reverse(names)
	return runMigrations(db, names)
}

func migrationNames(suffix string) ([]string, error) {
	names, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("storage: list migrations: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

// runMigrations executes each script in its own transaction.
func runMigrations(db *sql.DB, names []string) error {
	for _, name := range names {
		script, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("storage: read %s: %w", name, err)
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("storage: begin %s: %w", name, mapAccessError(err))
		}
		if _, err := tx.Exec(string(script)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("storage: apply %s: %w", name, mapAccessError(err))
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("storage: commit %s: %w", name, mapAccessError(err))
		}
	}
	return nil
}
