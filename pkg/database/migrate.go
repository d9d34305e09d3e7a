package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrations lists the embedded schema files in apply order.
func Migrations() ([]string, error) {
	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Migrate applies every embedded migration. Each file is written to be
// idempotent, so running it against an existing schema is a no-op.
func Migrate(ctx context.Context, db PgxIface, log *zap.Logger) error {
	names, err := Migrations()
	if err != nil {
		return err
	}

	for _, name := range names {
		sql, err := migrationFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		if _, err := db.Exec(ctx, string(sql)); err != nil {
			log.Error("Migration failed", zap.String("file", name), zap.Error(err))
			return fmt.Errorf("apply migration %s: %w", name, err)
		}

		log.Info("Migration applied", zap.String("file", name))
	}

	return nil
}
