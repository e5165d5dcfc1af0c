package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursehub/catalog/internal/pkg/logger"
)

// advisoryLockKey serializes migrations when several API replicas start together
const advisoryLockKey int64 = 0x636f7572736548 // "courseH"

const createVersionTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// Migrator applies the numbered SQL files of a directory once each
type Migrator struct {
	db *pgxpool.Pool
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{db: db}
}

// MigrateFromDirectory applies every pending migration of dirPath in version order
func (m *Migrator) MigrateFromDirectory(ctx context.Context, dirPath string) error {
	applied, err := m.Up(ctx, dirPath)
	if err != nil {
		return err
	}
	logger.Info().Int("applied", applied).Str("dir", dirPath).Msg("Migrations up to date")
	return nil
}

// Up applies pending migrations and returns how many ran
func (m *Migrator) Up(ctx context.Context, dirPath string) (int, error) {
	files, err := migrationFiles(dirPath)
	if err != nil {
		return 0, err
	}

	if _, err := m.db.Exec(ctx, createVersionTable); err != nil {
		return 0, fmt.Errorf("failed to create migration tracking table: %w", err)
	}

	done, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, file := range files {
		version := migrationVersion(file)
		if done[version] {
			continue
		}
		ran, err := m.apply(ctx, filepath.Join(dirPath, file), version)
		if err != nil {
			return count, err
		}
		if ran {
			count++
		}
	}
	return count, nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}

	done := make(map[string]bool, len(versions))
	for _, v := range versions {
		done[v] = true
	}
	return done, nil
}

// apply runs one file and records its version in the same transaction. Another
// replica may have applied it while we waited for the lock; that is not an error.
func (m *Migrator) apply(ctx context.Context, path, version string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read migration file: %w", err)
	}
	filename := filepath.Base(path)

	ran := false
	err = pgx.BeginFunc(ctx, m.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, advisoryLockKey); err != nil {
			return fmt.Errorf("failed to take migration lock: %w", err)
		}

		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			return nil
		}

		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("error occurred during SQL migration %s: %w", filename, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
		ran = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if ran {
		logger.Info().Str("file", filename).Str("version", version).Msg("Migration applied")
	} else {
		logger.Debug().Str("file", filename).Msg("Migration applied by another instance, skipping")
	}
	return ran, nil
}

// migrationVersion extracts the version prefix, e.g. "001_init.sql" => "001"
func migrationVersion(filename string) string {
	version, _, _ := strings.Cut(filename, "_")
	return strings.TrimSuffix(version, ".sql")
}

// migrationFiles lists the .sql files of a directory in execution order
func migrationFiles(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)
	return sqlFiles, nil
}
