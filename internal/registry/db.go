package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// Registry errors.
var (
	ErrNotFound   = errors.New("company not found")
	ErrExists     = errors.New("company already exists")
	ErrEmptyAlias = errors.New("alias is empty")
)

// Registry is a SQLite-backed company registry.
type Registry struct {
	db  *sql.DB
	log *slog.Logger
}

// Open opens (creating if needed) the registry database at path.
// Call Migrate before first use.
func Open(path string, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open registry %s: %w", path, err)
	}

	pool.SetMaxOpenConns(1) // one writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("open registry %s: %w", path, err)
	}

	logger.Debug("registry opened", slog.String("path", path))

	return &Registry{db: pool, log: logger}, nil
}

// Close closes the database.
func (r *Registry) Close() error {
	if r == nil || r.db == nil {
		return nil
	}

	return r.db.Close()
}

// Migrate creates or upgrades the schema. It is idempotent.
func (r *Registry) Migrate(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRowContext(ctx, `PRAGMA user_version;`).Scan(&v); err != nil {
		return fmt.Errorf("migrate: read version: %w", err)
	}

	if v >= schemaVersion {
		return tx.Commit()
	}

	for _, stmt := range schemaV1 {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d;`, schemaVersion)); err != nil {
		return fmt.Errorf("migrate: set version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	r.log.Info("registry schema migrated", slog.Int("from", v), slog.Int("to", schemaVersion))

	return nil
}

const schemaVersion = 1

var schemaV1 = []string{`
CREATE TABLE IF NOT EXISTS companies (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  name_key TEXT NOT NULL UNIQUE,
  created_at TEXT NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS company_aliases (
  company_id INTEGER NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
  alias TEXT NOT NULL,
  alias_key TEXT NOT NULL,
  PRIMARY KEY (company_id, alias_key)
);`, `
CREATE INDEX IF NOT EXISTS idx_company_aliases_key ON company_aliases(alias_key);`,
}
