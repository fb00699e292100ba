package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"jobmatch/internal/common"
	"jobmatch/internal/match"
)

// List returns every company with its aliases, oldest first.
func (r *Registry) List(ctx context.Context) ([]match.Entity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM companies ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var (
		out   []match.Entity
		index = make(map[int64]int)
	)

	for rows.Next() {
		var (
			id   int64
			name string
		)

		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("list companies: %w", err)
		}

		index[id] = len(out)
		out = append(out, match.Entity{ID: formatID(id), Name: name})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	aliases, err := r.db.QueryContext(ctx, `SELECT company_id, alias FROM company_aliases ORDER BY company_id, rowid;`)
	if err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	defer aliases.Close()

	for aliases.Next() {
		var (
			id    int64
			alias string
		)

		if err := aliases.Scan(&id, &alias); err != nil {
			return nil, fmt.Errorf("list aliases: %w", err)
		}

		if i, ok := index[id]; ok {
			out[i].Aliases = append(out[i].Aliases, alias)
		}
	}

	if err := aliases.Err(); err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}

	return out, nil
}

// Get returns one company by ID.
func (r *Registry) Get(ctx context.Context, id string) (*match.Entity, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}

	e := match.Entity{ID: formatID(n)}

	err = r.db.QueryRowContext(ctx, `SELECT name FROM companies WHERE id = ?;`, n).Scan(&e.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("get company %s: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT alias FROM company_aliases WHERE company_id = ? ORDER BY rowid;`, n)
	if err != nil {
		return nil, fmt.Errorf("get company %s aliases: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var alias string
		if err := rows.Scan(&alias); err != nil {
			return nil, fmt.Errorf("get company %s aliases: %w", id, err)
		}

		e.Aliases = append(e.Aliases, alias)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get company %s aliases: %w", id, err)
	}

	return &e, nil
}

// Create stores a new company. The name must not normalize to an existing
// company name (ErrExists). Aliases that normalize to nothing, to the name,
// or to an earlier alias are skipped.
func (r *Registry) Create(ctx context.Context, name string, aliases []string) (*match.Entity, error) {
	e := match.Entity{Name: strings.TrimSpace(name)}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	key := match.Normalize(e.Name)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int

	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies WHERE name_key = ?;`, key).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	if exists > 0 {
		return nil, fmt.Errorf("%w: %q", ErrExists, e.Name)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO companies(name, name_key, created_at) VALUES(?,?,?);`,
		e.Name, key, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	e.ID = formatID(id)

	unique := common.UniqueBy(aliases, func(a string) string {
		k := match.Normalize(a)
		if k == key {
			return ""
		}

		return k
	})

	for _, alias := range unique {
		alias = strings.TrimSpace(alias)
		if err := insertAlias(ctx, tx, id, alias); err != nil {
			return nil, fmt.Errorf("create company: %w", err)
		}

		e.Aliases = append(e.Aliases, alias)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	r.log.Info("company created",
		slog.String("id", e.ID),
		slog.String("name", e.Name),
		slog.Int("aliases", len(e.Aliases)),
	)

	return &e, nil
}

// AddAlias records another name for a company. Adding an alias the company
// already has is a no-op.
func (r *Registry) AddAlias(ctx context.Context, id, alias string) error {
	alias = strings.TrimSpace(alias)
	if match.Normalize(alias) == "" {
		return ErrEmptyAlias
	}

	n, err := parseID(id)
	if err != nil {
		return err
	}

	var exists int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies WHERE id = ?;`, n).Scan(&exists); err != nil {
		return fmt.Errorf("add alias: %w", err)
	}

	if exists == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := insertAlias(ctx, r.db, n, alias); err != nil {
		return fmt.Errorf("add alias: %w", err)
	}

	r.log.Debug("company alias added", slog.String("id", id), slog.String("alias", alias))

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertAlias(ctx context.Context, db execer, id int64, alias string) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO company_aliases(company_id, alias, alias_key)
VALUES(?,?,?)
ON CONFLICT(company_id, alias_key) DO NOTHING;
`, id, alias, match.Normalize(alias))

	return err
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrNotFound, id)
	}

	return n, nil
}
