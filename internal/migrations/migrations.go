package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed sql/sqlite/*.sql sql/postgres/*.sql
var migrationsFS embed.FS

// migrator abstracts the two drivers the key-value table lives on.
type migrator interface {
	exec(ctx context.Context, query string, args ...any) error
	count(ctx context.Context, query string, args ...any) (int, error)
}

type dialect struct {
	dir         string
	historyDDL  string
	appliedStmt string
	recordStmt  string
}

var (
	sqliteDialect = dialect{
		dir: "sql/sqlite",
		historyDDL: `
		CREATE TABLE IF NOT EXISTS migrations_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		appliedStmt: "SELECT COUNT(*) FROM migrations_history WHERE name = ?",
		recordStmt:  "INSERT INTO migrations_history (name) VALUES (?)",
	}
	postgresDialect = dialect{
		dir: "sql/postgres",
		historyDDL: `
		CREATE TABLE IF NOT EXISTS migrations_history (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			applied_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		appliedStmt: "SELECT COUNT(*) FROM migrations_history WHERE name = $1",
		recordStmt:  "INSERT INTO migrations_history (name) VALUES ($1)",
	}
)

// ApplySQLite brings a SQLite database up to the latest schema.
func ApplySQLite(ctx context.Context, db *sql.DB) error {
	return apply(ctx, sqlDB{db: db}, sqliteDialect)
}

// ApplyPostgres brings a Postgres database up to the latest schema.
func ApplyPostgres(ctx context.Context, pool *pgxpool.Pool) error {
	return apply(ctx, pgPool{pool: pool}, postgresDialect)
}

func apply(ctx context.Context, m migrator, d dialect) error {
	if err := m.exec(ctx, d.historyDDL); err != nil {
		return fmt.Errorf("creating migrations history table: %w", err)
	}

	files, err := migrationFiles(d.dir)
	if err != nil {
		return err
	}

	for _, filename := range files {
		n, err := m.count(ctx, d.appliedStmt, filename)
		if err != nil {
			return fmt.Errorf("checking if migration applied: %w", err)
		}
		if n > 0 {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, path.Join(d.dir, filename))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", filename, err)
		}

		for stmt := range strings.SplitSeq(string(content), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if err := m.exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", filename, err)
			}
		}

		if err := m.exec(ctx, d.recordStmt, filename); err != nil {
			return fmt.Errorf("recording migration: %w", err)
		}
	}

	return nil
}

func migrationFiles(dir string) ([]string, error) {
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

type sqlDB struct {
	db *sql.DB
}

func (s sqlDB) exec(ctx context.Context, query string, args ...any) error {
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

func (s sqlDB) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

type pgPool struct {
	pool *pgxpool.Pool
}

func (p pgPool) exec(ctx context.Context, query string, args ...any) error {
	_, err := p.pool.Exec(ctx, query, args...)
	return err
}

func (p pgPool) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := p.pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}
