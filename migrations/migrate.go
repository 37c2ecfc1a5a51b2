// Package migrations embeds the goose SQL migrations of both supported
// database dialects.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialect selects the migration set and goose dialect.
type Dialect string

const (
	SQLite   Dialect = "sqlite3"
	Postgres Dialect = "postgres"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("migration error: db is nil")

// Migrate applies every pending migration of the given dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errNilDB
	}

	gooseDialect, dir, err := migrationSet(dialect)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(gooseDialect, db, dir)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(context.Background()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationSet(dialect Dialect) (goose.Dialect, fs.FS, error) {
	var (
		name         string
		gooseDialect goose.Dialect
	)
	switch dialect {
	case SQLite:
		name, gooseDialect = "sqlite", goose.DialectSQLite3
	case Postgres:
		name, gooseDialect = "postgres", goose.DialectPostgres
	default:
		return "", nil, fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	dir, err := fs.Sub(embedMigrations, name)
	if err != nil {
		return "", nil, fmt.Errorf("migration error: %w", err)
	}
	return gooseDialect, dir, nil
}
