// Package migrations embeds the versioned schema and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"sync"

	"chorechart/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrations embed.FS

// goose keeps its base FS and dialect in package state.
var mu sync.Mutex

// Up applies every pending migration for the given database driver ("postgres" or "sqlite").
func Up(db *sql.DB, driver string) error {
	dialect, dir, err := resolve(driver)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "set dialect")
	}

	if err := goose.Up(db, dir); err != nil {
		return errors.Wrap(err, "goose up")
	}

	return nil
}

func resolve(driver string) (dialect, dir string, err error) {
	switch driver {
	case constants.DatabaseDriverPostgres:
		return "postgres", "postgres", nil
	case constants.DatabaseDriverSQLite:
		return "sqlite3", "sqlite", nil
	default:
		return "", "", errors.Errorf("unsupported database driver %q", driver)
	}
}
