// Package migrations embeds the SQL schema of the user store and applies it
// with goose. Each supported driver has its own migration directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Driver names understood by [Migrate]. They match the storage driver names
// accepted by the configuration.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	// ErrNilDB is returned by [Migrate] when no database handle is given.
	ErrNilDB = errors.New("db is nil")

	// ErrUnknownDriver is returned by [Migrate] for a driver with no migrations.
	ErrUnknownDriver = errors.New("no migrations for driver")
)

// dialects maps a storage driver to its goose dialect and migration directory.
var dialects = map[string]struct {
	dialect goose.Dialect
	dir     string
}{
	DriverPostgres: {dialect: goose.DialectPostgres, dir: "postgres"},
	DriverSQLite:   {dialect: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies every pending migration for driver to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDriver, driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(d.dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
