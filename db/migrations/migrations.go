// Package migrations embeds the schema for each supported database and runs it with
// golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// New builds a migrator for dialect against databaseURL (postgres://... or sqlite://path).
// The caller owns Close.
func New(dialect, databaseURL string) (*migrate.Migrate, error) {
	dialect = strings.ToLower(strings.TrimSpace(dialect))
	if dialect != Postgres && dialect != SQLite {
		return nil, fmt.Errorf("unsupported migration dialect %q", dialect)
	}

	src, err := iofs.New(files, dialect)
	if err != nil {
		return nil, fmt.Errorf("open embedded %s migrations: %w", dialect, err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func Up(dialect, databaseURL string) (err error) {
	m, err := New(dialect, databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
