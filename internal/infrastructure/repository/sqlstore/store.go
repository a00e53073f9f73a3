// Package sqlstore persists normalized rows into Postgres or SQLite through sqlx. Every
// write is stamped with provenance, and writes issued inside WithinTx share one transaction.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/mlb-stats/db/migrations"
	"github.com/riskibarqy/mlb-stats/internal/platform/provenance"
	qb "github.com/riskibarqy/mlb-stats/internal/platform/querybuilder"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

// maxBindParams keeps multi-row inserts under both SQLite's and Postgres' variable limits.
const maxBindParams = 30000

type Store struct {
	db      *sqlx.DB
	dialect string
	ph      qb.Placeholder
	prov    *provenance.Provider
}

// Open connects to target with query tracing enabled. Schema migration is separate; see
// Migrate.
func Open(ctx context.Context, target Target, prov *provenance.Provider) (*Store, error) {
	system := "postgresql"
	if target.Dialect == migrations.SQLite {
		system = "sqlite"
		if dir := filepath.Dir(target.Path()); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database dir: %w", err)
			}
		}
	}

	db, err := otelsqlx.Open(target.DriverName, target.DSN,
		otelsql.WithDBSystem(system),
		otelsql.WithDBName(target.Name),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", target.Dialect, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", target.Dialect, err)
	}

	return New(db, target.Dialect, prov), nil
}

// Migrate applies the embedded schema to target.
func Migrate(target Target) error {
	return migrations.Up(target.Dialect, target.MigrateURL)
}

func New(db *sqlx.DB, dialect string, prov *provenance.Provider) *Store {
	if prov == nil {
		prov = provenance.NewProvider("", "", nil)
	}
	ph := qb.Dollar
	if dialect == migrations.SQLite {
		ph = qb.Question
	}
	return &Store{db: db, dialect: dialect, ph: ph, prov: prov}
}

func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Dialect() string {
	return s.dialect
}

func (s *Store) Close() error {
	return s.db.Close()
}

type txKey struct{}

// executor is satisfied by both *sqlx.DB and *sqlx.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// WithinTx runs fn in a transaction carried by ctx. Nested calls join the outer
// transaction; fn returning an error (or panicking) rolls everything back.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Store) conn(ctx context.Context) executor {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return s.db
}

func (s *Store) exists(ctx context.Context, table string, conditions ...qb.Condition) (bool, error) {
	query, args, err := qb.Select("1").From(table).Where(conditions...).Limit(1).Placeholder(s.ph).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build %s exists query: %w", table, err)
	}

	var one int64
	if err := s.conn(ctx).GetContext(ctx, &one, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check %s exists: %w", table, err)
	}
	return true, nil
}

func (s *Store) deleteGame(ctx context.Context, table string, gamePK int64) error {
	query, args, err := qb.DeleteFrom(table).Where(qb.Eq("gamePk", gamePK)).Placeholder(s.ph).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", table, err)
	}
	if _, err := s.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %s for game %d: %w", table, gamePK, err)
	}
	return nil
}

// stamped returns a copy of rows carrying the current provenance.
func stamped[T any, P interface {
	*T
	provenance.Stamped
}](prov *provenance.Provider, rows []T) []T {
	out := slices.Clone(rows)
	stamp := prov.Stamp()
	for i := range out {
		P(&out[i]).SetProvenance(stamp)
	}
	return out
}

// insertRows writes rows in chunks sized to the bind parameter limit. With conflict
// columns the insert becomes an upsert that overwrites every other column.
func insertRows[T any](ctx context.Context, s *Store, table string, rows []T, conflict ...string) error {
	if len(rows) == 0 {
		return nil
	}

	cols, err := qb.ModelColumns(rows[0])
	if err != nil {
		return fmt.Errorf("columns of %s: %w", table, err)
	}
	size := max(1, maxBindParams/len(cols))

	for chunk := range slices.Chunk(rows, size) {
		b, err := qb.InsertModels(table, chunk...)
		if err != nil {
			return err
		}
		b.Placeholder(s.ph)
		if len(conflict) > 0 {
			b.OnConflictUpdate(conflict...)
		}

		query, args, err := b.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert %s query: %w", table, err)
		}
		if _, err := s.conn(ctx).ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	return nil
}

// deref unwraps optional values for hand-built statements; InsertModels does this itself.
func deref[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
