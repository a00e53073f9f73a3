package sqlstore

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/mlb-stats/db/migrations"
)

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// Target describes where the store lives and how each consumer reaches it.
type Target struct {
	Dialect    string
	DriverName string
	DSN        string
	MigrateURL string
	Name       string
}

// ResolveTarget picks the database from dbURL (postgres://..., sqlite://path) and falls
// back to the SQLite file at dbPath when dbURL is empty.
func ResolveTarget(dbURL, dbPath string, disablePreparedBinaryResult bool) (Target, error) {
	raw := strings.TrimSpace(dbURL)
	if raw == "" {
		return sqliteTarget(dbPath)
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		dsn := normalizeDBURL(raw, disablePreparedBinaryResult)
		return Target{
			Dialect:    migrations.Postgres,
			DriverName: "postgres",
			DSN:        dsn,
			MigrateURL: dsn,
			Name:       dbNameFromURL(raw),
		}, nil
	case strings.HasPrefix(lower, "sqlite://"):
		return sqliteTarget(raw[len("sqlite://"):])
	case strings.HasPrefix(lower, "sqlite3://"):
		return sqliteTarget(raw[len("sqlite3://"):])
	default:
		return Target{}, fmt.Errorf("unsupported database url %q: want postgres:// or sqlite://", redact(raw))
	}
}

func sqliteTarget(path string) (Target, error) {
	path = strings.TrimSpace(path)
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return Target{}, fmt.Errorf("sqlite database path is required")
	}
	return Target{
		Dialect:    migrations.SQLite,
		DriverName: "sqlite",
		DSN:        path + "?" + sqlitePragmas,
		MigrateURL: "sqlite://" + filepath.ToSlash(path),
		Name:       filepath.Base(path),
	}, nil
}

// Path is the SQLite database file, empty for Postgres.
func (t Target) Path() string {
	if t.Dialect != migrations.SQLite {
		return ""
	}
	path, _, _ := strings.Cut(t.DSN, "?")
	return path
}

func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func dbNameFromURL(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
}

func redact(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.User == nil {
		return raw
	}
	return parsed.Redacted()
}
