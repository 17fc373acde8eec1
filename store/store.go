// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: SQL persistence of divisions and their verdicts.
// Drivers:
//   - "sqlite"   (modernc.org/sqlite, pure Go; default)
//   - "postgres" (github.com/lib/pq)
// Queries are written with '?' placeholders and rebound per dialect.
// Concurrency:
//   - *Store is safe for concurrent use; every write runs in one transaction.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Sentinel errors for the store.
var (
	// ErrDivisionNotFound is returned for a division name with no saved record.
	ErrDivisionNotFound = errors.New("store: division not found")

	// ErrUnsupportedDriver is returned by Open for drivers other than sqlite/postgres.
	ErrUnsupportedDriver = errors.New("store: unsupported driver")
)

const schema = `
CREATE TABLE IF NOT EXISTS divisions (
	name       TEXT PRIMARY KEY,
	team_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS teams (
	division  TEXT NOT NULL,
	position  INTEGER NOT NULL,
	name      TEXT NOT NULL,
	wins      INTEGER NOT NULL,
	losses    INTEGER NOT NULL,
	remaining INTEGER NOT NULL,
	PRIMARY KEY (division, position)
);
CREATE TABLE IF NOT EXISTS remaining_games (
	division TEXT NOT NULL,
	i        INTEGER NOT NULL,
	j        INTEGER NOT NULL,
	games    INTEGER NOT NULL,
	PRIMARY KEY (division, i, j)
);
CREATE TABLE IF NOT EXISTS verdicts (
	division    TEXT NOT NULL,
	position    INTEGER NOT NULL,
	team        TEXT NOT NULL,
	eliminated  BOOLEAN NOT NULL,
	trivial     BOOLEAN NOT NULL,
	certificate TEXT NOT NULL,
	max_flow    BIGINT NOT NULL,
	total_games BIGINT NOT NULL,
	PRIMARY KEY (division, position)
);`

// Store wraps a database connection and persists divisions and verdicts.
type Store struct {
	db     *sql.DB
	driver string
	log    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for Debug records of every write.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open connects to dsn with driver, pings it and applies the schema.
// For sqlite the pool is pinned to one connection, so ":memory:" databases
// behave as a single database.
func Open(ctx context.Context, driver, dsn string, opts ...Option) (*Store, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", driver, err)
	}

	s := &Store{db: db, driver: driver, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	if err = s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error { return s.db.Close() }

// Driver returns the driver name the store was opened with.
func (s *Store) Driver() string { return s.driver }

// migrate applies the idempotent schema one statement at a time.
func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: migrate: %w", err)
		}
	}

	return nil
}

// rebind rewrites '?' placeholders to '$n' for postgres.
func (s *Store) rebind(q string) string {
	if s.driver != DriverPostgres {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) exec(ctx context.Context, e execer, q string, args ...any) error {
	if _, err := e.ExecContext(ctx, s.rebind(q), args...); err != nil {
		return fmt.Errorf("store: %s: %w", firstWords(q), err)
	}

	return nil
}

// inTx runs fn in a transaction, committing on success.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}

	return nil
}

// firstWords labels errors with the statement's leading keywords.
func firstWords(q string) string {
	f := strings.Fields(q)
	if len(f) > 3 {
		f = f[:3]
	}

	return strings.Join(f, " ")
}
