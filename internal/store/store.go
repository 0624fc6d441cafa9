// Package store provides the SQLite-backed session layer for the
// academic records schema. It owns identifier assignment, transactional
// scoping, and the mapping of constraint failures to typed errors.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// Store wraps a SQLite database holding the academic records schema.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// New creates an unopened store. A nil logger discards output.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{logger: logger}
}

// NewFromDB wraps an existing connection. Useful for tests or callers
// that manage the connection lifecycle themselves.
func NewFromDB(db *sql.DB, logger *slog.Logger) *Store {
	s := New(logger)
	s.db = db
	return s
}

// Open opens a connection to the SQLite database.
// Use ":memory:" for an in-memory database.
func (s *Store) Open(path string) error {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", path)
	if path == ":memory:" {
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("%w: failed to open database: %v", ErrStorageUnavailable, err)
	}
	if path == ":memory:" {
		// The pool must not hand out a second connection, or it would
		// see a different empty in-memory database.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("%w: failed to ping database: %v", ErrStorageUnavailable, err)
	}

	s.db = db
	s.path = path
	s.logger.Debug("store opened", "path", path)
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Tx is a write-scoped unit of work. All inserts validate their row
// against the schema invariants before touching the database.
type Tx struct {
	tx *sql.Tx
}

// InTx runs fn inside a write transaction. The transaction is rolled
// back when fn returns an error or panics; otherwise it is committed.
// A commit that cannot complete surfaces ErrStorageUnavailable.
func (s *Store) InTx(ctx context.Context, fn func(*Tx) error) error {
	if s.db == nil {
		return fmt.Errorf("%w: database not opened", ErrStorageUnavailable)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	if err := fn(&Tx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// ReadTx runs fn inside a read-only transaction. Rollback is the only
// way out; read paths never mutate.
func (s *Store) ReadTx(ctx context.Context, fn func(*sql.Tx) error) error {
	if s.db == nil {
		return fmt.Errorf("%w: database not opened", ErrStorageUnavailable)
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("%w: failed to begin read transaction: %v", ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	return fn(tx)
}

// queryTables lists every table in forward dependency order. purgeOrder
// in tx_purge.go must stay its exact reverse.
var queryTables = []string{
	"departments",
	"programs",
	"committees",
	"courses",
	"lecturers",
	"non_academic_staff",
	"students",
	"research_projects",
	"course_enrollments",
	"student_organizations",
	"course_instructors",
	"committee_members",
	"research_team_members",
	"publications",
	"seed_batches",
}

// CountRows returns the number of rows in a schema table. Unknown table
// names are rejected before any SQL runs.
func (s *Store) CountRows(ctx context.Context, table string) (int64, error) {
	if s.db == nil {
		return 0, fmt.Errorf("%w: database not opened", ErrStorageUnavailable)
	}

	known := false
	for _, t := range queryTables {
		if t == table {
			known = true
			break
		}
	}
	if !known {
		return 0, fmt.Errorf("unknown table %q", table)
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

// Tables returns the schema tables in forward dependency order.
func Tables() []string {
	out := make([]string, len(queryTables))
	copy(out, queryTables)
	return out
}
