package store

import (
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Typed error kinds surfaced by write paths. Match with errors.Is.
var (
	// ErrReferentialViolation: a write referenced a non-existent parent row.
	ErrReferentialViolation = errors.New("referential violation")

	// ErrUniquenessViolation: a write duplicated a unique key (course
	// code, organization name, or a junction composite key).
	ErrUniquenessViolation = errors.New("uniqueness violation")

	// ErrStorageUnavailable: the database cannot be reached or a
	// transaction cannot commit.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// mapConstraintErr translates SQLite extended result codes into the
// typed error kinds, preserving the driver error text.
func mapConstraintErr(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %v", ErrReferentialViolation, err)
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", ErrUniquenessViolation, err)
		}
	}
	return err
}
