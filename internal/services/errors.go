package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error variables
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidReference   = errors.New("referenced user or property does not exist")
)

// Postgres SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// StoreError reports a store failure that is not one of the sentinel errors
// (connectivity loss, malformed SQL, other constraint violations).
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: store failure: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// classify maps a repository error onto the error contract of the services package.
// notFound is returned for sql.ErrNoRows; pass nil when an empty result is not an error.
func classify(op string, err error, notFound error) error {
	if notFound != nil && errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.TableName == "users" || pgErr.ConstraintName == "users_email_key" {
				return ErrEmailAlreadyExists
			}
		case pgForeignKeyViolation:
			return ErrInvalidReference
		}
	}

	return &StoreError{Op: op, Err: err}
}
