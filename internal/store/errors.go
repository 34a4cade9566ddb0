package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors the handlers translate into the HTTP error taxonomy.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateEmail   = errors.New("email already in use")
	ErrInvalidReference = errors.New("referenced provider does not exist")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
