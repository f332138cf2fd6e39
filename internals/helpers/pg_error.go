package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// sqlState returns the SQLSTATE carried by err from either postgres driver.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return sqlState(err) == pgUniqueViolation
}

// MapDBError turns a persistence error into an operational AppError when it
// is one the client can act on. Other errors come back unchanged.
func MapDBError(err error, notFound, duplicate string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return WrapAppError(err, notFound, http.StatusNotFound)
	case IsUniqueViolation(err):
		return WrapAppError(err, duplicate, http.StatusConflict)
	case sqlState(err) == pgForeignKeyViolation:
		return WrapAppError(err, "Referenced record not found", http.StatusBadRequest)
	}
	return err
}
