// Package dberr classifies storage errors into constraint violation kinds.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err was caused by a unique constraint.
// It understands both gorm's translated errors and raw pgconn errors.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return hasCode(err, UniqueViolation)
}

// IsForeignKeyViolation reports whether err was caused by a foreign key.
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return hasCode(err, ForeignKeyViolation)
}

// Constraint returns the constraint name of a raw pgconn error, if any.
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
