// internal/repository/repository.go
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 300

	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Page is a limit/offset window over a listing.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the page to the allowed window.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	p = p.Normalize()
	return db.Offset(p.Offset).Limit(p.Limit)
}

// isUniqueViolation reports whether Postgres rejected a write on a unique index.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isForeignKeyViolation reports whether a write referenced a missing row.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == foreignKeyViolation
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
