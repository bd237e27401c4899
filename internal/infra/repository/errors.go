package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
)

const pgUniqueViolation = "23505"

// translate maps storage errors onto the domain taxonomy. notFound is
// returned for a missing row; pass nil when absence is not an error.
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %v", domain.ErrPersistenceTimeout, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
	}
}

// translateWrite is translate for inserts and updates: a unique violation
// becomes conflict, which names what the violated index protects.
func translateWrite(err error, conflict error) error {
	if IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", conflict, err)
	}
	return translate(err, nil)
}

func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
