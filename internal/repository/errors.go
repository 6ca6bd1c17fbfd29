package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nikolayk812/storefront/internal/domain"
)

const (
	uniqueViolation        = "23505"
	checkViolation         = "23514"
	numericValueOutOfRange = "22003"
)

// mapError translates store errors into domain error kinds, keeping op as context.
func mapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrConflict, pgErr.ConstraintName)
		case checkViolation, numericValueOutOfRange:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrInvalidArgument, pgErr.Message)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
