package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// wrapDBError translates driver errors into the application's error
// taxonomy. Unique violations become apperrors.ErrDuplicate and connection
// level failures become apperrors.ErrStoreUnavailable. Anything else is
// wrapped with op for context.
func wrapDBError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) ||
		pgconn.Timeout(err) ||
		errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStoreUnavailableError(op, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
