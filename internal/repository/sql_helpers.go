package repository

import (
	"context"
	"errors"
	"fmt"

	gateway_errors "bents-gateway/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstracts *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// storeError wraps a driver error for op, tagging unique violations as
// conflicts so callers can tell them apart with errors.Is.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		err = fmt.Errorf("%w: %w", gateway_errors.ErrConflict, err)
	}
	return gateway_errors.NewStoreError(op, err)
}
