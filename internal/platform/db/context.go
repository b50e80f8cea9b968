package db

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	dbConnKey contextKey = "db_conn"
	dbTxKey   contextKey = "db_tx"
)

// RequestConnMiddleware pins one pooled connection to each request's context.
// Repositories resolve it via ConnFromContext, so a write followed by a read
// in the same handler observes that write.
func RequestConnMiddleware(pool *pgxpool.Pool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			conn, err := pool.Acquire(ctx)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
			}
			defer conn.Release()

			ctx = context.WithValue(ctx, dbConnKey, conn)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// ConnFromContext retrieves the request-scoped database connection, if any.
func ConnFromContext(ctx context.Context) *pgxpool.Conn {
	conn, _ := ctx.Value(dbConnKey).(*pgxpool.Conn)
	return conn
}

// TxFromContext retrieves the transaction opened by WithTx, if any.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(dbTxKey).(pgx.Tx)
	return tx
}

// WithTx runs fn inside a transaction. The transaction is placed on the
// context so repository calls made from fn join it. Rolled back on error,
// committed otherwise.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(ctx context.Context) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(context.WithValue(ctx, dbTxKey, tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
