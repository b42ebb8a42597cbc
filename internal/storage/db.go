package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool     *pgxpool.Pool
	poolOnce sync.Once
	poolErr  error
)

// Connect returns the shared connection pool, creating it on first use.
// The pool is created at most once per process even under concurrent
// first-use; every caller after that shares the same handle, and the url
// argument of later calls is ignored.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	poolOnce.Do(func() {
		p, err := pgxpool.New(ctx, url)
		if err != nil {
			poolErr = fmt.Errorf("connecting to Postgres: %w", err)
			return
		}
		pool = p
	})
	return pool, poolErr
}
