package orders

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
)

// withRetry reruns f on transient storage errors only, with fibonacci
// backoff and a hard attempt cap. Anything non-transient fails straight
// through.
func withRetry(ctx context.Context, f func(ctx context.Context) error) error {
	b := retry.WithMaxRetries(3, retry.NewFibonacci(50*time.Millisecond))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := f(ctx)
		if err != nil && isTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// isTransient matches postgres class 40 (transaction rollback:
// serialization failure, deadlock). Unique violations are not transient
// here — identity is database-generated, a conflict is a real bug.
func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return len(pgErr.Code) == 5 && pgErr.Code[:2] == "40"
}
