package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransient(t *testing.T) {
	assert.True(t, isTransient(&pgconn.PgError{Code: "40001"}), "serialization failure")
	assert.True(t, isTransient(&pgconn.PgError{Code: "40P01"}), "deadlock")
	assert.False(t, isTransient(&pgconn.PgError{Code: "23505"}), "unique violation is a bug, not noise")
	assert.False(t, isTransient(errors.New("plain")))
	assert.False(t, isTransient(nil))
}

func TestWithRetry_RetriesTransientOnly(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), func(context.Context) error {
		attempts++
		if attempts < 3 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithRetry_PermanentFailsImmediately(t *testing.T) {
	attempts := 0
	boom := errors.New("boom")
	err := withRetry(context.Background(), func(context.Context) error {
		attempts++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}

func TestWithRetry_GivesUpAfterCap(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), func(context.Context) error {
		attempts++
		return &pgconn.PgError{Code: "40001"}
	})
	require.Error(t, err)
	assert.Equal(t, 4, attempts, "initial attempt plus three retries")
}
