package postgres_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/statesman/store/postgres"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsNotFoundError(pgx.ErrNoRows))
	assert.True(t, postgres.IsNotFoundError(fmt.Errorf("query latest state: %w", pgx.ErrNoRows)))
	assert.False(t, postgres.IsNotFoundError(errors.New("boom")))
	assert.False(t, postgres.IsNotFoundError(nil))
}

func TestIsDuplicateKeyError(t *testing.T) {
	t.Parallel()

	dup := &pgconn.PgError{Code: "23505"}
	assert.True(t, postgres.IsDuplicateKeyError(dup))
	assert.True(t, postgres.IsDuplicateKeyError(fmt.Errorf("record transition: %w", dup)))
	assert.False(t, postgres.IsDuplicateKeyError(&pgconn.PgError{Code: "23503"}))
	assert.False(t, postgres.IsDuplicateKeyError(nil))
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := postgres.New[string, string](nil, func(s string) string { return s })
	assert.ErrorIs(t, err, postgres.ErrNilPool)
}
