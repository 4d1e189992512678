package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real database when TEST_DATABASE_URL points at one with the
// contacts migration applied.
func TestPostgresContactRepository_InsertReturnsRow(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" || testing.Short() {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewContactRepository(pool)
	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())

	msg, err := repo.Insert(ctx, "Integration", email, "Subject", "Body")
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
	assert.Equal(t, email, msg.Email)

	var stored string
	require.NoError(t, pool.QueryRow(ctx, `SELECT message FROM contacts WHERE id = $1`, msg.ID).Scan(&stored))
	assert.Equal(t, "Body", stored)

	_, err = pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, msg.ID)
	require.NoError(t, err)
}
