package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/tracklight/wellbeing/internal/models"
)

// getTestPool returns a connection pool for the integration tests.
// They exercise the real uniqueness indexes, so they need a migrated
// database; set TEST_DATABASE_URL to run them.
func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(pool.Close)
	return pool
}

// setupTestAccount creates an account for foreign key constraints.
func setupTestAccount(t *testing.T, ctx context.Context, repo *PostgresAccountRepository) *models.Account {
	t.Helper()

	account := &models.Account{
		FullName:     "Test Account",
		Email:        "test-" + uuid.New().String() + "@example.com",
		PasswordHash: "test-hash",
	}
	err := repo.Create(ctx, account)
	require.NoError(t, err, "Failed to create test account")
	return account
}

// cleanupTestAccount removes test data (cascades to well-beings and logs).
func cleanupTestAccount(t *testing.T, ctx context.Context, repo *PostgresAccountRepository, accountID uuid.UUID) {
	t.Helper()

	err := repo.Delete(ctx, accountID)
	if err != nil && err != ErrNotFound {
		t.Logf("Warning: failed to cleanup test account: %v", err)
	}
}
