package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklight/wellbeing/internal/errs"
	"github.com/tracklight/wellbeing/internal/repositories/memory"
)

func newProvisioning(accounts *memory.AccountRepository, wellBeings *memory.WellBeingRepository) (*ProvisioningService, *TokenService) {
	tokens := NewTokenService("test-secret", time.Hour)
	registry := NewWellBeingService(wellBeings)
	return NewProvisioningService(accounts, registry, tokens, 4, zerolog.Nop()), tokens
}

func TestSignup_SeedsFiveDefaults(t *testing.T) {
	accounts := memory.NewAccountRepository()
	wellBeings := memory.NewWellBeingRepository()
	svc, tokens := newProvisioning(accounts, wellBeings)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, "Ada", "ada@x.com", "secret1")

	require.NoError(t, err)
	require.NotNil(t, resp.Account)
	assert.Equal(t, "Ada", resp.Account.FullName)
	assert.NotEmpty(t, resp.Account.PasswordHash)
	assert.NotEqual(t, "secret1", resp.Account.PasswordHash, "credential must be stored hashed")

	// Token binds to the new account.
	resolved, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Account.ID, resolved)

	seeded, err := wellBeings.ListByAccount(ctx, resp.Account.ID)
	require.NoError(t, err)
	require.Len(t, seeded, 5)

	// Fixed order, General first and protected.
	names := []string{"General", "Mental", "Physical", "Social", "Financial"}
	for i, wb := range seeded {
		assert.Equal(t, names[i], wb.Name)
		assert.Equal(t, i != 0, wb.Removable)
		assert.NotEmpty(t, wb.AccentColor)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	accounts := memory.NewAccountRepository()
	wellBeings := memory.NewWellBeingRepository()
	svc, _ := newProvisioning(accounts, wellBeings)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ada", "ada@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Other Ada", "ada@x.com", "secret2")

	require.Error(t, err)
	assert.Equal(t, errs.KindDuplicateEmail, errs.KindOf(err))
	// No partial second account.
	assert.Equal(t, 1, accounts.Len())
}

func TestSignup_SeedFailureRollsBackAccount(t *testing.T) {
	accounts := memory.NewAccountRepository()
	wellBeings := memory.NewWellBeingRepository()
	wellBeings.FailOnCreate = 3 // fail mid-seed
	svc, _ := newProvisioning(accounts, wellBeings)

	_, err := svc.Signup(context.Background(), "Ada", "ada@x.com", "secret1")

	require.Error(t, err)
	assert.Equal(t, errs.KindProvisioningFailed, errs.KindOf(err))
	// The compensating delete removed the half-provisioned account.
	assert.Equal(t, 0, accounts.Len())
}

func TestSignup_RollbackFailureEscalates(t *testing.T) {
	accounts := memory.NewAccountRepository()
	accounts.FailDelete = true
	wellBeings := memory.NewWellBeingRepository()
	wellBeings.FailOnCreate = 1
	svc, _ := newProvisioning(accounts, wellBeings)

	_, err := svc.Signup(context.Background(), "Ada", "ada@x.com", "secret1")

	require.Error(t, err)
	assert.Equal(t, errs.KindProvisioningCorrupted, errs.KindOf(err))
	assert.ErrorIs(t, err, memory.ErrDeleteFailed)
	// The undo failed, so the orphaned account is still persisted.
	assert.Equal(t, 1, accounts.Len())
}

func TestSignup_EmailFreedAfterRollback(t *testing.T) {
	accounts := memory.NewAccountRepository()
	wellBeings := memory.NewWellBeingRepository()
	wellBeings.FailOnCreate = 1
	svc, _ := newProvisioning(accounts, wellBeings)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ada", "ada@x.com", "secret1")
	require.Error(t, err)

	// A retry with the same email must not hit DuplicateEmail.
	wellBeings.FailOnCreate = 0
	resp, err := svc.Signup(ctx, "Ada", "ada@x.com", "secret1")
	require.NoError(t, err)
	assert.NotNil(t, resp.Account)
}
