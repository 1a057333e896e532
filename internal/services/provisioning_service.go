package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tracklight/wellbeing/internal/errs"
	"github.com/tracklight/wellbeing/internal/models"
	"github.com/tracklight/wellbeing/internal/repositories"
	"github.com/tracklight/wellbeing/internal/utils"
)

// ProvisioningService runs signup as one logical unit: hash the
// credential, create the account, seed the five default well-beings,
// issue a token. If seeding fails the just-created account is deleted
// again; an account without its defaults must never persist.
type ProvisioningService struct {
	accountRepo repositories.AccountRepository
	registry    *WellBeingService
	tokens      *TokenService
	bcryptCost  int
	logger      zerolog.Logger
}

func NewProvisioningService(
	accountRepo repositories.AccountRepository,
	registry *WellBeingService,
	tokens *TokenService,
	bcryptCost int,
	logger zerolog.Logger,
) *ProvisioningService {
	return &ProvisioningService{
		accountRepo: accountRepo,
		registry:    registry,
		tokens:      tokens,
		bcryptCost:  bcryptCost,
		logger:      logger,
	}
}

type SignupResponse struct {
	Account *models.Account
	Token   string
}

func (s *ProvisioningService) Signup(ctx context.Context, fullName, email, password string) (*SignupResponse, error) {
	// Friendlier duplicate message up front; the unique index on
	// email is what actually guarantees one account per address.
	_, err := s.accountRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, errs.New(errs.KindDuplicateEmail, "Email already exists")
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
	}
	err = s.accountRepo.Create(ctx, account)
	if errors.Is(err, repositories.ErrDuplicateEmail) {
		// A concurrent signup won the race between the check above
		// and this insert.
		return nil, errs.New(errs.KindDuplicateEmail, "Email already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if _, err := s.registry.SeedDefaults(ctx, account.ID); err != nil {
		return nil, s.rollback(ctx, account, err)
	}

	token, _, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &SignupResponse{Account: account, Token: token}, nil
}

// rollback is the compensating action for a failed seeding step. It is
// a best-effort undo, not a transaction: if the undo itself fails the
// account is orphaned and the error escalates for operator attention.
func (s *ProvisioningService) rollback(ctx context.Context, account *models.Account, seedErr error) error {
	if delErr := s.accountRepo.Delete(ctx, account.ID); delErr != nil && !errors.Is(delErr, repositories.ErrNotFound) {
		s.logger.Error().
			Err(delErr).
			Str("account_id", account.ID.String()).
			Str("email", account.Email).
			Msg("provisioning rollback failed, orphaned account persisted")
		return errs.Wrap(errs.KindProvisioningCorrupted, "Failed to roll back account creation", delErr)
	}

	s.logger.Warn().
		Err(seedErr).
		Str("email", account.Email).
		Msg("default well-being seeding failed, account rolled back")
	return errs.Wrap(errs.KindProvisioningFailed, "Failed to create default well-beings", seedErr)
}
