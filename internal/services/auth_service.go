package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tracklight/wellbeing/internal/errs"
	"github.com/tracklight/wellbeing/internal/models"
	"github.com/tracklight/wellbeing/internal/repositories"
	"github.com/tracklight/wellbeing/internal/utils"
)

// AuthService covers login and credential maintenance for existing
// accounts. Account creation lives in ProvisioningService.
type AuthService struct {
	accountRepo repositories.AccountRepository
	tokens      *TokenService
	bcryptCost  int
}

func NewAuthService(accountRepo repositories.AccountRepository, tokens *TokenService, bcryptCost int) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		tokens:      tokens,
		bcryptCost:  bcryptCost,
	}
}

type LoginResponse struct {
	Account *models.Account
	Token   string
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, errs.New(errs.KindInvalidCredentials, "Invalid credentials")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if !utils.CheckPassword(account.PasswordHash, password) {
		return nil, errs.New(errs.KindInvalidCredentials, "Invalid credentials")
	}

	token, _, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{Account: account, Token: token}, nil
}

func (s *AuthService) Profile(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, errs.New(errs.KindNotFound, "User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// ProfileUpdate carries the optional fields of a profile write. A nil
// field means "leave unchanged".
type ProfileUpdate struct {
	FullName    *string
	OldPassword *string
	NewPassword *string
}

func (s *AuthService) UpdateProfile(ctx context.Context, accountID uuid.UUID, update ProfileUpdate) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, errs.New(errs.KindNotFound, "User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if update.NewPassword != nil {
		old := ""
		if update.OldPassword != nil {
			old = *update.OldPassword
		}
		if !utils.CheckPassword(account.PasswordHash, old) {
			return nil, errs.New(errs.KindInvalidCredentials, "Invalid old password")
		}
		hash, err := utils.HashPassword(*update.NewPassword, s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		account.PasswordHash = hash
	}

	if update.FullName != nil {
		account.FullName = strings.TrimSpace(*update.FullName)
	}

	account.Touch()
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// ResetPassword backs the forgot-password flow: the caller proved
// nothing beyond knowing the email, so the handler validates the
// new/confirm pair before this runs.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return errs.New(errs.KindNotFound, "User not found")
	}
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}

	hash, err := utils.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account.PasswordHash = hash
	account.Touch()
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}
