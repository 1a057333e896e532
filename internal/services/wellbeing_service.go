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

// WellBeingService is the registry of tracking categories. Every
// operation is scoped to one account; nothing here can see another
// account's records.
type WellBeingService struct {
	wellBeingRepo repositories.WellBeingRepository
}

func NewWellBeingService(wellBeingRepo repositories.WellBeingRepository) *WellBeingService {
	return &WellBeingService{wellBeingRepo: wellBeingRepo}
}

func (s *WellBeingService) List(ctx context.Context, accountID uuid.UUID) ([]*models.WellBeing, error) {
	wellBeings, err := s.wellBeingRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list well-beings: %w", err)
	}
	return wellBeings, nil
}

// Create adds a user-defined category. The name keeps its inner
// spacing but is trimmed; uniqueness is case-insensitive and enforced
// by the storage index, which this translates into DuplicateName.
func (s *WellBeingService) Create(ctx context.Context, accountID uuid.UUID, name string) (*models.WellBeing, error) {
	wellBeing := &models.WellBeing{
		AccountID:   accountID,
		Name:        strings.TrimSpace(name),
		AccentColor: utils.RandomAccentColor(),
		Removable:   true,
	}

	err := s.wellBeingRepo.Create(ctx, wellBeing)
	if errors.Is(err, repositories.ErrDuplicateName) {
		return nil, errs.New(errs.KindDuplicateName, "Well-being name already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create well-being: %w", err)
	}
	return wellBeing, nil
}

func (s *WellBeingService) Remove(ctx context.Context, accountID, id uuid.UUID) error {
	wellBeing, err := s.wellBeingRepo.GetByID(ctx, accountID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return errs.New(errs.KindNotFound, "Well-being not found")
	}
	if err != nil {
		return fmt.Errorf("failed to get well-being: %w", err)
	}

	if !wellBeing.Removable {
		return errs.New(errs.KindNotRemovable, "This well-being cannot be removed")
	}

	// Logs referencing this well-being are left in place for history.
	err = s.wellBeingRepo.Delete(ctx, accountID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return errs.New(errs.KindNotFound, "Well-being not found")
	}
	if err != nil {
		return fmt.Errorf("failed to delete well-being: %w", err)
	}
	return nil
}

// SeedDefaults creates the five fixed categories for a new account in
// a fixed order. Only the Provisioning workflow calls this.
func (s *WellBeingService) SeedDefaults(ctx context.Context, accountID uuid.UUID) ([]*models.WellBeing, error) {
	seeded := make([]*models.WellBeing, 0, len(models.DefaultWellBeings))
	for _, def := range models.DefaultWellBeings {
		wellBeing := &models.WellBeing{
			AccountID:   accountID,
			Name:        def.Name,
			AccentColor: def.AccentColor,
			Removable:   def.Removable,
		}
		if err := s.wellBeingRepo.Create(ctx, wellBeing); err != nil {
			return nil, fmt.Errorf("failed to seed %q: %w", def.Name, err)
		}
		seeded = append(seeded, wellBeing)
	}
	return seeded, nil
}
