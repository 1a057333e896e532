package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tracklight/wellbeing/internal/cache"
	"github.com/tracklight/wellbeing/internal/errs"
	"github.com/tracklight/wellbeing/internal/models"
	"github.com/tracklight/wellbeing/internal/repositories"
	"github.com/tracklight/wellbeing/internal/utils"
)

// LogService is the store of dated state entries. Its load-bearing
// invariant is one entry per (account, well-being, calendar day),
// maintained by upsert-on-conflict in the repository.
type LogService struct {
	logRepo       repositories.LogRepository
	wellBeingRepo repositories.WellBeingRepository
	dayCounts     cache.DayCountCache
}

func NewLogService(
	logRepo repositories.LogRepository,
	wellBeingRepo repositories.WellBeingRepository,
	dayCounts cache.DayCountCache,
) *LogService {
	return &LogService{
		logRepo:       logRepo,
		wellBeingRepo: wellBeingRepo,
		dayCounts:     dayCounts,
	}
}

// Upsert writes the entry for the given calendar day, overwriting an
// existing one in place. The returned flag is true when a new entry
// was created, false when an existing one was overwritten.
func (s *LogService) Upsert(
	ctx context.Context,
	accountID, wellBeingID uuid.UUID,
	date time.Time,
	state models.State,
	note string,
) (*models.Log, bool, error) {
	if !state.Valid() {
		return nil, false, errs.New(errs.KindInvalidState, "Invalid state")
	}

	// Ownership check before the write: a well-being ID from another
	// account must look like it does not exist.
	_, err := s.wellBeingRepo.GetByID(ctx, accountID, wellBeingID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, false, errs.New(errs.KindNotFound, "Well-being not found")
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get well-being: %w", err)
	}

	log := &models.Log{
		AccountID:   accountID,
		WellBeingID: wellBeingID,
		Date:        utils.NormalizeDate(date),
		State:       state,
		Note:        strings.TrimSpace(note),
	}
	log.Touch()

	created, err := s.logRepo.Upsert(ctx, log)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert log: %w", err)
	}

	if created {
		s.dayCounts.Invalidate(ctx, accountID)
	}
	return log, created, nil
}

func (s *LogService) ListByDate(ctx context.Context, accountID uuid.UUID, date time.Time) ([]*models.LogEntry, error) {
	entries, err := s.logRepo.ListByDate(ctx, accountID, utils.NormalizeDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return entries, nil
}

// CountDistinctDays reports on how many calendar days the account has
// logged at least one entry. Reads go through the day-count cache;
// the database stays authoritative.
func (s *LogService) CountDistinctDays(ctx context.Context, accountID uuid.UUID) (int64, error) {
	if count, ok := s.dayCounts.Get(ctx, accountID); ok {
		return count, nil
	}

	count, err := s.logRepo.CountDistinctDays(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to count log days: %w", err)
	}
	s.dayCounts.Set(ctx, accountID, count)
	return count, nil
}

func (s *LogService) Remove(ctx context.Context, accountID, id uuid.UUID) error {
	err := s.logRepo.Delete(ctx, accountID, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return errs.New(errs.KindNotFound, "Log not found")
	}
	if err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}

	s.dayCounts.Invalidate(ctx, accountID)
	return nil
}
