// Package memory holds in-memory implementations of the repository
// interfaces. They mirror the Postgres constraint behavior, including
// unique-violation sentinels, and back the service and handler tests.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tracklight/wellbeing/internal/models"
	"github.com/tracklight/wellbeing/internal/repositories"
)

type AccountRepository struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*models.Account

	// FailDelete forces the compensating-delete path to fail, for
	// exercising the provisioning-corrupted escalation.
	FailDelete bool
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[uuid.UUID]*models.Account)}
}

func (r *AccountRepository) Create(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return repositories.ErrDuplicateEmail
		}
	}

	account.ID = uuid.New()
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (r *AccountRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return cloneAccount(account), nil
}

func (r *AccountRepository) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.Email == email {
			return cloneAccount(account), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *AccountRepository) Update(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (r *AccountRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailDelete {
		return ErrDeleteFailed
	}
	if _, ok := r.accounts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.accounts, id)
	return nil
}

// Len reports how many accounts are persisted.
func (r *AccountRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

func cloneAccount(a *models.Account) *models.Account {
	copied := *a
	return &copied
}

// ErrCreateFailed and ErrDeleteFailed are what FailOnCreate and
// FailDelete inject. ErrDeleteFailed is deliberately not ErrNotFound:
// a missing row means "already deleted" to rollback logic, not a
// failed undo.
var (
	ErrCreateFailed = errors.New("create failed")
	ErrDeleteFailed = errors.New("delete failed")
)

type WellBeingRepository struct {
	mu         sync.Mutex
	wellBeings []*models.WellBeing

	// FailOnCreate aborts the Nth create (1-based) with an error, for
	// exercising the seeding-failure rollback.
	FailOnCreate int
	creates      int
}

func NewWellBeingRepository() *WellBeingRepository {
	return &WellBeingRepository{}
}

func (r *WellBeingRepository) Create(_ context.Context, wellBeing *models.WellBeing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.creates++
	if r.FailOnCreate > 0 && r.creates >= r.FailOnCreate {
		return ErrCreateFailed
	}

	key := strings.ToLower(strings.TrimSpace(wellBeing.Name))
	for _, existing := range r.wellBeings {
		if existing.AccountID == wellBeing.AccountID &&
			strings.ToLower(strings.TrimSpace(existing.Name)) == key {
			return repositories.ErrDuplicateName
		}
	}

	wellBeing.ID = uuid.New()
	wellBeing.CreatedAt = time.Now().UTC()
	r.wellBeings = append(r.wellBeings, cloneWellBeing(wellBeing))
	return nil
}

func (r *WellBeingRepository) GetByID(_ context.Context, accountID, id uuid.UUID) (*models.WellBeing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, wellBeing := range r.wellBeings {
		if wellBeing.ID == id && wellBeing.AccountID == accountID {
			return cloneWellBeing(wellBeing), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *WellBeingRepository) ListByAccount(_ context.Context, accountID uuid.UUID) ([]*models.WellBeing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*models.WellBeing
	for _, wellBeing := range r.wellBeings {
		if wellBeing.AccountID == accountID {
			out = append(out, cloneWellBeing(wellBeing))
		}
	}
	return out, nil
}

func (r *WellBeingRepository) Delete(_ context.Context, accountID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, wellBeing := range r.wellBeings {
		if wellBeing.ID == id && wellBeing.AccountID == accountID {
			r.wellBeings = append(r.wellBeings[:i], r.wellBeings[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func cloneWellBeing(w *models.WellBeing) *models.WellBeing {
	copied := *w
	return &copied
}

type LogRepository struct {
	mu   sync.Mutex
	logs []*models.Log

	// Joined display attributes come from here; nil keeps them empty,
	// mirroring orphaned logs after a LEFT JOIN.
	wellBeings *WellBeingRepository
}

func NewLogRepository(wellBeings *WellBeingRepository) *LogRepository {
	return &LogRepository{wellBeings: wellBeings}
}

func (r *LogRepository) Upsert(_ context.Context, log *models.Log) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.logs {
		if existing.AccountID == log.AccountID &&
			existing.WellBeingID == log.WellBeingID &&
			existing.Date.Equal(log.Date) {
			existing.State = log.State
			existing.Note = log.Note
			existing.UpdatedAt = log.UpdatedAt
			log.ID = existing.ID
			log.CreatedAt = existing.CreatedAt
			return false, nil
		}
	}

	log.ID = uuid.New()
	log.CreatedAt = time.Now().UTC()
	r.logs = append(r.logs, cloneLog(log))
	return true, nil
}

func (r *LogRepository) ListByDate(ctx context.Context, accountID uuid.UUID, date time.Time) ([]*models.LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entries []*models.LogEntry
	for _, log := range r.logs {
		if log.AccountID != accountID || !log.Date.Equal(date) {
			continue
		}
		entry := &models.LogEntry{Log: *log}
		if r.wellBeings != nil {
			if wb, err := r.wellBeings.GetByID(ctx, accountID, log.WellBeingID); err == nil {
				entry.WellBeingName = wb.Name
				entry.WellBeingColor = wb.AccentColor
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *LogRepository) CountDistinctDays(_ context.Context, accountID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	days := make(map[string]struct{})
	for _, log := range r.logs {
		if log.AccountID == accountID {
			days[log.Date.Format("2006-01-02")] = struct{}{}
		}
	}
	return int64(len(days)), nil
}

func (r *LogRepository) Delete(_ context.Context, accountID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, log := range r.logs {
		if log.ID == id && log.AccountID == accountID {
			r.logs = append(r.logs[:i], r.logs[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func cloneLog(l *models.Log) *models.Log {
	copied := *l
	return &copied
}
