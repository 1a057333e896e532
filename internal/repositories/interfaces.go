package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tracklight/wellbeing/internal/models"
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	// Delete is a hard delete. It exists only as the compensating
	// action of a failed provisioning run; the email must be freed.
	Delete(ctx context.Context, id uuid.UUID) error
}

type WellBeingRepository interface {
	Create(ctx context.Context, wellBeing *models.WellBeing) error
	GetByID(ctx context.Context, accountID, id uuid.UUID) (*models.WellBeing, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.WellBeing, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}

type LogRepository interface {
	// Upsert inserts the log, or overwrites state/note/updated_at in
	// place when one already exists for the same (account, well-being,
	// day). Returns true when a new row was created.
	Upsert(ctx context.Context, log *models.Log) (created bool, err error)
	ListByDate(ctx context.Context, accountID uuid.UUID, date time.Time) ([]*models.LogEntry, error)
	CountDistinctDays(ctx context.Context, accountID uuid.UUID) (int64, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}
