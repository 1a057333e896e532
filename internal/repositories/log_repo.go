package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tracklight/wellbeing/internal/models"
)

type PostgresLogRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresLogRepository(pool *pgxpool.Pool) *PostgresLogRepository {
	return &PostgresLogRepository{pool: pool}
}

// Upsert relies on the (account_id, well_being_id, date) unique index
// as the conflict target, so two concurrent writes for the same day
// can never produce two rows. xmax = 0 distinguishes a fresh insert
// from an overwrite.
func (r *PostgresLogRepository) Upsert(ctx context.Context, log *models.Log) (bool, error) {
	query := `INSERT INTO logs (account_id, well_being_id, date, state, note, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (account_id, well_being_id, date)
	          DO UPDATE SET state = EXCLUDED.state,
	                        note = EXCLUDED.note,
	                        updated_at = EXCLUDED.updated_at
	          RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`

	var created bool
	err := r.pool.QueryRow(ctx, query,
		log.AccountID,
		log.WellBeingID,
		log.Date,
		log.State,
		log.Note,
		log.UpdatedAt,
	).Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt, &created)

	if err != nil {
		return false, fmt.Errorf("failed to upsert log: %w", err)
	}
	return created, nil
}

// ListByDate joins each log with its well-being's display attributes.
// The join is LEFT because logs outlive their well-being; name and
// color come back empty for orphaned logs.
func (r *PostgresLogRepository) ListByDate(ctx context.Context, accountID uuid.UUID, date time.Time) ([]*models.LogEntry, error) {
	query := `SELECT l.id, l.account_id, l.well_being_id, l.date, l.state, l.note,
	                 l.created_at, l.updated_at,
	                 COALESCE(w.name, ''), COALESCE(w.accent_color, '')
	          FROM logs l
	          LEFT JOIN well_beings w ON w.id = l.well_being_id
	          WHERE l.account_id = $1 AND l.date = $2
	          ORDER BY l.created_at ASC`

	rows, err := r.pool.Query(ctx, query, accountID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	var entries []*models.LogEntry
	for rows.Next() {
		var entry models.LogEntry
		err := rows.Scan(
			&entry.ID,
			&entry.AccountID,
			&entry.WellBeingID,
			&entry.Date,
			&entry.State,
			&entry.Note,
			&entry.CreatedAt,
			&entry.UpdatedAt,
			&entry.WellBeingName,
			&entry.WellBeingColor,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		entry.WellBeingColor = strings.TrimSpace(entry.WellBeingColor)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating logs: %w", err)
	}

	return entries, nil
}

func (r *PostgresLogRepository) CountDistinctDays(ctx context.Context, accountID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(DISTINCT date) FROM logs WHERE account_id = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count log days: %w", err)
	}
	return count, nil
}

func (r *PostgresLogRepository) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	query := `DELETE FROM logs WHERE id = $1 AND account_id = $2`

	result, err := r.pool.Exec(ctx, query, id, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
