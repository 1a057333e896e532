package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tracklight/wellbeing/internal/models"
)

type PostgresWellBeingRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresWellBeingRepository(pool *pgxpool.Pool) *PostgresWellBeingRepository {
	return &PostgresWellBeingRepository{pool: pool}
}

func (r *PostgresWellBeingRepository) Create(ctx context.Context, wellBeing *models.WellBeing) error {
	query := `INSERT INTO well_beings (account_id, name, accent_color, removable)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		wellBeing.AccountID,
		wellBeing.Name,
		wellBeing.AccentColor,
		wellBeing.Removable,
	).Scan(&wellBeing.ID, &wellBeing.CreatedAt)

	if isUniqueViolation(err, "well_beings_account_name_key") {
		return ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("failed to create well-being: %w", err)
	}
	return nil
}

func (r *PostgresWellBeingRepository) GetByID(ctx context.Context, accountID, id uuid.UUID) (*models.WellBeing, error) {
	query := `SELECT id, account_id, name, accent_color, removable, created_at
	          FROM well_beings
	          WHERE id = $1 AND account_id = $2`

	var wellBeing models.WellBeing
	err := r.pool.QueryRow(ctx, query, id, accountID).Scan(
		&wellBeing.ID,
		&wellBeing.AccountID,
		&wellBeing.Name,
		&wellBeing.AccentColor,
		&wellBeing.Removable,
		&wellBeing.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get well-being: %w", err)
	}
	wellBeing.AccentColor = strings.TrimSpace(wellBeing.AccentColor)
	return &wellBeing, nil
}

func (r *PostgresWellBeingRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.WellBeing, error) {
	query := `SELECT id, account_id, name, accent_color, removable, created_at
	          FROM well_beings
	          WHERE account_id = $1
	          ORDER BY seq ASC`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query well-beings: %w", err)
	}
	defer rows.Close()

	var wellBeings []*models.WellBeing
	for rows.Next() {
		var wellBeing models.WellBeing
		err := rows.Scan(
			&wellBeing.ID,
			&wellBeing.AccountID,
			&wellBeing.Name,
			&wellBeing.AccentColor,
			&wellBeing.Removable,
			&wellBeing.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan well-being: %w", err)
		}
		wellBeing.AccentColor = strings.TrimSpace(wellBeing.AccentColor)
		wellBeings = append(wellBeings, &wellBeing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating well-beings: %w", err)
	}

	return wellBeings, nil
}

// Delete removes the row. It never touches the logs table: logs that
// reference a deleted well-being stay queryable for history.
func (r *PostgresWellBeingRepository) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	query := `DELETE FROM well_beings WHERE id = $1 AND account_id = $2`

	result, err := r.pool.Exec(ctx, query, id, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete well-being: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
