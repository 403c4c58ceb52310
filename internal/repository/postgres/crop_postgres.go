package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
)

type cropRepository struct {
	db *sqlx.DB
}

// NewCropRepository creates a new PostgreSQL crop activity repository
func NewCropRepository(db *sqlx.DB) repository.CropRepository {
	return &cropRepository{db: db}
}

func (r *cropRepository) Create(ctx context.Context, act *domain.CropActivity) error {
	query := `
		INSERT INTO crop_activities (
			kabupaten, activity_type, crop_type, area_hectares, activity_date,
			status, description, extension_officer
		) VALUES (
			:kabupaten, :activity_type, :crop_type, :area_hectares, :activity_date,
			:status, :description, :extension_officer
		)
		RETURNING id, created_at, updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, act)
	if err != nil {
		return fmt.Errorf("failed to create crop activity: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&act.ID, &act.CreatedAt, &act.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan crop activity id: %w", err)
		}
	}

	return nil
}

func (r *cropRepository) GetByID(ctx context.Context, id int64) (*domain.CropActivity, error) {
	query := `
		SELECT id, kabupaten, activity_type, crop_type, area_hectares, activity_date,
			   status, description, extension_officer, created_at, updated_at
		FROM crop_activities
		WHERE id = $1`

	var act domain.CropActivity
	err := r.db.GetContext(ctx, &act, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get crop activity: %w", err)
	}

	return &act, nil
}

func (r *cropRepository) ListByKabupaten(ctx context.Context, kabupaten string, filter repository.CropFilter) ([]*domain.CropActivity, error) {
	query := `
		SELECT id, kabupaten, activity_type, crop_type, area_hectares, activity_date,
			   status, description, extension_officer, created_at, updated_at
		FROM crop_activities
		WHERE kabupaten = $1`

	args := []interface{}{kabupaten}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.ActivityType != "" {
		args = append(args, filter.ActivityType)
		query += fmt.Sprintf(" AND activity_type = $%d", len(args))
	}

	query += " ORDER BY activity_date DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	var activities []*domain.CropActivity
	if err := r.db.SelectContext(ctx, &activities, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list crop activities: %w", err)
	}

	return activities, nil
}

func (r *cropRepository) Update(ctx context.Context, act *domain.CropActivity) error {
	act.UpdatedAt = time.Now()

	query := `
		UPDATE crop_activities
		SET activity_type = :activity_type,
			crop_type = :crop_type,
			area_hectares = :area_hectares,
			activity_date = :activity_date,
			status = :status,
			description = :description,
			extension_officer = :extension_officer,
			updated_at = :updated_at
		WHERE id = :id AND kabupaten = :kabupaten`

	result, err := r.db.NamedExecContext(ctx, query, act)
	if err != nil {
		return fmt.Errorf("failed to update crop activity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *cropRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM crop_activities WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete crop activity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *cropRepository) CountByStatus(ctx context.Context, kabupaten string) (map[domain.ActivityStatus]int, error) {
	query := `
		SELECT status, COUNT(*) AS total
		FROM crop_activities
		WHERE kabupaten = $1
		GROUP BY status`

	rows, err := r.db.QueryxContext(ctx, query, kabupaten)
	if err != nil {
		return nil, fmt.Errorf("failed to count crop activities: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ActivityStatus]int)
	for rows.Next() {
		var status domain.ActivityStatus
		var total int
		if err := rows.Scan(&status, &total); err != nil {
			return nil, fmt.Errorf("failed to scan activity count: %w", err)
		}
		counts[status] = total
	}

	return counts, rows.Err()
}

func (r *cropRepository) TotalAreaByType(ctx context.Context, kabupaten string) (map[domain.ActivityType]float64, error) {
	query := `
		SELECT activity_type, COALESCE(SUM(area_hectares), 0) AS total_area
		FROM crop_activities
		WHERE kabupaten = $1
		GROUP BY activity_type`

	rows, err := r.db.QueryxContext(ctx, query, kabupaten)
	if err != nil {
		return nil, fmt.Errorf("failed to total crop areas: %w", err)
	}
	defer rows.Close()

	areas := make(map[domain.ActivityType]float64)
	for rows.Next() {
		var activityType domain.ActivityType
		var total float64
		if err := rows.Scan(&activityType, &total); err != nil {
			return nil, fmt.Errorf("failed to scan area total: %w", err)
		}
		areas[activityType] = total
	}

	return areas, rows.Err()
}
