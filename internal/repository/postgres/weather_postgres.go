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

type weatherRepository struct {
	db *sqlx.DB
}

// NewWeatherRepository creates a new PostgreSQL weather data repository
func NewWeatherRepository(db *sqlx.DB) repository.WeatherRepository {
	return &weatherRepository{db: db}
}

func (r *weatherRepository) Create(ctx context.Context, rec *domain.WeatherRecord) error {
	query := `
		INSERT INTO weather_data (
			kabupaten, recorded_at, temperature, humidity, wind_speed,
			pressure, rainfall, weather_desc, data_source
		) VALUES (
			:kabupaten, :recorded_at, :temperature, :humidity, :wind_speed,
			:pressure, :rainfall, :weather_desc, :data_source
		)
		RETURNING id, created_at`

	rows, err := r.db.NamedQueryContext(ctx, query, rec)
	if err != nil {
		return fmt.Errorf("failed to create weather record: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&rec.ID, &rec.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan weather record id: %w", err)
		}
	}

	return nil
}

func (r *weatherRepository) ListByKabupaten(ctx context.Context, kabupaten string, from, to time.Time) ([]*domain.WeatherRecord, error) {
	query := `
		SELECT id, kabupaten, recorded_at, temperature, humidity, wind_speed,
			   pressure, rainfall, weather_desc, data_source, created_at
		FROM weather_data
		WHERE kabupaten = $1 AND recorded_at >= $2 AND recorded_at <= $3
		ORDER BY recorded_at DESC`

	var records []*domain.WeatherRecord
	if err := r.db.SelectContext(ctx, &records, query, kabupaten, from, to); err != nil {
		return nil, fmt.Errorf("failed to list weather records: %w", err)
	}

	return records, nil
}

func (r *weatherRepository) Latest(ctx context.Context, kabupaten string) (*domain.WeatherRecord, error) {
	query := `
		SELECT id, kabupaten, recorded_at, temperature, humidity, wind_speed,
			   pressure, rainfall, weather_desc, data_source, created_at
		FROM weather_data
		WHERE kabupaten = $1
		ORDER BY recorded_at DESC
		LIMIT 1`

	var rec domain.WeatherRecord
	err := r.db.GetContext(ctx, &rec, query, kabupaten)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest weather record: %w", err)
	}

	return &rec, nil
}
