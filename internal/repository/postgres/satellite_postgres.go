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

type satelliteRepository struct {
	db *sqlx.DB
}

// NewSatelliteRepository creates a new PostgreSQL satellite data repository
func NewSatelliteRepository(db *sqlx.DB) repository.SatelliteRepository {
	return &satelliteRepository{db: db}
}

func (r *satelliteRepository) Create(ctx context.Context, rec *domain.SatelliteRecord) error {
	query := `
		INSERT INTO satellite_data (
			kabupaten, recorded_on, ndvi_avg, evi_avg, land_surface_temp,
			soil_moisture, rainfall_mm, cloud_coverage, data_source
		) VALUES (
			:kabupaten, :recorded_on, :ndvi_avg, :evi_avg, :land_surface_temp,
			:soil_moisture, :rainfall_mm, :cloud_coverage, :data_source
		)
		RETURNING id, created_at`

	rows, err := r.db.NamedQueryContext(ctx, query, rec)
	if err != nil {
		return fmt.Errorf("failed to create satellite record: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&rec.ID, &rec.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan satellite record id: %w", err)
		}
	}

	return nil
}

func (r *satelliteRepository) ListByKabupaten(ctx context.Context, kabupaten string, from, to time.Time) ([]*domain.SatelliteRecord, error) {
	query := `
		SELECT id, kabupaten, recorded_on, ndvi_avg, evi_avg, land_surface_temp,
			   soil_moisture, rainfall_mm, cloud_coverage, data_source, created_at
		FROM satellite_data
		WHERE kabupaten = $1 AND recorded_on >= $2 AND recorded_on <= $3
		ORDER BY recorded_on DESC`

	var records []*domain.SatelliteRecord
	if err := r.db.SelectContext(ctx, &records, query, kabupaten, from, to); err != nil {
		return nil, fmt.Errorf("failed to list satellite records: %w", err)
	}

	return records, nil
}

func (r *satelliteRepository) Latest(ctx context.Context, kabupaten string) (*domain.SatelliteRecord, error) {
	query := `
		SELECT id, kabupaten, recorded_on, ndvi_avg, evi_avg, land_surface_temp,
			   soil_moisture, rainfall_mm, cloud_coverage, data_source, created_at
		FROM satellite_data
		WHERE kabupaten = $1
		ORDER BY recorded_on DESC
		LIMIT 1`

	var rec domain.SatelliteRecord
	err := r.db.GetContext(ctx, &rec, query, kabupaten)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest satellite record: %w", err)
	}

	return &rec, nil
}

// MonthlyAverages aggregates the calendar month containing ref into a
// synthetic record whose metric fields hold per-column averages.
func (r *satelliteRepository) MonthlyAverages(ctx context.Context, kabupaten string, ref time.Time) (*domain.SatelliteRecord, error) {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT COALESCE(AVG(ndvi_avg), 0)          AS ndvi_avg,
			   COALESCE(AVG(evi_avg), 0)           AS evi_avg,
			   COALESCE(AVG(land_surface_temp), 0) AS land_surface_temp,
			   COALESCE(AVG(soil_moisture), 0)     AS soil_moisture,
			   COALESCE(SUM(rainfall_mm), 0)       AS rainfall_mm,
			   COALESCE(AVG(cloud_coverage), 0)    AS cloud_coverage
		FROM satellite_data
		WHERE kabupaten = $1 AND recorded_on >= $2 AND recorded_on < $3`

	rec := domain.SatelliteRecord{Kabupaten: kabupaten, RecordedOn: monthStart}
	err := r.db.QueryRowxContext(ctx, query, kabupaten, monthStart, monthEnd).Scan(
		&rec.NDVIAvg, &rec.EVIAvg, &rec.LandSurfaceTemp,
		&rec.SoilMoisture, &rec.RainfallMM, &rec.CloudCoverage,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate satellite month: %w", err)
	}

	return &rec, nil
}
