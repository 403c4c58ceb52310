package repository

import (
	"context"
	"time"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
)

type SatelliteRepository interface {
	Create(ctx context.Context, rec *domain.SatelliteRecord) error
	ListByKabupaten(ctx context.Context, kabupaten string, from, to time.Time) ([]*domain.SatelliteRecord, error)
	Latest(ctx context.Context, kabupaten string) (*domain.SatelliteRecord, error)
	// MonthlyAverages returns the NDVI/rainfall averages for the calendar
	// month containing ref, kabupaten-scoped.
	MonthlyAverages(ctx context.Context, kabupaten string, ref time.Time) (*domain.SatelliteRecord, error)
}

type WeatherRepository interface {
	Create(ctx context.Context, rec *domain.WeatherRecord) error
	ListByKabupaten(ctx context.Context, kabupaten string, from, to time.Time) ([]*domain.WeatherRecord, error)
	Latest(ctx context.Context, kabupaten string) (*domain.WeatherRecord, error)
}
