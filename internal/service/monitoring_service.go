package service

import (
	"context"
	"errors"
	"time"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
)

var ErrInvalidRange = errors.New("invalid date range")

// MonitoringService serves satellite and weather records, always scoped
// to the kabupaten of the authenticated user.
type MonitoringService struct {
	satelliteRepo repository.SatelliteRepository
	weatherRepo   repository.WeatherRepository
}

func NewMonitoringService(satelliteRepo repository.SatelliteRepository, weatherRepo repository.WeatherRepository) *MonitoringService {
	return &MonitoringService{
		satelliteRepo: satelliteRepo,
		weatherRepo:   weatherRepo,
	}
}

type SatelliteInput struct {
	RecordedOn      time.Time `json:"recorded_on" validate:"required"`
	NDVIAvg         float64   `json:"ndvi_avg" validate:"gte=-1,lte=1"`
	EVIAvg          float64   `json:"evi_avg" validate:"gte=-1,lte=1"`
	LandSurfaceTemp float64   `json:"land_surface_temp"`
	SoilMoisture    float64   `json:"soil_moisture" validate:"gte=0,lte=100"`
	RainfallMM      float64   `json:"rainfall_mm" validate:"gte=0"`
	CloudCoverage   float64   `json:"cloud_coverage" validate:"gte=0,lte=100"`
	DataSource      string    `json:"data_source" validate:"required"`
}

func (s *MonitoringService) AddSatelliteRecord(ctx context.Context, kabupaten string, in SatelliteInput) (*domain.SatelliteRecord, error) {
	rec := &domain.SatelliteRecord{
		Kabupaten:       kabupaten,
		RecordedOn:      in.RecordedOn,
		NDVIAvg:         in.NDVIAvg,
		EVIAvg:          in.EVIAvg,
		LandSurfaceTemp: in.LandSurfaceTemp,
		SoilMoisture:    in.SoilMoisture,
		RainfallMM:      in.RainfallMM,
		CloudCoverage:   in.CloudCoverage,
		DataSource:      in.DataSource,
	}

	if err := s.satelliteRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *MonitoringService) SatelliteRange(ctx context.Context, kabupaten string, from, to time.Time) ([]*domain.SatelliteRecord, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}
	return s.satelliteRepo.ListByKabupaten(ctx, kabupaten, from, to)
}

type WeatherInput struct {
	RecordedAt  time.Time `json:"recorded_at" validate:"required"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity" validate:"gte=0,lte=100"`
	WindSpeed   float64   `json:"wind_speed" validate:"gte=0"`
	Pressure    float64   `json:"pressure" validate:"gte=0"`
	Rainfall    float64   `json:"rainfall" validate:"gte=0"`
	WeatherDesc string    `json:"weather_desc" validate:"required"`
	DataSource  string    `json:"data_source" validate:"required"`
}

func (s *MonitoringService) AddWeatherRecord(ctx context.Context, kabupaten string, in WeatherInput) (*domain.WeatherRecord, error) {
	rec := &domain.WeatherRecord{
		Kabupaten:   kabupaten,
		RecordedAt:  in.RecordedAt,
		Temperature: in.Temperature,
		Humidity:    in.Humidity,
		WindSpeed:   in.WindSpeed,
		Pressure:    in.Pressure,
		Rainfall:    in.Rainfall,
		WeatherDesc: in.WeatherDesc,
		DataSource:  in.DataSource,
	}

	if err := s.weatherRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *MonitoringService) WeatherRange(ctx context.Context, kabupaten string, from, to time.Time) ([]*domain.WeatherRecord, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}
	return s.weatherRepo.ListByKabupaten(ctx, kabupaten, from, to)
}

// normalizeRange defaults an open range to the last 30 days and rejects
// inverted bounds.
func normalizeRange(from, to time.Time) (time.Time, time.Time, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return from, to, nil
}
