package service

import (
	"context"
	"errors"
	"time"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
)

var ErrInvalidPeriod = errors.New("invalid report period")

// ReportService assembles the monthly data document for a kabupaten.
// Rendering and export are the front end's concern; this service only
// returns the aggregates.
type ReportService struct {
	satelliteRepo repository.SatelliteRepository
	weatherRepo   repository.WeatherRepository
	cropRepo      repository.CropRepository
	supplyRepo    repository.SupplyRepository
}

func NewReportService(
	satelliteRepo repository.SatelliteRepository,
	weatherRepo repository.WeatherRepository,
	cropRepo repository.CropRepository,
	supplyRepo repository.SupplyRepository,
) *ReportService {
	return &ReportService{
		satelliteRepo: satelliteRepo,
		weatherRepo:   weatherRepo,
		cropRepo:      cropRepo,
		supplyRepo:    supplyRepo,
	}
}

type MonthlyReport struct {
	Kabupaten         string                          `json:"kabupaten"`
	Year              int                             `json:"year"`
	Month             time.Month                      `json:"month"`
	SatelliteAverages *domain.SatelliteRecord         `json:"satellite_averages"`
	WeatherRecords    []*domain.WeatherRecord         `json:"weather_records"`
	ActivityCounts    map[domain.ActivityStatus]int   `json:"activity_counts"`
	AreaByActivity    map[domain.ActivityType]float64 `json:"area_by_activity"`
	Commodities       []*domain.CommoditySummary      `json:"commodities"`
}

func (s *ReportService) Monthly(ctx context.Context, kabupaten string, year int, month time.Month) (*MonthlyReport, error) {
	if year < 2000 || month < time.January || month > time.December {
		return nil, ErrInvalidPeriod
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	averages, err := s.satelliteRepo.MonthlyAverages(ctx, kabupaten, monthStart)
	if err != nil {
		return nil, err
	}

	weather, err := s.weatherRepo.ListByKabupaten(ctx, kabupaten, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	counts, err := s.cropRepo.CountByStatus(ctx, kabupaten)
	if err != nil {
		return nil, err
	}

	areas, err := s.cropRepo.TotalAreaByType(ctx, kabupaten)
	if err != nil {
		return nil, err
	}

	commodities, err := s.supplyRepo.CommoditySummaries(ctx, kabupaten, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	return &MonthlyReport{
		Kabupaten:         kabupaten,
		Year:              year,
		Month:             month,
		SatelliteAverages: averages,
		WeatherRecords:    weather,
		ActivityCounts:    counts,
		AreaByActivity:    areas,
		Commodities:       commodities,
	}, nil
}
