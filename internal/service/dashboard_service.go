package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
	"github.com/Ryzeria/samikna-website-sub001/pkg/cache"
)

// DashboardService assembles the per-kabupaten overview shown on the
// landing dashboard. Snapshots are cached in Redis under a short TTL;
// the cache is best-effort and a miss or Redis outage falls through to
// the database.
type DashboardService struct {
	satelliteRepo repository.SatelliteRepository
	weatherRepo   repository.WeatherRepository
	cropRepo      repository.CropRepository
	supplyRepo    repository.SupplyRepository
	partnerRepo   repository.PartnerRepository
	cache         *cache.Cache

	now func() time.Time
}

func NewDashboardService(
	satelliteRepo repository.SatelliteRepository,
	weatherRepo repository.WeatherRepository,
	cropRepo repository.CropRepository,
	supplyRepo repository.SupplyRepository,
	partnerRepo repository.PartnerRepository,
	snapshotCache *cache.Cache,
) *DashboardService {
	return &DashboardService{
		satelliteRepo: satelliteRepo,
		weatherRepo:   weatherRepo,
		cropRepo:      cropRepo,
		supplyRepo:    supplyRepo,
		partnerRepo:   partnerRepo,
		cache:         snapshotCache,
		now:           time.Now,
	}
}

type VegetationOverview struct {
	NDVIAvg         float64 `json:"ndvi_avg"`
	Health          string  `json:"health"`
	ChangePercent   float64 `json:"change_percent"`
	RainfallMM      float64 `json:"rainfall_mm"`
	SoilMoisture    float64 `json:"soil_moisture"`
	LandSurfaceTemp float64 `json:"land_surface_temp"`
}

type DashboardSnapshot struct {
	Kabupaten      string                        `json:"kabupaten"`
	GeneratedAt    time.Time                     `json:"generated_at"`
	Vegetation     *VegetationOverview           `json:"vegetation,omitempty"`
	CurrentWeather *domain.WeatherRecord         `json:"current_weather,omitempty"`
	ActivityCounts map[domain.ActivityStatus]int `json:"activity_counts"`
	Commodities    []*domain.CommoditySummary    `json:"commodities"`
	ActivePartners int                           `json:"active_partners"`
}

// Overview returns the dashboard snapshot for a kabupaten, serving from
// cache when a fresh snapshot exists.
func (s *DashboardService) Overview(ctx context.Context, kabupaten string) (*DashboardSnapshot, error) {
	var cached DashboardSnapshot
	err := s.cache.Get(ctx, "dashboard:"+kabupaten, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Printf("[DASHBOARD] cache read failed kabupaten=%s: %v", kabupaten, err)
	}

	snapshot, err := s.build(ctx, kabupaten)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, "dashboard:"+kabupaten, snapshot); err != nil {
		log.Printf("[DASHBOARD] cache write failed kabupaten=%s: %v", kabupaten, err)
	}

	return snapshot, nil
}

func (s *DashboardService) build(ctx context.Context, kabupaten string) (*DashboardSnapshot, error) {
	now := s.now()

	snapshot := &DashboardSnapshot{
		Kabupaten:   kabupaten,
		GeneratedAt: now,
	}

	vegetation, err := s.vegetationOverview(ctx, kabupaten, now)
	if err != nil {
		return nil, err
	}
	snapshot.Vegetation = vegetation

	weather, err := s.weatherRepo.Latest(ctx, kabupaten)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	snapshot.CurrentWeather = weather

	counts, err := s.cropRepo.CountByStatus(ctx, kabupaten)
	if err != nil {
		return nil, err
	}
	snapshot.ActivityCounts = counts

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	commodities, err := s.supplyRepo.CommoditySummaries(ctx, kabupaten, monthStart, now)
	if err != nil {
		return nil, err
	}
	snapshot.Commodities = commodities

	partners, err := s.partnerRepo.CountActive(ctx, kabupaten)
	if err != nil {
		return nil, err
	}
	snapshot.ActivePartners = partners

	return snapshot, nil
}

// vegetationOverview compares this month's NDVI average with last
// month's and buckets the current value into a health category.
func (s *DashboardService) vegetationOverview(ctx context.Context, kabupaten string, now time.Time) (*VegetationOverview, error) {
	latest, err := s.satelliteRepo.Latest(ctx, kabupaten)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	current, err := s.satelliteRepo.MonthlyAverages(ctx, kabupaten, now)
	if err != nil {
		return nil, err
	}
	previous, err := s.satelliteRepo.MonthlyAverages(ctx, kabupaten, now.AddDate(0, -1, 0))
	if err != nil {
		return nil, err
	}

	return &VegetationOverview{
		NDVIAvg:         latest.NDVIAvg,
		Health:          domain.VegetationHealth(latest.NDVIAvg),
		ChangePercent:   percentChange(previous.NDVIAvg, current.NDVIAvg),
		RainfallMM:      current.RainfallMM,
		SoilMoisture:    latest.SoilMoisture,
		LandSurfaceTemp: latest.LandSurfaceTemp,
	}, nil
}

func percentChange(previous, current float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
