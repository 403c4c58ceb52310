package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
	"github.com/Ryzeria/samikna-website-sub001/pkg/cache"
)

type fakeSatelliteRepo struct {
	latest  *domain.SatelliteRecord
	byMonth map[time.Month]*domain.SatelliteRecord
	calls   int
}

func (f *fakeSatelliteRepo) Create(ctx context.Context, rec *domain.SatelliteRecord) error {
	return nil
}

func (f *fakeSatelliteRepo) ListByKabupaten(ctx context.Context, kabupaten string, from, to time.Time) ([]*domain.SatelliteRecord, error) {
	return nil, nil
}

func (f *fakeSatelliteRepo) Latest(ctx context.Context, kabupaten string) (*domain.SatelliteRecord, error) {
	f.calls++
	if f.latest == nil {
		return nil, repository.ErrNotFound
	}
	return f.latest, nil
}

func (f *fakeSatelliteRepo) MonthlyAverages(ctx context.Context, kabupaten string, ref time.Time) (*domain.SatelliteRecord, error) {
	f.calls++
	if rec, ok := f.byMonth[ref.Month()]; ok {
		return rec, nil
	}
	return &domain.SatelliteRecord{Kabupaten: kabupaten}, nil
}

type fakeWeatherRepo struct{ latest *domain.WeatherRecord }

func (f *fakeWeatherRepo) Create(ctx context.Context, rec *domain.WeatherRecord) error { return nil }

func (f *fakeWeatherRepo) ListByKabupaten(ctx context.Context, kabupaten string, from, to time.Time) ([]*domain.WeatherRecord, error) {
	return nil, nil
}

func (f *fakeWeatherRepo) Latest(ctx context.Context, kabupaten string) (*domain.WeatherRecord, error) {
	if f.latest == nil {
		return nil, repository.ErrNotFound
	}
	return f.latest, nil
}

type fakeCropRepo struct{ counts map[domain.ActivityStatus]int }

func (f *fakeCropRepo) Create(ctx context.Context, act *domain.CropActivity) error { return nil }
func (f *fakeCropRepo) GetByID(ctx context.Context, id int64) (*domain.CropActivity, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeCropRepo) ListByKabupaten(ctx context.Context, kabupaten string, filter repository.CropFilter) ([]*domain.CropActivity, error) {
	return nil, nil
}
func (f *fakeCropRepo) Update(ctx context.Context, act *domain.CropActivity) error { return nil }
func (f *fakeCropRepo) Delete(ctx context.Context, id int64) error                 { return nil }
func (f *fakeCropRepo) CountByStatus(ctx context.Context, kabupaten string) (map[domain.ActivityStatus]int, error) {
	return f.counts, nil
}
func (f *fakeCropRepo) TotalAreaByType(ctx context.Context, kabupaten string) (map[domain.ActivityType]float64, error) {
	return nil, nil
}

type fakeSupplyRepo struct{ summaries []*domain.CommoditySummary }

func (f *fakeSupplyRepo) Create(ctx context.Context, rec *domain.SupplyRecord) error { return nil }
func (f *fakeSupplyRepo) ListByKabupaten(ctx context.Context, kabupaten, commodity string, from, to time.Time) ([]*domain.SupplyRecord, error) {
	return nil, nil
}
func (f *fakeSupplyRepo) CommoditySummaries(ctx context.Context, kabupaten string, from, to time.Time) ([]*domain.CommoditySummary, error) {
	return f.summaries, nil
}

type fakePartnerRepo struct{ active int }

func (f *fakePartnerRepo) ListByKabupaten(ctx context.Context, kabupaten, category string) ([]*domain.MitraPartner, error) {
	return nil, nil
}
func (f *fakePartnerRepo) CountActive(ctx context.Context, kabupaten string) (int, error) {
	return f.active, nil
}

func newDashboardFixture(t *testing.T) (*DashboardService, *fakeSatelliteRepo) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	satellite := &fakeSatelliteRepo{
		latest: &domain.SatelliteRecord{Kabupaten: "bangkalan", NDVIAvg: 0.71, SoilMoisture: 55.3, LandSurfaceTemp: 30.1},
		byMonth: map[time.Month]*domain.SatelliteRecord{
			time.August: {NDVIAvg: 0.66, RainfallMM: 52.5},
			time.July:   {NDVIAvg: 0.60, RainfallMM: 40.0},
		},
	}

	svc := NewDashboardService(
		satellite,
		&fakeWeatherRepo{latest: &domain.WeatherRecord{Kabupaten: "bangkalan", Temperature: 31.0}},
		&fakeCropRepo{counts: map[domain.ActivityStatus]int{domain.ActivityOngoing: 2, domain.ActivityCompleted: 5}},
		&fakeSupplyRepo{summaries: []*domain.CommoditySummary{{Commodity: "beras", StockTons: 470}}},
		&fakePartnerRepo{active: 3},
		cache.New(client, time.Minute),
	)
	svc.now = func() time.Time { return now }

	return svc, satellite
}

func TestDashboardOverview(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	snapshot, err := svc.Overview(context.Background(), "bangkalan")
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	veg := snapshot.Vegetation
	if veg == nil {
		t.Fatal("vegetation overview missing")
	}
	if veg.Health != "excellent" {
		t.Errorf("health = %q, want excellent for ndvi 0.71", veg.Health)
	}
	// 0.60 -> 0.66 month over month
	if veg.ChangePercent < 9.9 || veg.ChangePercent > 10.1 {
		t.Errorf("change percent = %v, want ~10", veg.ChangePercent)
	}
	if snapshot.ActivityCounts[domain.ActivityCompleted] != 5 {
		t.Errorf("completed count = %d, want 5", snapshot.ActivityCounts[domain.ActivityCompleted])
	}
	if snapshot.ActivePartners != 3 {
		t.Errorf("active partners = %d, want 3", snapshot.ActivePartners)
	}
	if len(snapshot.Commodities) != 1 || snapshot.Commodities[0].Commodity != "beras" {
		t.Errorf("commodities = %+v, want beras summary", snapshot.Commodities)
	}
}

func TestDashboardOverviewServedFromCache(t *testing.T) {
	svc, satellite := newDashboardFixture(t)
	ctx := context.Background()

	if _, err := svc.Overview(ctx, "bangkalan"); err != nil {
		t.Fatalf("Overview: %v", err)
	}
	callsAfterFirst := satellite.calls

	if _, err := svc.Overview(ctx, "bangkalan"); err != nil {
		t.Fatalf("Overview (cached): %v", err)
	}
	if satellite.calls != callsAfterFirst {
		t.Errorf("second call hit the satellite repo %d more times, want cache hit", satellite.calls-callsAfterFirst)
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		previous, current, want float64
	}{
		{100, 110, 10},
		{50, 25, -50},
		{0, 10, 0},
	}
	for _, tt := range tests {
		if got := percentChange(tt.previous, tt.current); got != tt.want {
			t.Errorf("percentChange(%v, %v) = %v, want %v", tt.previous, tt.current, got, tt.want)
		}
	}
}
