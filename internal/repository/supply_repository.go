package repository

import (
	"context"
	"time"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
)

type SupplyRepository interface {
	Create(ctx context.Context, rec *domain.SupplyRecord) error
	ListByKabupaten(ctx context.Context, kabupaten, commodity string, from, to time.Time) ([]*domain.SupplyRecord, error)
	// CommoditySummaries totals stock and distribution per commodity over
	// the given window.
	CommoditySummaries(ctx context.Context, kabupaten string, from, to time.Time) ([]*domain.CommoditySummary, error)
}

type PartnerRepository interface {
	ListByKabupaten(ctx context.Context, kabupaten, category string) ([]*domain.MitraPartner, error)
	CountActive(ctx context.Context, kabupaten string) (int, error)
}
