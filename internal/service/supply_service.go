package service

import (
	"context"
	"time"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
)

type SupplyService struct {
	supplyRepo  repository.SupplyRepository
	partnerRepo repository.PartnerRepository
}

func NewSupplyService(supplyRepo repository.SupplyRepository, partnerRepo repository.PartnerRepository) *SupplyService {
	return &SupplyService{
		supplyRepo:  supplyRepo,
		partnerRepo: partnerRepo,
	}
}

type SupplyInput struct {
	Commodity         string    `json:"commodity" validate:"required"`
	StockTons         float64   `json:"stock_tons" validate:"gte=0"`
	DistributedTons   float64   `json:"distributed_tons" validate:"gte=0"`
	PricePerKg        float64   `json:"price_per_kg" validate:"gte=0"`
	QualityGrade      string    `json:"quality_grade" validate:"required"`
	WarehouseLocation *string   `json:"warehouse_location,omitempty"`
	RecordedOn        time.Time `json:"recorded_on" validate:"required"`
}

func (s *SupplyService) AddRecord(ctx context.Context, kabupaten string, in SupplyInput) (*domain.SupplyRecord, error) {
	rec := &domain.SupplyRecord{
		Kabupaten:         kabupaten,
		Commodity:         in.Commodity,
		StockTons:         in.StockTons,
		DistributedTons:   in.DistributedTons,
		PricePerKg:        in.PricePerKg,
		QualityGrade:      in.QualityGrade,
		WarehouseLocation: in.WarehouseLocation,
		RecordedOn:        in.RecordedOn,
	}

	if err := s.supplyRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *SupplyService) ListRecords(ctx context.Context, kabupaten, commodity string, from, to time.Time) ([]*domain.SupplyRecord, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}
	return s.supplyRepo.ListByKabupaten(ctx, kabupaten, commodity, from, to)
}

func (s *SupplyService) ListPartners(ctx context.Context, kabupaten, category string) ([]*domain.MitraPartner, error) {
	return s.partnerRepo.ListByKabupaten(ctx, kabupaten, category)
}
