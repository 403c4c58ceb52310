package repository

import (
	"context"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
)

// CropFilter narrows crop activity listings. Empty fields are ignored.
type CropFilter struct {
	Status       domain.ActivityStatus
	ActivityType domain.ActivityType
	Limit        int
	Offset       int
}

type CropRepository interface {
	Create(ctx context.Context, act *domain.CropActivity) error
	GetByID(ctx context.Context, id int64) (*domain.CropActivity, error)
	ListByKabupaten(ctx context.Context, kabupaten string, filter CropFilter) ([]*domain.CropActivity, error)
	Update(ctx context.Context, act *domain.CropActivity) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, kabupaten string) (map[domain.ActivityStatus]int, error)
	TotalAreaByType(ctx context.Context, kabupaten string) (map[domain.ActivityType]float64, error)
}
