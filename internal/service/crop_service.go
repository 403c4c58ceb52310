package service

import (
	"context"
	"errors"
	"time"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
)

var (
	ErrUnknownActivityType = errors.New("unknown activity type")
	ErrUnknownStatus       = errors.New("unknown status")
	ErrNotFound            = errors.New("not found")
)

type CropService struct {
	cropRepo repository.CropRepository
}

func NewCropService(cropRepo repository.CropRepository) *CropService {
	return &CropService{cropRepo: cropRepo}
}

type CropActivityInput struct {
	ActivityType     string    `json:"activity_type" validate:"required,oneof=planting fertilizing pest_control harvesting irrigation"`
	CropType         string    `json:"crop_type" validate:"required"`
	AreaHectares     float64   `json:"area_hectares" validate:"required,gte=0"`
	ActivityDate     time.Time `json:"activity_date" validate:"required"`
	Status           string    `json:"status" validate:"required,oneof=planned ongoing completed"`
	Description      *string   `json:"description,omitempty"`
	ExtensionOfficer *string   `json:"extension_officer,omitempty"`
}

func (s *CropService) Create(ctx context.Context, kabupaten string, in CropActivityInput) (*domain.CropActivity, error) {
	activityType := domain.ActivityType(in.ActivityType)
	if !activityType.Valid() {
		return nil, ErrUnknownActivityType
	}
	status := domain.ActivityStatus(in.Status)
	if !status.Valid() {
		return nil, ErrUnknownStatus
	}

	act := &domain.CropActivity{
		Kabupaten:        kabupaten,
		ActivityType:     activityType,
		CropType:         in.CropType,
		AreaHectares:     in.AreaHectares,
		ActivityDate:     in.ActivityDate,
		Status:           status,
		Description:      in.Description,
		ExtensionOfficer: in.ExtensionOfficer,
	}

	if err := s.cropRepo.Create(ctx, act); err != nil {
		return nil, err
	}

	return act, nil
}

func (s *CropService) List(ctx context.Context, kabupaten string, filter repository.CropFilter) ([]*domain.CropActivity, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrUnknownStatus
	}
	if filter.ActivityType != "" && !filter.ActivityType.Valid() {
		return nil, ErrUnknownActivityType
	}
	return s.cropRepo.ListByKabupaten(ctx, kabupaten, filter)
}

// Update rewrites an activity. The row must belong to the caller's
// kabupaten; cross-tenant ids come back as not found.
func (s *CropService) Update(ctx context.Context, kabupaten string, id int64, in CropActivityInput) (*domain.CropActivity, error) {
	existing, err := s.cropRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.Kabupaten != kabupaten {
		return nil, ErrNotFound
	}

	activityType := domain.ActivityType(in.ActivityType)
	if !activityType.Valid() {
		return nil, ErrUnknownActivityType
	}
	status := domain.ActivityStatus(in.Status)
	if !status.Valid() {
		return nil, ErrUnknownStatus
	}

	existing.ActivityType = activityType
	existing.CropType = in.CropType
	existing.AreaHectares = in.AreaHectares
	existing.ActivityDate = in.ActivityDate
	existing.Status = status
	existing.Description = in.Description
	existing.ExtensionOfficer = in.ExtensionOfficer

	if err := s.cropRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return existing, nil
}

func (s *CropService) Delete(ctx context.Context, kabupaten string, id int64) error {
	existing, err := s.cropRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if existing.Kabupaten != kabupaten {
		return ErrNotFound
	}

	return s.cropRepo.Delete(ctx, id)
}
