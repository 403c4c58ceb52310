package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
)

type InquiryRepository interface {
	Create(ctx context.Context, inq *domain.Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	List(ctx context.Context, status domain.InquiryStatus, limit, offset int) ([]*domain.Inquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) error
}
