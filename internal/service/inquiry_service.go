package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
)

type InquiryService struct {
	inquiryRepo repository.InquiryRepository
}

func NewInquiryService(inquiryRepo repository.InquiryRepository) *InquiryService {
	return &InquiryService{inquiryRepo: inquiryRepo}
}

type InquiryInput struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone,omitempty"`
	Company   *string `json:"company,omitempty"`
	Kabupaten *string `json:"kabupaten,omitempty"`
	Subject   string  `json:"subject" validate:"required,max=200"`
	Message   string  `json:"message" validate:"required,max=5000"`
}

// Submit records a public contact-form inquiry. New inquiries always
// start in the "new" state.
func (s *InquiryService) Submit(ctx context.Context, in InquiryInput) (*domain.Inquiry, error) {
	now := time.Now()
	inq := &domain.Inquiry{
		ID:        uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Kabupaten: in.Kabupaten,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    domain.InquiryNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.inquiryRepo.Create(ctx, inq); err != nil {
		return nil, err
	}

	return inq, nil
}

func (s *InquiryService) List(ctx context.Context, status string, limit, offset int) ([]*domain.Inquiry, error) {
	st := domain.InquiryStatus(status)
	if status != "" && !st.Valid() {
		return nil, ErrUnknownStatus
	}
	return s.inquiryRepo.List(ctx, st, limit, offset)
}

func (s *InquiryService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	st := domain.InquiryStatus(status)
	if !st.Valid() {
		return ErrUnknownStatus
	}

	if err := s.inquiryRepo.UpdateStatus(ctx, id, st); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}
