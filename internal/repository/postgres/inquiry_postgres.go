package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
)

type inquiryRepository struct {
	db *sqlx.DB
}

// NewInquiryRepository creates a new PostgreSQL inquiry repository
func NewInquiryRepository(db *sqlx.DB) repository.InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inq *domain.Inquiry) error {
	query := `
		INSERT INTO inquiries (
			id, name, email, phone, company, kabupaten, subject, message,
			status, created_at, updated_at
		) VALUES (
			:id, :name, :email, :phone, :company, :kabupaten, :subject, :message,
			:status, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, inq)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

func (r *inquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	query := `
		SELECT id, name, email, phone, company, kabupaten, subject, message,
			   status, created_at, updated_at
		FROM inquiries
		WHERE id = $1`

	var inq domain.Inquiry
	err := r.db.GetContext(ctx, &inq, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}

	return &inq, nil
}

func (r *inquiryRepository) List(ctx context.Context, status domain.InquiryStatus, limit, offset int) ([]*domain.Inquiry, error) {
	query := `
		SELECT id, name, email, phone, company, kabupaten, subject, message,
			   status, created_at, updated_at
		FROM inquiries
		WHERE 1=1`

	var args []interface{}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	var inquiries []*domain.Inquiry
	if err := r.db.SelectContext(ctx, &inquiries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	return inquiries, nil
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) error {
	query := `
		UPDATE inquiries
		SET status = $1,
			updated_at = $2
		WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
