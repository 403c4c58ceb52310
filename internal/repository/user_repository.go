package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
)

// ErrNotFound is returned by repositories when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// UserRepository is the credential store seen by the session issuance
// service. FindActiveByUsername matches at most one active record,
// case-insensitively.
type UserRepository interface {
	FindActiveByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}
