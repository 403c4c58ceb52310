package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FullName     string     `json:"full_name" db:"full_name"`
	Kabupaten    string     `json:"kabupaten" db:"kabupaten"`
	Role         string     `json:"role" db:"role"`
	Position     *string    `json:"position,omitempty" db:"position"`
	Phone        *string    `json:"phone,omitempty" db:"phone"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty" db:"last_login"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Profile is the caller-visible view of a user. It never carries the
// password hash or other internal-only columns.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Kabupaten string    `json:"kabupaten"`
	Role      string    `json:"role"`
	Position  *string   `json:"position,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
}

func (u *User) Profile() *Profile {
	return &Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Kabupaten: u.Kabupaten,
		Role:      u.Role,
		Position:  u.Position,
		Phone:     u.Phone,
	}
}
