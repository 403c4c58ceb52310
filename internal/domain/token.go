package domain

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID `json:"uid"`
	Username  string    `json:"username"`
	Kabupaten string    `json:"kabupaten"`
	Role      string    `json:"role"`
	ClientIP  string    `json:"client_ip,omitempty"`
}
