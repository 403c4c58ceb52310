package domain

import (
	"time"

	"github.com/google/uuid"
)

type InquiryStatus string

const (
	InquiryNew        InquiryStatus = "new"
	InquiryInProgress InquiryStatus = "in_progress"
	InquiryResolved   InquiryStatus = "resolved"
)

type Inquiry struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Phone     *string       `json:"phone,omitempty" db:"phone"`
	Company   *string       `json:"company,omitempty" db:"company"`
	Kabupaten *string       `json:"kabupaten,omitempty" db:"kabupaten"`
	Subject   string        `json:"subject" db:"subject"`
	Message   string        `json:"message" db:"message"`
	Status    InquiryStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryInProgress, InquiryResolved:
		return true
	}
	return false
}
