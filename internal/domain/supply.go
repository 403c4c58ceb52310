package domain

import "time"

type SupplyRecord struct {
	ID                int64     `json:"id" db:"id"`
	Kabupaten         string    `json:"kabupaten" db:"kabupaten"`
	Commodity         string    `json:"commodity" db:"commodity"`
	StockTons         float64   `json:"stock_tons" db:"stock_tons"`
	DistributedTons   float64   `json:"distributed_tons" db:"distributed_tons"`
	PricePerKg        float64   `json:"price_per_kg" db:"price_per_kg"`
	QualityGrade      string    `json:"quality_grade" db:"quality_grade"`
	WarehouseLocation *string   `json:"warehouse_location,omitempty" db:"warehouse_location"`
	RecordedOn        time.Time `json:"recorded_on" db:"recorded_on"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// CommoditySummary aggregates one commodity's supply position for the
// dashboard and monthly report.
type CommoditySummary struct {
	Commodity       string  `json:"commodity" db:"commodity"`
	StockTons       float64 `json:"stock_tons" db:"stock_tons"`
	DistributedTons float64 `json:"distributed_tons" db:"distributed_tons"`
	AvgPricePerKg   float64 `json:"avg_price_per_kg" db:"avg_price_per_kg"`
}

type MitraPartner struct {
	ID               int64      `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	Category         string     `json:"category" db:"category"`
	Kabupaten        string     `json:"kabupaten" db:"kabupaten"`
	ContactPerson    *string    `json:"contact_person,omitempty" db:"contact_person"`
	Phone            *string    `json:"phone,omitempty" db:"phone"`
	Email            *string    `json:"email,omitempty" db:"email"`
	Address          *string    `json:"address,omitempty" db:"address"`
	PartnershipSince *time.Time `json:"partnership_since,omitempty" db:"partnership_since"`
	Status           string     `json:"status" db:"status"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}
