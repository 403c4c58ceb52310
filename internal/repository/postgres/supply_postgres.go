package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Ryzeria/samikna-website-sub001/internal/domain"
	"github.com/Ryzeria/samikna-website-sub001/internal/repository"
)

type supplyRepository struct {
	db *sqlx.DB
}

// NewSupplyRepository creates a new PostgreSQL supply chain repository
func NewSupplyRepository(db *sqlx.DB) repository.SupplyRepository {
	return &supplyRepository{db: db}
}

func (r *supplyRepository) Create(ctx context.Context, rec *domain.SupplyRecord) error {
	query := `
		INSERT INTO supply_chain (
			kabupaten, commodity, stock_tons, distributed_tons, price_per_kg,
			quality_grade, warehouse_location, recorded_on
		) VALUES (
			:kabupaten, :commodity, :stock_tons, :distributed_tons, :price_per_kg,
			:quality_grade, :warehouse_location, :recorded_on
		)
		RETURNING id, created_at`

	rows, err := r.db.NamedQueryContext(ctx, query, rec)
	if err != nil {
		return fmt.Errorf("failed to create supply record: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&rec.ID, &rec.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan supply record id: %w", err)
		}
	}

	return nil
}

func (r *supplyRepository) ListByKabupaten(ctx context.Context, kabupaten, commodity string, from, to time.Time) ([]*domain.SupplyRecord, error) {
	query := `
		SELECT id, kabupaten, commodity, stock_tons, distributed_tons, price_per_kg,
			   quality_grade, warehouse_location, recorded_on, created_at
		FROM supply_chain
		WHERE kabupaten = $1 AND recorded_on >= $2 AND recorded_on <= $3`

	args := []interface{}{kabupaten, from, to}
	if commodity != "" {
		args = append(args, commodity)
		query += fmt.Sprintf(" AND commodity = $%d", len(args))
	}

	query += " ORDER BY recorded_on DESC"

	var records []*domain.SupplyRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list supply records: %w", err)
	}

	return records, nil
}

func (r *supplyRepository) CommoditySummaries(ctx context.Context, kabupaten string, from, to time.Time) ([]*domain.CommoditySummary, error) {
	query := `
		SELECT commodity,
			   COALESCE(SUM(stock_tons), 0)       AS stock_tons,
			   COALESCE(SUM(distributed_tons), 0) AS distributed_tons,
			   COALESCE(AVG(price_per_kg), 0)     AS avg_price_per_kg
		FROM supply_chain
		WHERE kabupaten = $1 AND recorded_on >= $2 AND recorded_on <= $3
		GROUP BY commodity
		ORDER BY commodity`

	var summaries []*domain.CommoditySummary
	if err := r.db.SelectContext(ctx, &summaries, query, kabupaten, from, to); err != nil {
		return nil, fmt.Errorf("failed to summarize commodities: %w", err)
	}

	return summaries, nil
}

type partnerRepository struct {
	db *sqlx.DB
}

// NewPartnerRepository creates a new PostgreSQL mitra partner repository
func NewPartnerRepository(db *sqlx.DB) repository.PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) ListByKabupaten(ctx context.Context, kabupaten, category string) ([]*domain.MitraPartner, error) {
	query := `
		SELECT id, name, category, kabupaten, contact_person, phone, email,
			   address, partnership_since, status, created_at
		FROM mitra_partners
		WHERE kabupaten = $1`

	args := []interface{}{kabupaten}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	query += " ORDER BY name"

	var partners []*domain.MitraPartner
	if err := r.db.SelectContext(ctx, &partners, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}

	return partners, nil
}

func (r *partnerRepository) CountActive(ctx context.Context, kabupaten string) (int, error) {
	query := `SELECT COUNT(*) FROM mitra_partners WHERE kabupaten = $1 AND status = 'active'`

	var total int
	if err := r.db.GetContext(ctx, &total, query, kabupaten); err != nil {
		return 0, fmt.Errorf("failed to count partners: %w", err)
	}

	return total, nil
}
