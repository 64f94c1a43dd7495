package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blooddrive-backend/internal/domains/donor/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresDonorRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresDonorRepository(pool *pgxpool.Pool) DonorRepository {
	return &postgresDonorRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresDonorRepository) Create(ctx context.Context, donor *model.Donor) error {
	query := `
		INSERT INTO donors (
			id, full_name, blood_group, age, academic_year, donated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq
	`

	err := r.pool.QueryRow(ctx, query,
		donor.ID,
		donor.FullName,
		donor.BloodGroup,
		donor.Age,
		donor.Year,
		donor.DonatedAt,
	).Scan(&donor.Seq)

	if err != nil {
		// Check constraint violation (age bounds are enforced in the
		// schema as well)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return model.ErrInvalidSubmission
		}
		return fmt.Errorf("failed to insert donor: %w", err)
	}

	return nil
}

// =====================================================
// LIST RECENT
// =====================================================

func (r *postgresDonorRepository) ListRecent(ctx context.Context, limit int) ([]*model.Donor, error) {
	if limit <= 0 {
		limit = model.DefaultRecentLimit
	}

	// Backed by idx_donors_recency, so the top-N read stays an index scan.
	query := `
		SELECT id, full_name, blood_group, age, academic_year, seq, donated_at
		FROM donors
		ORDER BY donated_at DESC, seq DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent donors: %w", err)
	}
	defer rows.Close()

	var donors []*model.Donor
	for rows.Next() {
		var d model.Donor
		if err := rows.Scan(
			&d.ID,
			&d.FullName,
			&d.BloodGroup,
			&d.Age,
			&d.Year,
			&d.Seq,
			&d.DonatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan donor: %w", err)
		}
		donors = append(donors, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read donors: %w", err)
	}

	return donors, nil
}

// =====================================================
// COUNT
// =====================================================

func (r *postgresDonorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM donors`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count donors: %w", err)
	}
	return count, nil
}
