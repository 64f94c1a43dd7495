package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"blooddrive-backend/internal/domains/stats/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresStatsRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &postgresStatsRepository{pool: pool}
}

// =====================================================
// GET (lazy init)
// =====================================================

func (r *postgresStatsRepository) Get(ctx context.Context) (*model.DriveStats, error) {
	// Upsert-then-read: two concurrent first readers both hit the ON
	// CONFLICT path harmlessly, only one row ever exists.
	insert := `
		INSERT INTO drive_stats (id, total_units, last_updated)
		VALUES ($1, 0, now())
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.pool.Exec(ctx, insert, model.StatsKey); err != nil {
		return nil, fmt.Errorf("failed to initialize stats: %w", err)
	}

	query := `
		SELECT id, total_units, last_updated
		FROM drive_stats
		WHERE id = $1
	`

	var stats model.DriveStats
	err := r.pool.QueryRow(ctx, query, model.StatsKey).Scan(
		&stats.ID,
		&stats.TotalUnits,
		&stats.LastUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return &stats, nil
}

// =====================================================
// INCREMENT
// =====================================================

func (r *postgresStatsRepository) Increment(ctx context.Context, amount int64) (*model.DriveStats, error) {
	// Single statement: the add happens inside the database, so N
	// concurrent increments of 1 always land as +N. Also covers the
	// missing-row case on a fresh database.
	query := `
		INSERT INTO drive_stats (id, total_units, last_updated)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET total_units  = drive_stats.total_units + excluded.total_units,
		    last_updated = excluded.last_updated
		RETURNING id, total_units, last_updated
	`

	var stats model.DriveStats
	err := r.pool.QueryRow(ctx, query, model.StatsKey, amount).Scan(
		&stats.ID,
		&stats.TotalUnits,
		&stats.LastUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to increment stats: %w", err)
	}

	return &stats, nil
}

// =====================================================
// RECONCILE
// =====================================================

func (r *postgresStatsRepository) Reconcile(ctx context.Context) (*model.DriveStats, error) {
	// count(*) over an empty donors table still yields one row, so the
	// upsert works on a fresh database too.
	query := `
		INSERT INTO drive_stats (id, total_units, last_updated)
		SELECT $1, count(*), now() FROM donors
		ON CONFLICT (id) DO UPDATE
		SET total_units  = excluded.total_units,
		    last_updated = excluded.last_updated
		RETURNING id, total_units, last_updated
	`

	var stats model.DriveStats
	err := r.pool.QueryRow(ctx, query, model.StatsKey).Scan(
		&stats.ID,
		&stats.TotalUnits,
		&stats.LastUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile stats: %w", err)
	}

	return &stats, nil
}
