package pgsql

import (
	"context"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAnalyticsRepository struct {
	BaseRepository
}

// newPgxAnalyticsRepository creates a new repository for dashboard rollups.
func newPgxAnalyticsRepository(pool *pgxpool.Pool) portsrepo.AnalyticsRepository {
	return &PgxAnalyticsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAnalyticsRepository implements portsrepo.AnalyticsRepository
var _ portsrepo.AnalyticsRepository = (*PgxAnalyticsRepository)(nil)

func (r *PgxAnalyticsRepository) AssetTypeDistribution(ctx context.Context, hrEmail string) ([]domain.AssetTypeCount, error) {
	query := `
		SELECT product_type, COUNT(*)::int AS count
		FROM assets
		WHERE hr_email = $1
		GROUP BY product_type
		ORDER BY count DESC;
	`
	rows, err := r.Pool.Query(ctx, query, hrEmail)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query asset type distribution", err)
	}
	defer rows.Close()
	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AssetTypeCount])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect asset type rows", err)
	}
	return counts, nil
}

func (r *PgxAnalyticsRepository) TopRequestedAssets(ctx context.Context, hrEmail string, limit int) ([]domain.RequestedAssetCount, error) {
	if limit <= 0 {
		limit = 5
	}
	query := `
		SELECT asset_name, COUNT(*)::int AS count
		FROM requests
		WHERE hr_email = $1 AND status IN ('approved', 'returned')
		GROUP BY asset_name
		ORDER BY count DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, hrEmail, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query top requested assets", err)
	}
	defer rows.Close()
	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.RequestedAssetCount])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect requested asset rows", err)
	}
	return counts, nil
}

func (r *PgxAnalyticsRepository) TenantStats(ctx context.Context, hrEmail string) (*domain.TenantStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM assets WHERE hr_email = $1)::int AS total_assets,
			(SELECT COUNT(*) FROM requests WHERE hr_email = $1)::int AS total_requests,
			(SELECT COUNT(*) FROM requests WHERE hr_email = $1 AND status = 'pending')::int AS pending_requests,
			(SELECT COUNT(*) FROM requests WHERE hr_email = $1 AND status IN ('approved', 'returned'))::int AS approved_requests;
	`
	var stats domain.TenantStats
	err := r.Pool.QueryRow(ctx, query, hrEmail).Scan(
		&stats.TotalAssets,
		&stats.TotalRequests,
		&stats.PendingRequests,
		&stats.ApprovedRequests,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tenant stats", err)
	}
	return &stats, nil
}
