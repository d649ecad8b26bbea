package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for asset inventory data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAssetRepository implements portsrepo.AssetRepositoryFacade
var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

var FULL_ASSET_SELECT_QUERY = `
SELECT
	a.asset_id, a.product_name, a.product_image, a.product_type,
	a.product_quantity, a.available_quantity, a.hr_email, a.company_name,
	a.date_added, a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM assets a
`

// getAssets runs the shared select with the given filter clause.
func (r *PgxAssetRepository) getAssets(ctx context.Context, filterQuery string, args ...any) ([]domain.Asset, error) {
	query := FULL_ASSET_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query assets", err)
	}
	defer rows.Close()
	assets, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Asset])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Asset{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect asset rows", err)
	}
	return assets, nil
}

// assetFilterClause builds the WHERE tail shared by the list and count
// queries, numbering placeholders after whatever args are already bound.
func assetFilterClause(filters portsrepo.AssetListFilters, args *[]any) string {
	var sb strings.Builder
	if filters.Search != "" {
		*args = append(*args, "%"+filters.Search+"%")
		fmt.Fprintf(&sb, " AND a.product_name ILIKE $%d", len(*args))
	}
	if filters.ProductType != "" {
		*args = append(*args, filters.ProductType)
		fmt.Fprintf(&sb, " AND a.product_type = $%d", len(*args))
	}
	if filters.OnlyAvailable {
		sb.WriteString(" AND a.available_quantity > 0")
	}
	if filters.OnlyDepleted {
		sb.WriteString(" AND a.available_quantity = 0")
	}
	return sb.String()
}

func (r *PgxAssetRepository) listAssets(ctx context.Context, where string, args []any, filters portsrepo.AssetListFilters) ([]domain.Asset, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM assets a ` + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count assets", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}
	page := filters.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)
	listClause := fmt.Sprintf("%s ORDER BY a.date_added DESC LIMIT $%d OFFSET $%d", where, len(args)-1, len(args))

	assets, err := r.getAssets(ctx, listClause, args...)
	if err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

func (r *PgxAssetRepository) ListAssetsByHR(ctx context.Context, hrEmail string, filters portsrepo.AssetListFilters) ([]domain.Asset, int64, error) {
	args := []any{hrEmail}
	where := `WHERE a.hr_email = $1` + assetFilterClause(filters, &args)
	return r.listAssets(ctx, where, args, filters)
}

func (r *PgxAssetRepository) ListAllAssets(ctx context.Context, filters portsrepo.AssetListFilters) ([]domain.Asset, int64, error) {
	var args []any
	where := `WHERE TRUE` + assetFilterClause(filters, &args)
	return r.listAssets(ctx, where, args, filters)
}

func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	assets, err := r.getAssets(ctx, `WHERE a.asset_id = $1`, assetID)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, apperrors.NewNotFoundError("asset " + assetID + " not found")
	}
	return &assets[0], nil
}

func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	query := `
		INSERT INTO assets (
			asset_id, product_name, product_image, product_type,
			product_quantity, available_quantity, hr_email, company_name,
			date_added, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		asset.AssetID,
		asset.ProductName,
		asset.ProductImage,
		asset.ProductType,
		asset.ProductQuantity,
		asset.AvailableQuantity,
		asset.HREmail,
		asset.CompanyName,
		asset.DateAdded,
		asset.CreatedAt,
		asset.CreatedBy,
		asset.LastUpdatedAt,
		asset.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save asset "+asset.AssetID, err)
	}
	return nil
}

// UpdateAssetDetails applies the quantity delta to availability in the
// same statement so concurrent assignments can't push availability below
// zero: the guard clause makes the update a no-op instead.
func (r *PgxAssetRepository) UpdateAssetDetails(ctx context.Context, assetID, hrEmail string, asset domain.Asset) error {
	query := `
		UPDATE assets SET
			product_name = $3,
			product_image = $4,
			product_type = $5,
			available_quantity = available_quantity + ($6 - product_quantity),
			product_quantity = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE asset_id = $1 AND hr_email = $2
		  AND available_quantity + ($6 - product_quantity) >= 0;
	`
	tag, err := r.Pool.Exec(ctx, query,
		assetID,
		hrEmail,
		asset.ProductName,
		asset.ProductImage,
		asset.ProductType,
		asset.ProductQuantity,
		asset.LastUpdatedAt,
		asset.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update asset "+assetID, err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish missing asset from a quantity cut below what is
		// currently assigned.
		if _, findErr := r.FindAssetByID(ctx, assetID); findErr != nil {
			return findErr
		}
		return apperrors.NewLimitReachedError("cannot reduce quantity below the number of assigned units")
	}
	return nil
}

func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, assetID, hrEmail string) error {
	query := `DELETE FROM assets WHERE asset_id = $1 AND hr_email = $2;`
	tag, err := r.Pool.Exec(ctx, query, assetID, hrEmail)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete asset "+assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("asset " + assetID + " not found")
	}
	return nil
}
