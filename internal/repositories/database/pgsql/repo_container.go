package pgsql

import (
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	assetRepo := newPgxAssetRepository(dbPool)
	workflowRepo := newPgxWorkflowRepository(dbPool)
	affiliationRepo := newPgxAffiliationRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	analyticsRepo := newPgxAnalyticsRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:        userRepo,
		AssetRepo:       assetRepo,
		WorkflowRepo:    workflowRepo,
		AffiliationRepo: affiliationRepo,
		PaymentRepo:     paymentRepo,
		AnalyticsRepo:   analyticsRepo,
	}
}
