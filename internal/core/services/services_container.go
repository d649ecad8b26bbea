package services

import (
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/assetverse/assetverse_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	container.Asset = NewAssetService(repos.AssetRepo, repos.AffiliationRepo)
	container.Workflow = NewWorkflowService(repos.WorkflowRepo, repos.AssetRepo, repos.AffiliationRepo, repos.UserRepo)
	container.Affiliation = NewAffiliationService(repos.AffiliationRepo, repos.UserRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, NewStripeGateway(cfg.StripeSecretKey))
	container.Analytics = NewAnalyticsService(repos.AnalyticsRepo)

	return container
}
