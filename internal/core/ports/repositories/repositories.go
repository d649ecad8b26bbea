package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	AssetRepo       AssetRepositoryFacade
	WorkflowRepo    WorkflowRepositoryFacade
	AffiliationRepo AffiliationRepositoryFacade
	PaymentRepo     PaymentRepositoryFacade
	AnalyticsRepo   AnalyticsRepository
}
