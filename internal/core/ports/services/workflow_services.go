package services

import (
	"context"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
	"github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
)

// RequestReaderSvc defines read operations for asset requests
type RequestReaderSvc interface {
	// ListTenantRequests retrieves a page of requests targeting a tenant.
	ListTenantRequests(ctx context.Context, hrEmail string, filters repositories.RequestListFilters) ([]domain.AssetRequest, int64, error)

	// ListMyRequests retrieves a page of the employee's own requests.
	ListMyRequests(ctx context.Context, employeeEmail string, filters repositories.RequestListFilters) ([]domain.AssetRequest, int64, error)

	// ListMyAssets retrieves the assets an employee holds or has held.
	ListMyAssets(ctx context.Context, employeeEmail string, filters repositories.AssetListFilters) ([]domain.AssignedAssetDetail, int64, error)
}

// RequestWriterSvc defines the request/assignment lifecycle operations
type RequestWriterSvc interface {
	// CreateRequest files a pending request by the employee. Fails when
	// the asset has no availability or a pending request for it already
	// exists. The request does not reserve the unit; availability is
	// consumed at approval time.
	CreateRequest(ctx context.Context, requester *domain.User, assetID, note string) (*domain.AssetRequest, error)

	// ApproveRequest grants a pending request, assigning one unit to the
	// requester and affiliating them with the tenant if needed.
	ApproveRequest(ctx context.Context, requestID string, approver *domain.User) error

	// RejectRequest declines a pending request with an optional reason.
	RejectRequest(ctx context.Context, requestID string, approver *domain.User, reason string) error

	// DirectAssign hands one unit of an asset straight to an employee who
	// is already affiliated with the tenant, bypassing the request flow.
	DirectAssign(ctx context.Context, assigner *domain.User, assetID, employeeEmail string) (*domain.AssignedAsset, error)

	// ReturnAsset gives back a held unit, restoring availability.
	ReturnAsset(ctx context.Context, assignmentID, employeeEmail string) error
}

// WorkflowSvcFacade combines the request/assignment service interfaces
type WorkflowSvcFacade interface {
	RequestReaderSvc
	RequestWriterSvc
}
