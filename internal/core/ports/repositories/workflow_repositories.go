package repositories

import (
	"context"
	"time"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// RequestListFilters narrows request listings. Zero values mean "no filter".
type RequestListFilters struct {
	Status string // pending, approved, rejected, returned
	Search string // matches requester name or email
	Page   int
	Limit  int
}

// RequestReader defines read operations for asset requests
type RequestReader interface {
	// FindRequestByID retrieves a request by its ID.
	FindRequestByID(ctx context.Context, requestID string) (*domain.AssetRequest, error)

	// ListRequestsByHR retrieves a page of requests targeting a tenant.
	ListRequestsByHR(ctx context.Context, hrEmail string, filters RequestListFilters) ([]domain.AssetRequest, int64, error)

	// ListRequestsByEmployee retrieves a page of an employee's own requests.
	ListRequestsByEmployee(ctx context.Context, employeeEmail string, filters RequestListFilters) ([]domain.AssetRequest, int64, error)
}

// RequestWriter defines write operations for asset requests
type RequestWriter interface {
	// SaveRequest persists a new pending request. A duplicate error is
	// returned when the employee already has a pending request for the
	// same asset. Request records are never deleted; terminal states are
	// rejected and returned.
	SaveRequest(ctx context.Context, request domain.AssetRequest) error
}

// AssignmentReader defines read operations for assigned assets
type AssignmentReader interface {
	// FindAssignmentByID retrieves an assignment by its ID.
	FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.AssignedAsset, error)

	// ListAssignmentsByEmployee retrieves a page of assets currently or
	// previously held by an employee, newest first.
	ListAssignmentsByEmployee(ctx context.Context, employeeEmail string, filters AssetListFilters) ([]domain.AssignedAssetDetail, int64, error)
}

// WorkflowTransactor defines the multi-row state transitions of the
// request/assignment lifecycle. Each method runs in one transaction.
type WorkflowTransactor interface {
	// ApproveRequest moves a pending request to approved, consumes one
	// unit of the asset's availability, creates the assignment and, when
	// newAffiliation is non-nil, creates the affiliation and consumes one
	// employee slot. Fails with an unavailable error when the asset has
	// no stock and a conflict error when the employee limit is reached.
	ApproveRequest(ctx context.Context, requestID, hrEmail string, processedBy string, approvalDate time.Time, newAffiliation *domain.Affiliation, assignment domain.AssignedAsset) error

	// RejectRequest moves a pending request to rejected.
	RejectRequest(ctx context.Context, requestID, hrEmail, processedBy, reason string, when time.Time) error

	// DirectAssign records a pre-approved request together with its
	// assignment, consuming availability (and an employee slot when
	// newAffiliation is non-nil) like ApproveRequest does.
	DirectAssign(ctx context.Context, request domain.AssetRequest, assignment domain.AssignedAsset, newAffiliation *domain.Affiliation) error

	// ReturnAssignment marks an assignment returned, restores one unit of
	// the asset's availability and moves the originating request to
	// returned. Only the holding employee may return.
	ReturnAssignment(ctx context.Context, assignmentID, employeeEmail string, returnDate time.Time) error
}

// WorkflowRepositoryFacade combines all request/assignment repository interfaces
type WorkflowRepositoryFacade interface {
	RequestReader
	RequestWriter
	AssignmentReader
	WorkflowTransactor
}
