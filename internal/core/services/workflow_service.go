package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/assetverse/assetverse_backend/internal/apperrors"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portsrepo "github.com/assetverse/assetverse_backend/internal/core/ports/repositories"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// workflowService drives the request/approval/assignment state machine.
type workflowService struct {
	BaseService
	workflowRepo    portsrepo.WorkflowRepositoryFacade
	assetRepo       portsrepo.AssetReader
	affiliationRepo portsrepo.AffiliationReader
	userRepo        portsrepo.UserReader
}

// NewWorkflowService creates a new workflow service.
func NewWorkflowService(
	workflowRepo portsrepo.WorkflowRepositoryFacade,
	assetRepo portsrepo.AssetReader,
	affiliationRepo portsrepo.AffiliationReader,
	userRepo portsrepo.UserReader,
) portssvc.WorkflowSvcFacade {
	return &workflowService{
		workflowRepo:    workflowRepo,
		assetRepo:       assetRepo,
		affiliationRepo: affiliationRepo,
		userRepo:        userRepo,
	}
}

// Ensure workflowService implements the portssvc.WorkflowSvcFacade interface
var _ portssvc.WorkflowSvcFacade = (*workflowService)(nil)

func (s *workflowService) ListTenantRequests(ctx context.Context, hrEmail string, filters portsrepo.RequestListFilters) ([]domain.AssetRequest, int64, error) {
	return s.workflowRepo.ListRequestsByHR(ctx, hrEmail, filters)
}

func (s *workflowService) ListMyRequests(ctx context.Context, employeeEmail string, filters portsrepo.RequestListFilters) ([]domain.AssetRequest, int64, error) {
	return s.workflowRepo.ListRequestsByEmployee(ctx, employeeEmail, filters)
}

func (s *workflowService) ListMyAssets(ctx context.Context, employeeEmail string, filters portsrepo.AssetListFilters) ([]domain.AssignedAssetDetail, int64, error) {
	return s.workflowRepo.ListAssignmentsByEmployee(ctx, employeeEmail, filters)
}

// CreateRequest files a pending request. Availability is checked here so a
// depleted asset is rejected up front, but the unit is only consumed at
// approval time; the approval transaction re-checks atomically.
func (s *workflowService) CreateRequest(ctx context.Context, requester *domain.User, assetID, note string) (*domain.AssetRequest, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.AvailableQuantity < 1 {
		return nil, apperrors.NewUnavailableError("asset " + asset.ProductName + " has no available units")
	}

	request := domain.AssetRequest{
		RequestID:      uuid.NewString(),
		AssetID:        asset.AssetID,
		AssetName:      asset.ProductName,
		AssetType:      asset.ProductType,
		RequesterName:  requester.Name,
		RequesterEmail: requester.Email,
		RequesterPhoto: requester.ProfileImage,
		HREmail:        asset.HREmail,
		CompanyName:    asset.CompanyName,
		RequestDate:    time.Now(),
		Status:         domain.RequestPending,
		Note:           note,
		AssignmentType: domain.AssignmentViaRequest,
	}

	if err := s.workflowRepo.SaveRequest(ctx, request); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Asset request filed",
		slog.String("request_id", request.RequestID),
		slog.String("asset_id", asset.AssetID),
	)
	return &request, nil
}

// resolveAffiliation decides whether an approval needs to create the
// employee's membership. It returns nil when the employee is already
// affiliated with this tenant, and an error when they belong elsewhere.
func (s *workflowService) resolveAffiliation(ctx context.Context, approver *domain.User, employeeEmail, employeeName string) (*domain.Affiliation, error) {
	existing, err := s.affiliationRepo.FindActiveAffiliationByEmployee(ctx, employeeEmail)
	if err == nil {
		if existing.HREmail != approver.Email {
			return nil, apperrors.NewConflictError("employee is already affiliated with another company")
		}
		return nil, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check affiliation: %w", err)
	}

	return &domain.Affiliation{
		AffiliationID:   uuid.NewString(),
		EmployeeEmail:   employeeEmail,
		EmployeeName:    employeeName,
		HREmail:         approver.Email,
		CompanyName:     approver.CompanyName,
		CompanyLogo:     approver.CompanyLogo,
		AffiliationDate: time.Now(),
		Status:          domain.AffiliationActive,
	}, nil
}

func (s *workflowService) ApproveRequest(ctx context.Context, requestID string, approver *domain.User) error {
	request, err := s.workflowRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.HREmail != approver.Email {
		return apperrors.NewNotFoundError("request " + requestID + " not found")
	}
	if request.Status != domain.RequestPending {
		return apperrors.NewLimitReachedError("request is already " + string(request.Status))
	}

	newAffiliation, err := s.resolveAffiliation(ctx, approver, request.RequesterEmail, request.RequesterName)
	if err != nil {
		return err
	}

	now := time.Now()
	assignment := domain.AssignedAsset{
		AssignmentID:   uuid.NewString(),
		RequestID:      request.RequestID,
		AssetID:        request.AssetID,
		AssetName:      request.AssetName,
		AssetType:      request.AssetType,
		EmployeeEmail:  request.RequesterEmail,
		EmployeeName:   request.RequesterName,
		HREmail:        approver.Email,
		CompanyName:    approver.CompanyName,
		AssignmentDate: now,
		Status:         domain.AssignmentAssigned,
		AssignmentType: domain.AssignmentViaRequest,
		AssignedBy:     approver.UserID,
	}
	if asset, assetErr := s.assetRepo.FindAssetByID(ctx, request.AssetID); assetErr == nil {
		assignment.AssetImage = asset.ProductImage
	}

	if err := s.workflowRepo.ApproveRequest(ctx, requestID, approver.Email, approver.UserID, now, newAffiliation, assignment); err != nil {
		return err
	}

	s.LogInfo(ctx, "Request approved",
		slog.String("request_id", requestID),
		slog.String("assignment_id", assignment.AssignmentID),
		slog.Bool("new_affiliation", newAffiliation != nil),
	)
	return nil
}

func (s *workflowService) RejectRequest(ctx context.Context, requestID string, approver *domain.User, reason string) error {
	if err := s.workflowRepo.RejectRequest(ctx, requestID, approver.Email, approver.UserID, reason, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Request rejected", slog.String("request_id", requestID))
	return nil
}

// DirectAssign hands a unit straight to an already-affiliated employee. A
// pre-approved request record is written alongside the assignment so the
// audit trail stays uniform with the request flow.
func (s *workflowService) DirectAssign(ctx context.Context, assigner *domain.User, assetID, employeeEmail string) (*domain.AssignedAsset, error) {
	affiliation, err := s.affiliationRepo.FindActiveAffiliationByEmployee(ctx, employeeEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("employee " + employeeEmail + " is not affiliated with any company")
		}
		return nil, err
	}
	if affiliation.HREmail != assigner.Email {
		return nil, apperrors.NewNotFoundError("employee " + employeeEmail + " is not affiliated with your company")
	}

	employee, err := s.userRepo.FindUserByEmail(ctx, employeeEmail)
	if err != nil {
		return nil, err
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.HREmail != assigner.Email {
		return nil, apperrors.NewNotFoundError("asset " + assetID + " not found")
	}
	if asset.AvailableQuantity < 1 {
		return nil, apperrors.NewUnavailableError("asset " + asset.ProductName + " has no available units")
	}

	now := time.Now()
	request := domain.AssetRequest{
		RequestID:      uuid.NewString(),
		AssetID:        asset.AssetID,
		AssetName:      asset.ProductName,
		AssetType:      asset.ProductType,
		RequesterName:  employee.Name,
		RequesterEmail: employee.Email,
		RequesterPhoto: employee.ProfileImage,
		HREmail:        assigner.Email,
		CompanyName:    assigner.CompanyName,
		RequestDate:    now,
		ApprovalDate:   &now,
		Status:         domain.RequestApproved,
		ProcessedBy:    assigner.UserID,
		AssignmentType: domain.AssignmentDirect,
	}
	assignment := domain.AssignedAsset{
		AssignmentID:   uuid.NewString(),
		RequestID:      request.RequestID,
		AssetID:        asset.AssetID,
		AssetName:      asset.ProductName,
		AssetImage:     asset.ProductImage,
		AssetType:      asset.ProductType,
		EmployeeEmail:  employee.Email,
		EmployeeName:   employee.Name,
		HREmail:        assigner.Email,
		CompanyName:    assigner.CompanyName,
		AssignmentDate: now,
		Status:         domain.AssignmentAssigned,
		AssignmentType: domain.AssignmentDirect,
		AssignedBy:     assigner.UserID,
	}

	if err := s.workflowRepo.DirectAssign(ctx, request, assignment, nil); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Asset directly assigned",
		slog.String("assignment_id", assignment.AssignmentID),
		slog.String("asset_id", asset.AssetID),
		slog.String("employee_email", employee.Email),
	)
	return &assignment, nil
}

func (s *workflowService) ReturnAsset(ctx context.Context, assignmentID, employeeEmail string) error {
	if err := s.workflowRepo.ReturnAssignment(ctx, assignmentID, employeeEmail, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Asset returned", slog.String("assignment_id", assignmentID))
	return nil
}
