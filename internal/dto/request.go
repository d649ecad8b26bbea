package dto

import (
	"time"

	"github.com/assetverse/assetverse_backend/internal/core/domain"
)

// CreateRequestRequest defines data for filing an asset request.
type CreateRequestRequest struct {
	AssetID string `json:"assetID" binding:"required,uuid"`
	Note    string `json:"note" binding:"omitempty,max=500"`
}

// RejectRequestRequest carries the optional rejection reason.
type RejectRequestRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// DirectAssignRequest defines data for assigning an asset without a request.
type DirectAssignRequest struct {
	AssetID       string `json:"assetID" binding:"required,uuid"`
	EmployeeEmail string `json:"employeeEmail" binding:"required,email"`
}

// ListRequestsParams defines query parameters for listing requests.
type ListRequestsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected returned"`
	Search string `form:"search"`
	Page   int    `form:"page,default=1" binding:"omitempty,gt=0"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,gt=0,lte=100"`
}

// RequestResponse defines data returned for an asset request.
type RequestResponse struct {
	RequestID       string     `json:"requestID"`
	AssetID         string     `json:"assetID"`
	AssetName       string     `json:"assetName"`
	AssetType       string     `json:"assetType"`
	RequesterName   string     `json:"requesterName"`
	RequesterEmail  string     `json:"requesterEmail"`
	RequesterPhoto  string     `json:"requesterPhoto,omitempty"`
	CompanyName     string     `json:"companyName"`
	RequestDate     time.Time  `json:"requestDate"`
	ApprovalDate    *time.Time `json:"approvalDate,omitempty"`
	Status          string     `json:"requestStatus"`
	Note            string     `json:"note,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	AssignmentType  string     `json:"assignmentType"`
}

// ToRequestResponse converts domain.AssetRequest to DTO.
func ToRequestResponse(r *domain.AssetRequest) RequestResponse {
	return RequestResponse{
		RequestID:       r.RequestID,
		AssetID:         r.AssetID,
		AssetName:       r.AssetName,
		AssetType:       r.AssetType,
		RequesterName:   r.RequesterName,
		RequesterEmail:  r.RequesterEmail,
		RequesterPhoto:  r.RequesterPhoto,
		CompanyName:     r.CompanyName,
		RequestDate:     r.RequestDate,
		ApprovalDate:    r.ApprovalDate,
		Status:          string(r.Status),
		Note:            r.Note,
		RejectionReason: r.RejectionReason,
		AssignmentType:  string(r.AssignmentType),
	}
}

// ListRequestsResponse wraps a page of requests.
type ListRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// ToListRequestsResponse converts a page of domain.AssetRequest to DTO.
func ToListRequestsResponse(requests []domain.AssetRequest, total int64, page, limit int) ListRequestsResponse {
	list := make([]RequestResponse, len(requests))
	for i, r := range requests {
		list[i] = ToRequestResponse(&r)
	}
	return ListRequestsResponse{Requests: list, Total: total, Page: page, Limit: limit}
}

// AssignedAssetResponse defines data returned for one held asset.
type AssignedAssetResponse struct {
	AssignmentID   string     `json:"assignmentID"`
	AssetID        string     `json:"assetID"`
	AssetName      string     `json:"assetName"`
	AssetImage     string     `json:"assetImage,omitempty"`
	AssetType      string     `json:"assetType"`
	CompanyName    string     `json:"companyName"`
	AssignmentDate time.Time  `json:"assignmentDate"`
	RequestDate    time.Time  `json:"requestDate"`
	ApprovalDate   time.Time  `json:"approvalDate"`
	ReturnDate     *time.Time `json:"returnDate,omitempty"`
	Status         string     `json:"status"`
	AssignmentType string     `json:"assignmentType"`
}

// ToAssignedAssetResponse converts domain.AssignedAssetDetail to DTO.
func ToAssignedAssetResponse(a *domain.AssignedAssetDetail) AssignedAssetResponse {
	return AssignedAssetResponse{
		AssignmentID:   a.AssignmentID,
		AssetID:        a.AssetID,
		AssetName:      a.AssetName,
		AssetImage:     a.AssetImage,
		AssetType:      a.AssetType,
		CompanyName:    a.CompanyName,
		AssignmentDate: a.AssignmentDate,
		RequestDate:    a.RequestDate,
		ApprovalDate:   a.ApprovalDate,
		ReturnDate:     a.ReturnDate,
		Status:         string(a.Status),
		AssignmentType: string(a.AssignmentType),
	}
}

// ListAssignedAssetsResponse wraps a page of held assets.
type ListAssignedAssetsResponse struct {
	Assets []AssignedAssetResponse `json:"assets"`
	Total  int64                   `json:"total"`
	Page   int                     `json:"page"`
	Limit  int                     `json:"limit"`
}

// ToListAssignedAssetsResponse converts a page of assignment details to DTO.
func ToListAssignedAssetsResponse(assets []domain.AssignedAssetDetail, total int64, page, limit int) ListAssignedAssetsResponse {
	list := make([]AssignedAssetResponse, len(assets))
	for i, a := range assets {
		list[i] = ToAssignedAssetResponse(&a)
	}
	return ListAssignedAssetsResponse{Assets: list, Total: total, Page: page, Limit: limit}
}
