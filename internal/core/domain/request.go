package domain

import "time"

// RequestStatus is the lifecycle state of an asset request.
// pending -> approved | rejected; approved -> returned.
// rejected and returned are terminal; a new request may follow either.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
	RequestReturned RequestStatus = "returned"
)

// AssignmentType records how an assignment came to be: through the
// employee request flow or directly from HR.
type AssignmentType string

const (
	AssignmentViaRequest AssignmentType = "request"
	AssignmentDirect     AssignmentType = "direct"
)

// AssetRequest is one employee's request for one asset, plus its outcome.
// Asset and requester names are denormalized so listings don't need joins
// after the underlying records change.
type AssetRequest struct {
	RequestID       string         `json:"requestID"`
	AssetID         string         `json:"assetID"`
	AssetName       string         `json:"assetName"`
	AssetType       string         `json:"assetType"`
	RequesterName   string         `json:"requesterName"`
	RequesterEmail  string         `json:"requesterEmail"`
	RequesterPhoto  string         `json:"requesterPhoto,omitempty"`
	HREmail         string         `json:"hrEmail"`
	CompanyName     string         `json:"companyName"`
	RequestDate     time.Time      `json:"requestDate"`
	ApprovalDate    *time.Time     `json:"approvalDate,omitempty"`
	Status          RequestStatus  `json:"requestStatus"`
	Note            string         `json:"note,omitempty"`
	ProcessedBy     string         `json:"processedBy,omitempty"`
	RejectionReason string         `json:"rejectionReason,omitempty"`
	AssignmentType  AssignmentType `json:"assignmentType"`
}
