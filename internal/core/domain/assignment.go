package domain

import "time"

// AssignmentStatus is the state of one assigned unit.
type AssignmentStatus string

const (
	AssignmentAssigned AssignmentStatus = "assigned"
	AssignmentReturned AssignmentStatus = "returned"
)

// AssignedAsset records one unit of an asset held by one employee. It
// exists only while an approval (or direct assignment) has consumed one
// unit of the asset's availability; returning it restores that unit.
type AssignedAsset struct {
	AssignmentID   string           `json:"assignmentID"`
	RequestID      string           `json:"requestID"`
	AssetID        string           `json:"assetID"`
	AssetName      string           `json:"assetName"`
	AssetImage     string           `json:"assetImage,omitempty"`
	AssetType      string           `json:"assetType"`
	EmployeeEmail  string           `json:"employeeEmail"`
	EmployeeName   string           `json:"employeeName"`
	HREmail        string           `json:"hrEmail"`
	CompanyName    string           `json:"companyName"`
	AssignmentDate time.Time        `json:"assignmentDate"`
	ReturnDate     *time.Time       `json:"returnDate,omitempty"`
	Status         AssignmentStatus `json:"status"`
	AssignmentType AssignmentType   `json:"assignmentType"`
	AssignedBy     string           `json:"assignedBy,omitempty"`
}

// AssignedAssetDetail is an assignment annotated with the dates of the
// request that produced it, for the employee "my assets" view.
type AssignedAssetDetail struct {
	AssignedAsset
	RequestDate  time.Time `json:"requestDate"`
	ApprovalDate time.Time `json:"approvalDate"`
}
