package primary

import "context"

// AssignmentService defines the primary port for the assignment rules
// engine: eligibility, creation, and notification dispatch.
type AssignmentService interface {
	// ListEligibleHouses returns the houses with no non-failed
	// assignment for the given date.
	ListEligibleHouses(ctx context.Context, date string) ([]*House, error)

	// CreateAssignment validates and records a pending assignment.
	// Eligibility is re-checked at commit time regardless of what the
	// caller listed earlier.
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (*CreateAssignmentResponse, error)

	// CreateAssignments books one worker into several houses for the
	// same date. Every house is checked before any row is inserted; a
	// single taken or unknown house rejects the whole request.
	CreateAssignments(ctx context.Context, req CreateAssignmentsRequest) (*CreateAssignmentsResponse, error)

	// SendAssignment dispatches the notification for an assignment and
	// transitions it to sent or failed.
	SendAssignment(ctx context.Context, assignmentID string) (*Assignment, error)

	// SendAssignments dispatches one combined notification covering
	// several assignments of the same worker and date, listing every
	// house in a single email.
	SendAssignments(ctx context.Context, assignmentIDs []string) ([]*Assignment, error)

	// ResendAssignment re-dispatches the notification for a pending or
	// failed assignment. The existing record is updated in place.
	ResendAssignment(ctx context.Context, assignmentID string) (*Assignment, error)

	// GetAssignment retrieves an assignment by ID.
	GetAssignment(ctx context.Context, assignmentID string) (*Assignment, error)
}

// Assignment is an assignment as seen by callers of the primary ports.
type Assignment struct {
	ID         string
	WorkerID   string
	WorkerName string
	HouseID    string
	HouseName  string
	Date       string
	Quantity   int
	Comment    string
	Status     string
	SendError  string
	CreatedAt  string
	SentAt     string
}

// CreateAssignmentRequest contains parameters for creating an assignment.
type CreateAssignmentRequest struct {
	WorkerID string
	HouseID  string
	Date     string // YYYY-MM-DD
	Quantity int
	Comment  string
}

// CreateAssignmentResponse contains the result of creating an assignment.
type CreateAssignmentResponse struct {
	AssignmentID string
	Assignment   *Assignment
}

// CreateAssignmentsRequest books one worker into several houses for one
// date. Quantity and comment apply to each house.
type CreateAssignmentsRequest struct {
	WorkerID string
	HouseIDs []string
	Date     string // YYYY-MM-DD
	Quantity int
	Comment  string
}

// CreateAssignmentsResponse contains the created assignments, in the
// order the houses were requested.
type CreateAssignmentsResponse struct {
	Assignments []*Assignment
}
