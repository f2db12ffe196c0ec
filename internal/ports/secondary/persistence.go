// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// WorkerRepository defines the secondary port for worker persistence.
type WorkerRepository interface {
	// Create persists a new worker.
	Create(ctx context.Context, worker *WorkerRecord) error

	// GetByID retrieves a worker by its ID.
	GetByID(ctx context.Context, id string) (*WorkerRecord, error)

	// List retrieves all workers ordered by name.
	List(ctx context.Context) ([]*WorkerRecord, error)

	// Update updates an existing worker.
	Update(ctx context.Context, worker *WorkerRecord) error

	// Delete removes a worker from persistence.
	Delete(ctx context.Context, id string) error

	// CountAssignments returns the number of assignments referencing a worker.
	CountAssignments(ctx context.Context, workerID string) (int, error)

	// GetNextID returns the next available worker ID.
	GetNextID(ctx context.Context) (string, error)
}

// WorkerRecord represents a worker as stored in persistence.
type WorkerRecord struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt string
	UpdatedAt string
}

// HouseRepository defines the secondary port for house persistence.
type HouseRepository interface {
	// Create persists a new house.
	Create(ctx context.Context, house *HouseRecord) error

	// GetByID retrieves a house by its ID.
	GetByID(ctx context.Context, id string) (*HouseRecord, error)

	// List retrieves all houses ordered by name.
	List(ctx context.Context) ([]*HouseRecord, error)

	// Update updates an existing house.
	Update(ctx context.Context, house *HouseRecord) error

	// Delete removes a house from persistence.
	Delete(ctx context.Context, id string) error

	// CountAssignments returns the number of assignments referencing a house.
	CountAssignments(ctx context.Context, houseID string) (int, error)

	// GetNextID returns the next available house ID.
	GetNextID(ctx context.Context) (string, error)
}

// HouseRecord represents a house as stored in persistence.
type HouseRecord struct {
	ID        string
	Name      string
	Comment   string
	CreatedAt string
	UpdatedAt string
}

// AssignmentRepository defines the secondary port for assignment persistence.
// Assignments are append-only history: rows are inserted and their status
// updated, never deleted.
type AssignmentRepository interface {
	// Create persists a new assignment.
	Create(ctx context.Context, assignment *AssignmentRecord) error

	// GetByID retrieves an assignment by its ID, with worker and house
	// names resolved.
	GetByID(ctx context.Context, id string) (*AssignmentRecord, error)

	// List retrieves assignments matching the given filters, ordered by
	// assignment date descending with ties broken by creation order.
	List(ctx context.Context, filters AssignmentFilters) ([]*AssignmentRecord, error)

	// MarkSent transitions an assignment to sent and records the send
	// timestamp.
	MarkSent(ctx context.Context, id string) error

	// MarkFailed transitions an assignment to failed and records the
	// failure reason.
	MarkFailed(ctx context.Context, id, reason string) error

	// AssignedHouseIDs returns the IDs of houses holding a non-failed
	// assignment for the given date.
	AssignedHouseIDs(ctx context.Context, date string) ([]string, error)

	// HouseTaken reports whether a non-failed assignment other than
	// excludeID holds the (house, date) slot. Pass excludeID "" to
	// consider every assignment.
	HouseTaken(ctx context.Context, houseID, date, excludeID string) (bool, error)

	// GetNextID returns the next available assignment ID.
	GetNextID(ctx context.Context) (string, error)
}

// AssignmentRecord represents an assignment as stored in persistence.
// WorkerName and HouseName are resolved by joins on read paths.
type AssignmentRecord struct {
	ID         string
	WorkerID   string
	WorkerName string
	HouseID    string
	HouseName  string
	Date       string // YYYY-MM-DD
	Quantity   int
	Comment    string
	Status     string // pending, sent, failed
	SendError  string
	CreatedAt  string
	SentAt     string // empty until sent
}

// AssignmentFilters contains filter options for querying assignments.
// All set filters apply conjunctively.
type AssignmentFilters struct {
	WorkerID        string
	HouseID         string
	DateFrom        string // inclusive, YYYY-MM-DD
	DateTo          string // inclusive, YYYY-MM-DD
	CommentContains string // case-insensitive substring over the comment
}
