// Package primary defines the primary ports (driving interfaces) for the
// application. The CLI surface depends only on these contracts.
package primary

import "context"

// WorkerService defines the primary port for worker operations.
type WorkerService interface {
	// CreateWorker creates a new worker.
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (*Worker, error)

	// GetWorker retrieves a worker by ID.
	GetWorker(ctx context.Context, workerID string) (*Worker, error)

	// ListWorkers lists all workers ordered by name.
	ListWorkers(ctx context.Context) ([]*Worker, error)

	// UpdateWorker updates a worker's fields.
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) error

	// DeleteWorker deletes a worker. Fails when assignment history
	// references the worker.
	DeleteWorker(ctx context.Context, workerID string) error
}

// Worker is a worker as seen by callers of the primary ports.
type Worker struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt string
}

// CreateWorkerRequest contains parameters for creating a worker.
type CreateWorkerRequest struct {
	Name  string
	Email string
	Phone string
}

// UpdateWorkerRequest contains parameters for updating a worker.
// Empty fields are left unchanged.
type UpdateWorkerRequest struct {
	WorkerID string
	Name     string
	Email    string
	Phone    string
}
