// Package app contains the service implementations behind the primary
// ports. Services hold the business rules; persistence and transport are
// injected through the secondary ports.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/NiyaziPro/taskmeister/internal/core/domain"
	"github.com/NiyaziPro/taskmeister/internal/ports/primary"
	"github.com/NiyaziPro/taskmeister/internal/ports/secondary"
)

// WorkerServiceImpl implements the WorkerService interface.
type WorkerServiceImpl struct {
	workerRepo secondary.WorkerRepository
}

// NewWorkerService creates a new WorkerService with injected dependencies.
func NewWorkerService(workerRepo secondary.WorkerRepository) *WorkerServiceImpl {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

// CreateWorker creates a new worker.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req primary.CreateWorkerRequest) (*primary.Worker, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" {
		return nil, fmt.Errorf("%w: worker name is required", domain.ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: worker email is required", domain.ErrValidation)
	}

	nextID, err := s.workerRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate worker ID: %w", err)
	}

	record := &secondary.WorkerRecord{
		ID:    nextID,
		Name:  name,
		Email: email,
		Phone: strings.TrimSpace(req.Phone),
	}

	if err := s.workerRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	created, err := s.workerRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created worker: %w", err)
	}

	return recordToWorker(created), nil
}

// GetWorker retrieves a worker by ID.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, workerID string) (*primary.Worker, error) {
	record, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return recordToWorker(record), nil
}

// ListWorkers lists all workers ordered by name.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context) ([]*primary.Worker, error) {
	records, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	workers := make([]*primary.Worker, len(records))
	for i, r := range records {
		workers[i] = recordToWorker(r)
	}
	return workers, nil
}

// UpdateWorker updates a worker's fields. Empty request fields keep the
// stored value.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req primary.UpdateWorkerRequest) error {
	record, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		record.Name = name
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		record.Email = email
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		record.Phone = phone
	}

	if err := s.workerRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}

	return nil
}

// DeleteWorker deletes a worker. Workers referenced by assignment
// history cannot be deleted; history is permanent.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, workerID string) error {
	if _, err := s.workerRepo.GetByID(ctx, workerID); err != nil {
		return err
	}

	count, err := s.workerRepo.CountAssignments(ctx, workerID)
	if err != nil {
		return fmt.Errorf("failed to check worker references: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: worker %s has %d assignment(s)", domain.ErrConstraint, workerID, count)
	}

	if err := s.workerRepo.Delete(ctx, workerID); err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	return nil
}

func recordToWorker(r *secondary.WorkerRecord) *primary.Worker {
	return &primary.Worker{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure WorkerServiceImpl implements the interface.
var _ primary.WorkerService = (*WorkerServiceImpl)(nil)
