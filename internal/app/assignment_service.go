package app

import (
	"context"
	"fmt"

	"github.com/NiyaziPro/taskmeister/internal/core/assignment"
	"github.com/NiyaziPro/taskmeister/internal/core/domain"
	"github.com/NiyaziPro/taskmeister/internal/core/notification"
	"github.com/NiyaziPro/taskmeister/internal/ports/primary"
	"github.com/NiyaziPro/taskmeister/internal/ports/secondary"
)

// AssignmentServiceImpl implements the AssignmentService interface: the
// rules engine for eligibility, creation, and notification dispatch.
type AssignmentServiceImpl struct {
	assignmentRepo secondary.AssignmentRepository
	workerRepo     secondary.WorkerRepository
	houseRepo      secondary.HouseRepository
	mailer         secondary.Mailer
}

// NewAssignmentService creates a new AssignmentService with injected dependencies.
func NewAssignmentService(
	assignmentRepo secondary.AssignmentRepository,
	workerRepo secondary.WorkerRepository,
	houseRepo secondary.HouseRepository,
	mailer secondary.Mailer,
) *AssignmentServiceImpl {
	return &AssignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		workerRepo:     workerRepo,
		houseRepo:      houseRepo,
		mailer:         mailer,
	}
}

// ListEligibleHouses returns all houses minus those holding a non-failed
// assignment for the given date.
func (s *AssignmentServiceImpl) ListEligibleHouses(ctx context.Context, date string) ([]*primary.House, error) {
	if r := assignment.ValidateDate(date); !r.Allowed {
		return nil, r.Error()
	}

	houses, err := s.houseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}

	assignedIDs, err := s.assignmentRepo.AssignedHouseIDs(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get assigned houses: %w", err)
	}

	taken := make(map[string]bool, len(assignedIDs))
	for _, id := range assignedIDs {
		taken[id] = true
	}

	var eligible []*primary.House
	for _, h := range houses {
		if !taken[h.ID] {
			eligible = append(eligible, recordToHouse(h))
		}
	}
	return eligible, nil
}

// CreateAssignment validates and records a pending assignment.
func (s *AssignmentServiceImpl) CreateAssignment(ctx context.Context, req primary.CreateAssignmentRequest) (*primary.CreateAssignmentResponse, error) {
	resp, err := s.CreateAssignments(ctx, primary.CreateAssignmentsRequest{
		WorkerID: req.WorkerID,
		HouseIDs: []string{req.HouseID},
		Date:     req.Date,
		Quantity: req.Quantity,
		Comment:  req.Comment,
	})
	if err != nil {
		return nil, err
	}

	created := resp.Assignments[0]
	return &primary.CreateAssignmentResponse{
		AssignmentID: created.ID,
		Assignment:   created,
	}, nil
}

// CreateAssignments books one worker into several houses for the same
// date. The (house, date) availability is re-checked here at commit
// time: a stale eligible-house list from the caller must never produce
// a double booking. Every house passes its guards before the first row
// is inserted, so a rejected house leaves no partial booking behind.
func (s *AssignmentServiceImpl) CreateAssignments(ctx context.Context, req primary.CreateAssignmentsRequest) (*primary.CreateAssignmentsResponse, error) {
	if len(req.HouseIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one house is required", domain.ErrValidation)
	}

	workerExists := false
	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err == nil {
		workerExists = true
	}

	seen := make(map[string]bool, len(req.HouseIDs))
	for _, houseID := range req.HouseIDs {
		if seen[houseID] {
			return nil, fmt.Errorf("%w: house %s listed more than once", domain.ErrValidation, houseID)
		}
		seen[houseID] = true

		guardCtx := assignment.CreateContext{
			WorkerID:     req.WorkerID,
			WorkerExists: workerExists,
			HouseID:      houseID,
			Date:         req.Date,
			Quantity:     req.Quantity,
		}
		if _, err := s.houseRepo.GetByID(ctx, houseID); err == nil {
			guardCtx.HouseExists = true
		}
		if guardCtx.WorkerExists && guardCtx.HouseExists {
			taken, err := s.assignmentRepo.HouseTaken(ctx, houseID, req.Date, "")
			if err != nil {
				return nil, fmt.Errorf("failed to check house availability: %w", err)
			}
			guardCtx.HouseTaken = taken
		}
		if result := assignment.CanCreateAssignment(guardCtx); !result.Allowed {
			return nil, result.Error()
		}
	}

	resp := &primary.CreateAssignmentsResponse{
		Assignments: make([]*primary.Assignment, 0, len(req.HouseIDs)),
	}
	for _, houseID := range req.HouseIDs {
		nextID, err := s.assignmentRepo.GetNextID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to generate assignment ID: %w", err)
		}

		record := &secondary.AssignmentRecord{
			ID:       nextID,
			WorkerID: req.WorkerID,
			HouseID:  houseID,
			Date:     req.Date,
			Quantity: req.Quantity,
			Comment:  req.Comment,
			Status:   assignment.StatusPending,
		}
		if err := s.assignmentRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to create assignment: %w", err)
		}

		created, err := s.assignmentRepo.GetByID(ctx, nextID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch created assignment: %w", err)
		}
		resp.Assignments = append(resp.Assignments, recordToAssignment(created))
	}

	return resp, nil
}

// SendAssignment dispatches the notification email for an assignment.
// Success transitions it to sent with a timestamp; a transport failure
// transitions it to failed with the reason recorded, and the error is
// returned so the caller can surface it. The record itself survives
// either way.
func (s *AssignmentServiceImpl) SendAssignment(ctx context.Context, assignmentID string) (*primary.Assignment, error) {
	sent, err := s.SendAssignments(ctx, []string{assignmentID})
	if len(sent) == 1 {
		return sent[0], err
	}
	return nil, err
}

// SendAssignments delivers one email covering several assignments of
// the same worker and date, listing every house. Success marks each
// assignment sent; a transport failure marks each failed and returns
// the updated records alongside the error.
//
// A failed assignment frees its (house, date) slot, so before resending
// one the slot is re-checked against every other non-failed assignment:
// if another booking claimed it in the meantime, the resend is rejected
// rather than delivered into a double booking.
func (s *AssignmentServiceImpl) SendAssignments(ctx context.Context, assignmentIDs []string) ([]*primary.Assignment, error) {
	if len(assignmentIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one assignment is required", domain.ErrValidation)
	}

	records := make([]*secondary.AssignmentRecord, 0, len(assignmentIDs))
	for _, id := range assignmentIDs {
		record, err := s.assignmentRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		slotRetaken := false
		if record.Status == assignment.StatusFailed {
			taken, err := s.assignmentRepo.HouseTaken(ctx, record.HouseID, record.Date, record.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check house availability: %w", err)
			}
			slotRetaken = taken
		}

		if result := assignment.CanSend(record.ID, record.Status, slotRetaken); !result.Allowed {
			return nil, result.Error()
		}
		records = append(records, record)
	}

	first := records[0]
	for _, r := range records[1:] {
		if r.WorkerID != first.WorkerID || r.Date != first.Date {
			return nil, fmt.Errorf("%w: assignments in one notification must share a worker and date", domain.ErrValidation)
		}
	}

	worker, err := s.workerRepo.GetByID(ctx, first.WorkerID)
	if err != nil {
		return nil, err
	}

	items := make([]notification.Item, len(records))
	for i, r := range records {
		items[i] = notification.Item{HouseName: r.HouseName, Quantity: r.Quantity, Comment: r.Comment}
	}

	msg := secondary.Message{
		To:      worker.Email,
		ToName:  worker.Name,
		Subject: notification.Subject(first.Date),
		Body:    notification.Body(worker.Name, first.Date, items),
	}

	if sendErr := s.mailer.Send(ctx, msg); sendErr != nil {
		updated := make([]*primary.Assignment, 0, len(records))
		for _, r := range records {
			if markErr := s.assignmentRepo.MarkFailed(ctx, r.ID, sendErr.Error()); markErr != nil {
				return nil, fmt.Errorf("failed to record send failure: %w", markErr)
			}
			u, getErr := s.assignmentRepo.GetByID(ctx, r.ID)
			if getErr != nil {
				return nil, getErr
			}
			updated = append(updated, recordToAssignment(u))
		}
		return updated, sendErr
	}

	updated := make([]*primary.Assignment, 0, len(records))
	for _, r := range records {
		if err := s.assignmentRepo.MarkSent(ctx, r.ID); err != nil {
			return nil, fmt.Errorf("failed to record send success: %w", err)
		}
		u, err := s.assignmentRepo.GetByID(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		updated = append(updated, recordToAssignment(u))
	}
	return updated, nil
}

// ResendAssignment is the manual retry path. It updates the existing
// record in place; no second history row is created.
func (s *AssignmentServiceImpl) ResendAssignment(ctx context.Context, assignmentID string) (*primary.Assignment, error) {
	return s.SendAssignment(ctx, assignmentID)
}

// GetAssignment retrieves an assignment by ID.
func (s *AssignmentServiceImpl) GetAssignment(ctx context.Context, assignmentID string) (*primary.Assignment, error) {
	record, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	return recordToAssignment(record), nil
}

func recordToAssignment(r *secondary.AssignmentRecord) *primary.Assignment {
	return &primary.Assignment{
		ID:         r.ID,
		WorkerID:   r.WorkerID,
		WorkerName: r.WorkerName,
		HouseID:    r.HouseID,
		HouseName:  r.HouseName,
		Date:       r.Date,
		Quantity:   r.Quantity,
		Comment:    r.Comment,
		Status:     r.Status,
		SendError:  r.SendError,
		CreatedAt:  r.CreatedAt,
		SentAt:     r.SentAt,
	}
}

// Ensure AssignmentServiceImpl implements the interface.
var _ primary.AssignmentService = (*AssignmentServiceImpl)(nil)
