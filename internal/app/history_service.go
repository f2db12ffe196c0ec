package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/NiyaziPro/taskmeister/internal/ports/primary"
	"github.com/NiyaziPro/taskmeister/internal/ports/secondary"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{"date", "worker", "house", "quantity", "comment", "status", "sent_at"}

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	assignmentRepo secondary.AssignmentRepository
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(assignmentRepo secondary.AssignmentRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{assignmentRepo: assignmentRepo}
}

// List returns assignments matching all supplied filters, assignment
// date descending, ties in creation order.
func (s *HistoryServiceImpl) List(ctx context.Context, filters primary.HistoryFilters) ([]*primary.Assignment, error) {
	records, err := s.assignmentRepo.List(ctx, secondary.AssignmentFilters{
		WorkerID:        filters.WorkerID,
		HouseID:         filters.HouseID,
		DateFrom:        filters.DateFrom,
		DateTo:          filters.DateTo,
		CommentContains: filters.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	assignments := make([]*primary.Assignment, len(records))
	for i, r := range records {
		assignments[i] = recordToAssignment(r)
	}
	return assignments, nil
}

// ExportCSV writes matching assignments to w as UTF-8 CSV with a stable
// header row, one assignment per row, and returns the number of data
// rows written. Quoting and delimiter escaping follow RFC 4180.
func (s *HistoryServiceImpl) ExportCSV(ctx context.Context, filters primary.HistoryFilters, w io.Writer) (int, error) {
	assignments, err := s.List(ctx, filters)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, a := range assignments {
		row := []string{
			a.Date,
			a.WorkerName,
			a.HouseName,
			fmt.Sprintf("%d", a.Quantity),
			a.Comment,
			a.Status,
			a.SentAt,
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return len(assignments), nil
}

// Ensure HistoryServiceImpl implements the interface.
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
