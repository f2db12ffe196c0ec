package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NiyaziPro/taskmeister/internal/core/domain"
	"github.com/NiyaziPro/taskmeister/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockWorkerRepository implements secondary.WorkerRepository for testing.
type mockWorkerRepository struct {
	workers          map[string]*secondary.WorkerRecord
	assignmentCounts map[string]int
	nextID           int
	createErr        error
	deleteErr        error
}

func newMockWorkerRepository() *mockWorkerRepository {
	return &mockWorkerRepository{
		workers:          make(map[string]*secondary.WorkerRecord),
		assignmentCounts: make(map[string]int),
	}
}

func (m *mockWorkerRepository) Create(ctx context.Context, worker *secondary.WorkerRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	clone := *worker
	clone.CreatedAt = time.Now().Format(time.RFC3339)
	m.workers[worker.ID] = &clone
	return nil
}

func (m *mockWorkerRepository) GetByID(ctx context.Context, id string) (*secondary.WorkerRecord, error) {
	if w, ok := m.workers[id]; ok {
		clone := *w
		return &clone, nil
	}
	return nil, fmt.Errorf("worker %s: %w", id, domain.ErrNotFound)
}

func (m *mockWorkerRepository) List(ctx context.Context) ([]*secondary.WorkerRecord, error) {
	var result []*secondary.WorkerRecord
	for _, w := range m.workers {
		clone := *w
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockWorkerRepository) Update(ctx context.Context, worker *secondary.WorkerRecord) error {
	if _, ok := m.workers[worker.ID]; !ok {
		return fmt.Errorf("worker %s: %w", worker.ID, domain.ErrNotFound)
	}
	clone := *worker
	m.workers[worker.ID] = &clone
	return nil
}

func (m *mockWorkerRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.workers[id]; !ok {
		return fmt.Errorf("worker %s: %w", id, domain.ErrNotFound)
	}
	delete(m.workers, id)
	return nil
}

func (m *mockWorkerRepository) CountAssignments(ctx context.Context, workerID string) (int, error) {
	return m.assignmentCounts[workerID], nil
}

func (m *mockWorkerRepository) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("WRK-%03d", m.nextID), nil
}

// mockHouseRepository implements secondary.HouseRepository for testing.
type mockHouseRepository struct {
	houses           map[string]*secondary.HouseRecord
	assignmentCounts map[string]int
	nextID           int
}

func newMockHouseRepository() *mockHouseRepository {
	return &mockHouseRepository{
		houses:           make(map[string]*secondary.HouseRecord),
		assignmentCounts: make(map[string]int),
	}
}

func (m *mockHouseRepository) Create(ctx context.Context, house *secondary.HouseRecord) error {
	clone := *house
	clone.CreatedAt = time.Now().Format(time.RFC3339)
	m.houses[house.ID] = &clone
	return nil
}

func (m *mockHouseRepository) GetByID(ctx context.Context, id string) (*secondary.HouseRecord, error) {
	if h, ok := m.houses[id]; ok {
		clone := *h
		return &clone, nil
	}
	return nil, fmt.Errorf("house %s: %w", id, domain.ErrNotFound)
}

func (m *mockHouseRepository) List(ctx context.Context) ([]*secondary.HouseRecord, error) {
	var result []*secondary.HouseRecord
	for _, h := range m.houses {
		clone := *h
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockHouseRepository) Update(ctx context.Context, house *secondary.HouseRecord) error {
	if _, ok := m.houses[house.ID]; !ok {
		return fmt.Errorf("house %s: %w", house.ID, domain.ErrNotFound)
	}
	clone := *house
	m.houses[house.ID] = &clone
	return nil
}

func (m *mockHouseRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.houses[id]; !ok {
		return fmt.Errorf("house %s: %w", id, domain.ErrNotFound)
	}
	delete(m.houses, id)
	return nil
}

func (m *mockHouseRepository) CountAssignments(ctx context.Context, houseID string) (int, error) {
	return m.assignmentCounts[houseID], nil
}

func (m *mockHouseRepository) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("HSE-%03d", m.nextID), nil
}

// mockAssignmentRepository implements secondary.AssignmentRepository for testing.
type mockAssignmentRepository struct {
	assignments map[string]*secondary.AssignmentRecord
	order       []string // insertion order, stands in for created_at
	nextID      int
	workerNames map[string]string
	houseNames  map[string]string
	createErr   error
}

func newMockAssignmentRepository() *mockAssignmentRepository {
	return &mockAssignmentRepository{
		assignments: make(map[string]*secondary.AssignmentRecord),
		workerNames: make(map[string]string),
		houseNames:  make(map[string]string),
	}
}

func (m *mockAssignmentRepository) resolve(r *secondary.AssignmentRecord) *secondary.AssignmentRecord {
	clone := *r
	if name, ok := m.workerNames[r.WorkerID]; ok {
		clone.WorkerName = name
	}
	if name, ok := m.houseNames[r.HouseID]; ok {
		clone.HouseName = name
	}
	return &clone
}

func (m *mockAssignmentRepository) Create(ctx context.Context, assignment *secondary.AssignmentRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	clone := *assignment
	clone.CreatedAt = time.Now().Format(time.RFC3339)
	m.assignments[assignment.ID] = &clone
	m.order = append(m.order, assignment.ID)
	return nil
}

func (m *mockAssignmentRepository) GetByID(ctx context.Context, id string) (*secondary.AssignmentRecord, error) {
	if a, ok := m.assignments[id]; ok {
		return m.resolve(a), nil
	}
	return nil, fmt.Errorf("assignment %s: %w", id, domain.ErrNotFound)
}

func (m *mockAssignmentRepository) List(ctx context.Context, filters secondary.AssignmentFilters) ([]*secondary.AssignmentRecord, error) {
	var result []*secondary.AssignmentRecord
	for _, id := range m.order {
		a := m.assignments[id]
		if filters.WorkerID != "" && a.WorkerID != filters.WorkerID {
			continue
		}
		if filters.HouseID != "" && a.HouseID != filters.HouseID {
			continue
		}
		if filters.DateFrom != "" && a.Date < filters.DateFrom {
			continue
		}
		if filters.DateTo != "" && a.Date > filters.DateTo {
			continue
		}
		if filters.CommentContains != "" &&
			!strings.Contains(strings.ToLower(a.Comment), strings.ToLower(filters.CommentContains)) {
			continue
		}
		result = append(result, m.resolve(a))
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (m *mockAssignmentRepository) MarkSent(ctx context.Context, id string) error {
	a, ok := m.assignments[id]
	if !ok {
		return fmt.Errorf("assignment %s: %w", id, domain.ErrNotFound)
	}
	a.Status = "sent"
	a.SentAt = time.Now().Format(time.RFC3339)
	a.SendError = ""
	return nil
}

func (m *mockAssignmentRepository) MarkFailed(ctx context.Context, id, reason string) error {
	a, ok := m.assignments[id]
	if !ok {
		return fmt.Errorf("assignment %s: %w", id, domain.ErrNotFound)
	}
	a.Status = "failed"
	a.SendError = reason
	return nil
}

func (m *mockAssignmentRepository) AssignedHouseIDs(ctx context.Context, date string) ([]string, error) {
	var ids []string
	for _, id := range m.order {
		a := m.assignments[id]
		if a.Date == date && a.Status != "failed" {
			ids = append(ids, a.HouseID)
		}
	}
	return ids, nil
}

func (m *mockAssignmentRepository) HouseTaken(ctx context.Context, houseID, date, excludeID string) (bool, error) {
	for _, a := range m.assignments {
		if a.ID == excludeID {
			continue
		}
		if a.HouseID == houseID && a.Date == date && a.Status != "failed" {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAssignmentRepository) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("ASG-%03d", m.nextID), nil
}

// mockMailer implements secondary.Mailer for testing.
type mockMailer struct {
	sendErr error
	sent    []secondary.Message
}

func (m *mockMailer) Send(ctx context.Context, msg secondary.Message) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}
