package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/NiyaziPro/taskmeister/internal/adapters/sqlite"
	"github.com/NiyaziPro/taskmeister/internal/core/domain"
	"github.com/NiyaziPro/taskmeister/internal/ports/secondary"
)

// setupAssignmentTestDB creates the test database with a worker and two houses.
func setupAssignmentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	testDB := setupTestDB(t)
	seedWorker(t, testDB, "WRK-001", "Ayse Demir", "ayse@example.com")
	seedHouse(t, testDB, "HSE-001", "Seaside Villa")
	seedHouse(t, testDB, "HSE-002", "Hilltop Cottage")
	return testDB
}

func TestAssignmentRepository_CreateAndGet(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	assignment := &secondary.AssignmentRecord{
		ID:       "ASG-001",
		WorkerID: "WRK-001",
		HouseID:  "HSE-001",
		Date:     "2026-09-01",
		Quantity: 3,
		Comment:  "bring spare linens",
		Status:   "pending",
	}

	if err := repo.Create(ctx, assignment); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "ASG-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.WorkerName != "Ayse Demir" {
		t.Errorf("expected worker name resolved, got '%s'", retrieved.WorkerName)
	}
	if retrieved.HouseName != "Seaside Villa" {
		t.Errorf("expected house name resolved, got '%s'", retrieved.HouseName)
	}
	if retrieved.Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", retrieved.Quantity)
	}
	if retrieved.Status != "pending" {
		t.Errorf("expected status pending, got '%s'", retrieved.Status)
	}
	if retrieved.SentAt != "" {
		t.Errorf("expected empty sent_at for pending assignment, got '%s'", retrieved.SentAt)
	}
	if retrieved.CreatedAt == "" {
		t.Error("expected created_at to be set")
	}
}

func TestAssignmentRepository_GetByID_NotFound(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)

	_, err := repo.GetByID(context.Background(), "ASG-999")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestAssignmentRepository_List_OrderedByDateDesc(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	seedAssignment(t, db, "ASG-001", "WRK-001", "HSE-001", "2026-09-01", "sent")
	seedAssignment(t, db, "ASG-002", "WRK-001", "HSE-002", "2026-09-03", "pending")
	seedAssignment(t, db, "ASG-003", "WRK-001", "HSE-001", "2026-09-02", "sent")

	assignments, err := repo.List(ctx, secondary.AssignmentFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(assignments) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(assignments))
	}
	if assignments[0].ID != "ASG-002" || assignments[1].ID != "ASG-003" || assignments[2].ID != "ASG-001" {
		t.Errorf("expected date-descending order ASG-002, ASG-003, ASG-001; got %s, %s, %s",
			assignments[0].ID, assignments[1].ID, assignments[2].ID)
	}
}

func TestAssignmentRepository_List_SameDateCreationOrder(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	seedAssignment(t, db, "ASG-001", "WRK-001", "HSE-001", "2026-09-01", "sent")
	seedAssignment(t, db, "ASG-002", "WRK-001", "HSE-002", "2026-09-01", "sent")

	assignments, err := repo.List(ctx, secondary.AssignmentFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(assignments))
	}
	if assignments[0].ID != "ASG-001" || assignments[1].ID != "ASG-002" {
		t.Errorf("expected creation order within a date, got %s, %s",
			assignments[0].ID, assignments[1].ID)
	}
}

func TestAssignmentRepository_List_Filters(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	seedWorker(t, db, "WRK-002", "Mehmet", "mehmet@example.com")
	seedAssignment(t, db, "ASG-001", "WRK-001", "HSE-001", "2026-09-01", "sent")
	seedAssignment(t, db, "ASG-002", "WRK-002", "HSE-002", "2026-09-02", "sent")
	seedAssignment(t, db, "ASG-003", "WRK-001", "HSE-002", "2026-09-05", "pending")

	byWorker, err := repo.List(ctx, secondary.AssignmentFilters{WorkerID: "WRK-002"})
	if err != nil {
		t.Fatalf("List by worker failed: %v", err)
	}
	if len(byWorker) != 1 || byWorker[0].ID != "ASG-002" {
		t.Errorf("expected only ASG-002 for WRK-002, got %d rows", len(byWorker))
	}

	byHouse, err := repo.List(ctx, secondary.AssignmentFilters{HouseID: "HSE-002"})
	if err != nil {
		t.Fatalf("List by house failed: %v", err)
	}
	if len(byHouse) != 2 {
		t.Errorf("expected 2 rows for HSE-002, got %d", len(byHouse))
	}

	byRange, err := repo.List(ctx, secondary.AssignmentFilters{
		DateFrom: "2026-09-02",
		DateTo:   "2026-09-04",
	})
	if err != nil {
		t.Fatalf("List by range failed: %v", err)
	}
	if len(byRange) != 1 || byRange[0].ID != "ASG-002" {
		t.Errorf("expected only ASG-002 in range, got %d rows", len(byRange))
	}

	combined, err := repo.List(ctx, secondary.AssignmentFilters{
		WorkerID: "WRK-001",
		HouseID:  "HSE-002",
	})
	if err != nil {
		t.Fatalf("List combined failed: %v", err)
	}
	if len(combined) != 1 || combined[0].ID != "ASG-003" {
		t.Errorf("expected only ASG-003 for combined filter, got %d rows", len(combined))
	}
}

func TestAssignmentRepository_List_CommentFilterCaseInsensitive(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	_, err := db.Exec(
		"INSERT INTO assignments (id, worker_id, house_id, assignment_date, quantity, comment, status) VALUES (?, ?, ?, ?, 1, ?, 'sent')",
		"ASG-001", "WRK-001", "HSE-001", "2026-09-01", "Roof Leak reported",
	)
	if err != nil {
		t.Fatalf("failed to seed assignment with comment: %v", err)
	}
	seedAssignment(t, db, "ASG-002", "WRK-001", "HSE-002", "2026-09-01", "sent")

	matches, err := repo.List(ctx, secondary.AssignmentFilters{CommentContains: "leak"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "ASG-001" {
		t.Fatalf("expected 'leak' to match only ASG-001, got %d rows", len(matches))
	}

	matches, err = repo.List(ctx, secondary.AssignmentFilters{CommentContains: "ROOF"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("expected uppercase filter to match, got %d rows", len(matches))
	}

	matches, err = repo.List(ctx, secondary.AssignmentFilters{CommentContains: "plumbing"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches for 'plumbing', got %d rows", len(matches))
	}
}

func TestAssignmentRepository_List_CommentFilterLiteralWildcards(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	seedComments := []struct{ id, comment string }{
		{"ASG-001", "deposit 100% paid"},
		{"ASG-002", "deposit 100 euro paid"},
		{"ASG-003", "unit_b keys in lockbox"},
		{"ASG-004", "unit b keys in lockbox"},
	}
	for i, s := range seedComments {
		_, err := db.Exec(
			"INSERT INTO assignments (id, worker_id, house_id, assignment_date, quantity, comment, status) VALUES (?, ?, ?, ?, 1, ?, 'sent')",
			s.id, "WRK-001", "HSE-001", fmt.Sprintf("2026-09-%02d", i+1), s.comment,
		)
		if err != nil {
			t.Fatalf("failed to seed assignment with comment: %v", err)
		}
	}

	// % and _ are literal search characters, not LIKE wildcards.
	matches, err := repo.List(ctx, secondary.AssignmentFilters{CommentContains: "100%"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "ASG-001" {
		t.Fatalf("expected '100%%' to match only ASG-001, got %d rows", len(matches))
	}

	matches, err = repo.List(ctx, secondary.AssignmentFilters{CommentContains: "unit_b"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "ASG-003" {
		t.Fatalf("expected 'unit_b' to match only ASG-003, got %d rows", len(matches))
	}
}

func TestAssignmentRepository_MarkSent(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	seedAssignment(t, db, "ASG-001", "WRK-001", "HSE-001", "2026-09-01", "pending")

	if err := repo.MarkSent(ctx, "ASG-001"); err != nil {
		t.Fatalf("MarkSent failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "ASG-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.Status != "sent" {
		t.Errorf("expected status sent, got '%s'", retrieved.Status)
	}
	if retrieved.SentAt == "" {
		t.Error("expected sent_at to be set")
	}
	if retrieved.SendError != "" {
		t.Errorf("expected send_error cleared, got '%s'", retrieved.SendError)
	}
}

func TestAssignmentRepository_MarkFailed(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	seedAssignment(t, db, "ASG-001", "WRK-001", "HSE-001", "2026-09-01", "pending")

	if err := repo.MarkFailed(ctx, "ASG-001", "smtp timeout"); err != nil {
		t.Fatalf("MarkFailed failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "ASG-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.Status != "failed" {
		t.Errorf("expected status failed, got '%s'", retrieved.Status)
	}
	if retrieved.SendError != "smtp timeout" {
		t.Errorf("expected failure reason recorded, got '%s'", retrieved.SendError)
	}
	if retrieved.SentAt != "" {
		t.Errorf("expected no sent_at on failure, got '%s'", retrieved.SentAt)
	}
}

func TestAssignmentRepository_MarkSent_NotFound(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)

	err := repo.MarkSent(context.Background(), "ASG-999")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestAssignmentRepository_AssignedHouseIDs(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	seedHouse(t, db, "HSE-003", "Garden Flat")
	seedAssignment(t, db, "ASG-001", "WRK-001", "HSE-001", "2026-09-01", "sent")
	seedAssignment(t, db, "ASG-002", "WRK-001", "HSE-002", "2026-09-01", "pending")
	seedAssignment(t, db, "ASG-003", "WRK-001", "HSE-003", "2026-09-01", "failed")
	seedAssignment(t, db, "ASG-004", "WRK-001", "HSE-003", "2026-09-02", "sent")

	ids, err := repo.AssignedHouseIDs(ctx, "2026-09-01")
	if err != nil {
		t.Fatalf("AssignedHouseIDs failed: %v", err)
	}

	taken := make(map[string]bool)
	for _, id := range ids {
		taken[id] = true
	}

	if !taken["HSE-001"] {
		t.Error("expected sent assignment to block HSE-001")
	}
	if !taken["HSE-002"] {
		t.Error("expected pending assignment to block HSE-002")
	}
	if taken["HSE-003"] {
		t.Error("expected failed assignment not to block HSE-003")
	}
}

func TestAssignmentRepository_HouseTaken(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	seedAssignment(t, db, "ASG-001", "WRK-001", "HSE-001", "2026-09-01", "pending")

	taken, err := repo.HouseTaken(ctx, "HSE-001", "2026-09-01", "")
	if err != nil {
		t.Fatalf("HouseTaken failed: %v", err)
	}
	if !taken {
		t.Error("expected HSE-001 to be taken on 2026-09-01")
	}

	taken, err = repo.HouseTaken(ctx, "HSE-001", "2026-09-02", "")
	if err != nil {
		t.Fatalf("HouseTaken failed: %v", err)
	}
	if taken {
		t.Error("expected HSE-001 to be free on 2026-09-02")
	}
}

func TestAssignmentRepository_HouseTaken_ExcludesGivenAssignment(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	seedAssignment(t, db, "ASG-001", "WRK-001", "HSE-001", "2026-09-01", "failed")
	seedAssignment(t, db, "ASG-002", "WRK-001", "HSE-001", "2026-09-01", "pending")

	// From ASG-001's point of view the slot is held by ASG-002.
	taken, err := repo.HouseTaken(ctx, "HSE-001", "2026-09-01", "ASG-001")
	if err != nil {
		t.Fatalf("HouseTaken failed: %v", err)
	}
	if !taken {
		t.Error("expected the slot to be held by the other assignment")
	}

	// From ASG-002's point of view no other booking holds its slot.
	taken, err = repo.HouseTaken(ctx, "HSE-001", "2026-09-01", "ASG-002")
	if err != nil {
		t.Fatalf("HouseTaken failed: %v", err)
	}
	if taken {
		t.Error("expected no other booking besides the excluded one")
	}
}

func TestAssignmentRepository_ForeignKeysEnforced(t *testing.T) {
	db := setupAssignmentTestDB(t)
	repo := sqlite.NewAssignmentRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &secondary.AssignmentRecord{
		ID:       "ASG-001",
		WorkerID: "WRK-999",
		HouseID:  "HSE-001",
		Date:     "2026-09-01",
		Quantity: 1,
		Status:   "pending",
	})
	if err == nil {
		t.Error("expected foreign key violation for unknown worker")
	}
}
