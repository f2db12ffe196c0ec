package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/NiyaziPro/taskmeister/internal/core/domain"
	"github.com/NiyaziPro/taskmeister/internal/ports/secondary"
)

// assignmentColumns is the shared select list for assignment reads,
// with worker and house names resolved by join.
const assignmentColumns = `
	a.id, a.worker_id, w.name, a.house_id, h.name,
	a.assignment_date, a.quantity, a.comment, a.status, a.send_error,
	a.created_at, a.sent_at
`

// AssignmentRepository implements secondary.AssignmentRepository with SQLite.
type AssignmentRepository struct {
	db *sql.DB
}

// NewAssignmentRepository creates a new SQLite assignment repository.
func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create persists a new assignment.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *secondary.AssignmentRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assignments (id, worker_id, house_id, assignment_date, quantity, comment, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		assignment.ID, assignment.WorkerID, assignment.HouseID, assignment.Date,
		assignment.Quantity, nullable(assignment.Comment), assignment.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	return nil
}

// GetByID retrieves an assignment by its ID.
func (r *AssignmentRepository) GetByID(ctx context.Context, id string) (*secondary.AssignmentRecord, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM assignments a
		JOIN workers w ON a.worker_id = w.id
		JOIN houses h ON a.house_id = h.id
		WHERE a.id = ?`

	record, err := scanAssignment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("assignment %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return record, nil
}

// List retrieves assignments matching the given filters, newest
// assignment date first, ties in creation order.
func (r *AssignmentRepository) List(ctx context.Context, filters secondary.AssignmentFilters) ([]*secondary.AssignmentRecord, error) {
	var (
		conditions []string
		args       []any
	)

	if filters.WorkerID != "" {
		conditions = append(conditions, "a.worker_id = ?")
		args = append(args, filters.WorkerID)
	}
	if filters.HouseID != "" {
		conditions = append(conditions, "a.house_id = ?")
		args = append(args, filters.HouseID)
	}
	if filters.DateFrom != "" {
		conditions = append(conditions, "a.assignment_date >= ?")
		args = append(args, filters.DateFrom)
	}
	if filters.DateTo != "" {
		conditions = append(conditions, "a.assignment_date <= ?")
		args = append(args, filters.DateTo)
	}
	if filters.CommentContains != "" {
		conditions = append(conditions, `LOWER(COALESCE(a.comment, '')) LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(strings.ToLower(filters.CommentContains))+"%")
	}

	query := `SELECT ` + assignmentColumns + `
		FROM assignments a
		JOIN workers w ON a.worker_id = w.id
		JOIN houses h ON a.house_id = h.id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.assignment_date DESC, a.created_at ASC, a.id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*secondary.AssignmentRecord
	for rows.Next() {
		record, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, record)
	}

	return assignments, rows.Err()
}

// MarkSent transitions an assignment to sent with a timestamp and
// clears any previous failure reason.
func (r *AssignmentRepository) MarkSent(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE assignments SET status = 'sent', sent_at = CURRENT_TIMESTAMP, send_error = NULL WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark assignment sent: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("assignment %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// MarkFailed transitions an assignment to failed with the failure reason.
// The sent timestamp stays NULL.
func (r *AssignmentRepository) MarkFailed(ctx context.Context, id, reason string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE assignments SET status = 'failed', send_error = ? WHERE id = ?",
		reason, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark assignment failed: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("assignment %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// AssignedHouseIDs returns the houses holding a non-failed assignment
// for the given date.
func (r *AssignmentRepository) AssignedHouseIDs(ctx context.Context, date string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT DISTINCT house_id FROM assignments WHERE assignment_date = ? AND status != 'failed'",
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get assigned houses: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan house id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// HouseTaken reports whether a house holds a non-failed assignment for
// the given date. excludeID leaves one assignment out of the check, so
// a resend can ask whether anyone else claimed its slot; pass "" to
// check all.
func (r *AssignmentRepository) HouseTaken(ctx context.Context, houseID, date, excludeID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM assignments WHERE house_id = ? AND assignment_date = ? AND status != 'failed' AND id != ?",
		houseID, date, excludeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check house availability: %w", err)
	}
	return count > 0, nil
}

// escapeLike neutralizes LIKE wildcards in user-supplied search text.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// GetNextID returns the next available assignment ID.
func (r *AssignmentRepository) GetNextID(ctx context.Context) (string, error) {
	return nextSequentialID(ctx, r.db, "assignments", "ASG")
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAssignment(row scanner) (*secondary.AssignmentRecord, error) {
	var (
		comment   sql.NullString
		sendError sql.NullString
		createdAt time.Time
		sentAt    sql.NullTime
	)

	record := &secondary.AssignmentRecord{}
	err := row.Scan(
		&record.ID, &record.WorkerID, &record.WorkerName, &record.HouseID, &record.HouseName,
		&record.Date, &record.Quantity, &comment, &record.Status, &sendError,
		&createdAt, &sentAt,
	)
	if err != nil {
		return nil, err
	}

	record.Comment = comment.String
	record.SendError = sendError.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	if sentAt.Valid {
		record.SentAt = sentAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// Ensure AssignmentRepository implements the interface.
var _ secondary.AssignmentRepository = (*AssignmentRepository)(nil)
