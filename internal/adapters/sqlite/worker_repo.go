// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/NiyaziPro/taskmeister/internal/core/domain"
	"github.com/NiyaziPro/taskmeister/internal/ports/secondary"
)

// WorkerRepository implements secondary.WorkerRepository with SQLite.
type WorkerRepository struct {
	db *sql.DB
}

// NewWorkerRepository creates a new SQLite worker repository.
func NewWorkerRepository(db *sql.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// Create persists a new worker.
func (r *WorkerRepository) Create(ctx context.Context, worker *secondary.WorkerRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO workers (id, name, email, phone) VALUES (?, ?, ?, ?)",
		worker.ID, worker.Name, worker.Email, nullable(worker.Phone),
	)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}

	return nil
}

// GetByID retrieves a worker by its ID.
func (r *WorkerRepository) GetByID(ctx context.Context, id string) (*secondary.WorkerRecord, error) {
	var (
		phone     sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.WorkerRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone, created_at, updated_at FROM workers WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &record.Email, &phone, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("worker %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	record.Phone = phone.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all workers ordered by name.
func (r *WorkerRepository) List(ctx context.Context) ([]*secondary.WorkerRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, email, phone, created_at, updated_at FROM workers ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []*secondary.WorkerRecord
	for rows.Next() {
		var (
			phone     sql.NullString
			createdAt time.Time
			updatedAt time.Time
		)

		record := &secondary.WorkerRecord{}
		err := rows.Scan(&record.ID, &record.Name, &record.Email, &phone, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}

		record.Phone = phone.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)

		workers = append(workers, record)
	}

	return workers, rows.Err()
}

// Update updates an existing worker.
func (r *WorkerRepository) Update(ctx context.Context, worker *secondary.WorkerRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE workers SET name = ?, email = ?, phone = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		worker.Name, worker.Email, nullable(worker.Phone), worker.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("worker %s: %w", worker.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a worker from persistence.
func (r *WorkerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM workers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("worker %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CountAssignments returns the number of assignments referencing a worker.
func (r *WorkerRepository) CountAssignments(ctx context.Context, workerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM assignments WHERE worker_id = ?", workerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count worker assignments: %w", err)
	}
	return count, nil
}

// GetNextID returns the next available worker ID.
func (r *WorkerRepository) GetNextID(ctx context.Context) (string, error) {
	return nextSequentialID(ctx, r.db, "workers", "WRK")
}

// Ensure WorkerRepository implements the interface.
var _ secondary.WorkerRepository = (*WorkerRepository)(nil)
