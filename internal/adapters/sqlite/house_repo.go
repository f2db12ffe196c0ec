package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/NiyaziPro/taskmeister/internal/core/domain"
	"github.com/NiyaziPro/taskmeister/internal/ports/secondary"
)

// HouseRepository implements secondary.HouseRepository with SQLite.
type HouseRepository struct {
	db *sql.DB
}

// NewHouseRepository creates a new SQLite house repository.
func NewHouseRepository(db *sql.DB) *HouseRepository {
	return &HouseRepository{db: db}
}

// Create persists a new house.
func (r *HouseRepository) Create(ctx context.Context, house *secondary.HouseRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO houses (id, name, comment) VALUES (?, ?, ?)",
		house.ID, house.Name, nullable(house.Comment),
	)
	if err != nil {
		return fmt.Errorf("failed to create house: %w", err)
	}

	return nil
}

// GetByID retrieves a house by its ID.
func (r *HouseRepository) GetByID(ctx context.Context, id string) (*secondary.HouseRecord, error) {
	var (
		comment   sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.HouseRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, comment, created_at, updated_at FROM houses WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &comment, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("house %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get house: %w", err)
	}

	record.Comment = comment.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all houses ordered by name.
func (r *HouseRepository) List(ctx context.Context) ([]*secondary.HouseRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, comment, created_at, updated_at FROM houses ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}
	defer rows.Close()

	var houses []*secondary.HouseRecord
	for rows.Next() {
		var (
			comment   sql.NullString
			createdAt time.Time
			updatedAt time.Time
		)

		record := &secondary.HouseRecord{}
		err := rows.Scan(&record.ID, &record.Name, &comment, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan house: %w", err)
		}

		record.Comment = comment.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)

		houses = append(houses, record)
	}

	return houses, rows.Err()
}

// Update updates an existing house.
func (r *HouseRepository) Update(ctx context.Context, house *secondary.HouseRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE houses SET name = ?, comment = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		house.Name, nullable(house.Comment), house.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update house: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("house %s: %w", house.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a house from persistence.
func (r *HouseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM houses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete house: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("house %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CountAssignments returns the number of assignments referencing a house.
func (r *HouseRepository) CountAssignments(ctx context.Context, houseID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM assignments WHERE house_id = ?", houseID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count house assignments: %w", err)
	}
	return count, nil
}

// GetNextID returns the next available house ID.
func (r *HouseRepository) GetNextID(ctx context.Context) (string, error) {
	return nextSequentialID(ctx, r.db, "houses", "HSE")
}

// Ensure HouseRepository implements the interface.
var _ secondary.HouseRepository = (*HouseRepository)(nil)
