package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// nextSequentialID returns the next PREFIX-NNN identifier for a table.
// IDs are human-typable and dense; the single-writer store makes the
// read-then-insert safe.
func nextSequentialID(ctx context.Context, db *sql.DB, table, prefix string) (string, error) {
	var maxID int
	query := fmt.Sprintf(
		"SELECT COALESCE(MAX(CAST(REPLACE(id, '%s-', '') AS INTEGER)), 0) FROM %s",
		prefix, table,
	)
	if err := db.QueryRowContext(ctx, query).Scan(&maxID); err != nil {
		return "", fmt.Errorf("failed to get next %s ID: %w", prefix, err)
	}

	return fmt.Sprintf("%s-%03d", prefix, maxID+1), nil
}

// nullable maps an empty string to NULL for optional text columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
