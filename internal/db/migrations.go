package db

import (
	"database/sql"
	"fmt"
)

// RunMigrations upgrades databases created by earlier releases in place.
// Early builds tracked notification state as an email_sent flag on the
// assignments table and had no send_error column; both are converted to
// the current status model. All steps are idempotent.
func RunMigrations(database *sql.DB) error {
	columns, err := tableColumns(database, "assignments")
	if err != nil {
		return err
	}

	if !columns["status"] {
		if _, err := database.Exec(
			"ALTER TABLE assignments ADD COLUMN status TEXT NOT NULL DEFAULT 'pending'",
		); err != nil {
			return fmt.Errorf("failed to add status column: %w", err)
		}
	}

	if !columns["send_error"] {
		if _, err := database.Exec("ALTER TABLE assignments ADD COLUMN send_error TEXT"); err != nil {
			return fmt.Errorf("failed to add send_error column: %w", err)
		}
	}

	if !columns["sent_at"] {
		if _, err := database.Exec("ALTER TABLE assignments ADD COLUMN sent_at DATETIME"); err != nil {
			return fmt.Errorf("failed to add sent_at column: %w", err)
		}
	}

	// Legacy email_sent flag: 1 meant delivered, 0 meant still pending.
	if columns["email_sent"] {
		if _, err := database.Exec(`
			UPDATE assignments
			SET status = CASE WHEN email_sent = 1 THEN 'sent' ELSE 'pending' END,
			    sent_at = CASE WHEN email_sent = 1 THEN COALESCE(sent_at, created_at) ELSE sent_at END
			WHERE status = 'pending' AND email_sent IS NOT NULL
		`); err != nil {
			return fmt.Errorf("failed to migrate email_sent flag: %w", err)
		}
	}

	return nil
}

// tableColumns returns the set of column names for a table.
func tableColumns(database *sql.DB, table string) (map[string]bool, error) {
	rows, err := database.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %s: %w", table, err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notnull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan table info: %w", err)
		}
		columns[name] = true
	}

	return columns, rows.Err()
}
