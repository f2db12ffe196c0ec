// +build ignore

// One-off importer for databases written by the old desktop edition of
// taskmeister. The old edition used integer AUTOINCREMENT IDs and an
// assignment_history table with an email_sent flag; this script copies
// everything into a fresh taskmeister database with prefixed IDs and
// the status model.
//
// Usage:
//   go run scripts/import_legacy.go -legacy ~/old/taskmeister.db [-dry-run]
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/NiyaziPro/taskmeister/internal/db"
)

func main() {
	legacyPath := flag.String("legacy", "", "Path to the old database (required)")
	dryRun := flag.Bool("dry-run", false, "Preview import without executing")
	flag.Parse()

	if *legacyPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -legacy is required")
		os.Exit(1)
	}

	legacy, err := sql.Open("sqlite3", *legacyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening legacy database: %v\n", err)
		os.Exit(1)
	}
	defer legacy.Close()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting home dir: %v\n", err)
		os.Exit(1)
	}
	targetPath := filepath.Join(homeDir, ".taskmeister", "taskmeister.db")

	target, err := db.Open(targetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening target database: %v\n", err)
		os.Exit(1)
	}
	defer target.Close()

	workerIDs, err := importWorkers(legacy, target, *dryRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing workers: %v\n", err)
		os.Exit(1)
	}

	houseIDs, err := importHouses(legacy, target, *dryRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing houses: %v\n", err)
		os.Exit(1)
	}

	count, err := importAssignments(legacy, target, workerIDs, houseIDs, *dryRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing assignments: %v\n", err)
		os.Exit(1)
	}

	verb := "Imported"
	if *dryRun {
		verb = "Would import"
	}
	fmt.Printf("%s %d worker(s), %d house(s), %d assignment(s) into %s\n",
		verb, len(workerIDs), len(houseIDs), count, targetPath)
}

func importWorkers(legacy, target *sql.DB, dryRun bool) (map[int64]string, error) {
	rows, err := legacy.Query("SELECT id, name, email FROM workers ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int64]string)
	seq := 0
	for rows.Next() {
		var oldID int64
		var name, email string
		if err := rows.Scan(&oldID, &name, &email); err != nil {
			return nil, err
		}
		seq++
		newID := fmt.Sprintf("WRK-%03d", seq)
		ids[oldID] = newID

		if dryRun {
			fmt.Printf("  worker %d → %s: %s <%s>\n", oldID, newID, name, email)
			continue
		}
		if _, err := target.Exec(
			"INSERT INTO workers (id, name, email) VALUES (?, ?, ?)",
			newID, name, email,
		); err != nil {
			return nil, err
		}
	}
	return ids, rows.Err()
}

func importHouses(legacy, target *sql.DB, dryRun bool) (map[int64]string, error) {
	rows, err := legacy.Query("SELECT id, name FROM houses ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int64]string)
	seq := 0
	for rows.Next() {
		var oldID int64
		var name string
		if err := rows.Scan(&oldID, &name); err != nil {
			return nil, err
		}
		seq++
		newID := fmt.Sprintf("HSE-%03d", seq)
		ids[oldID] = newID

		if dryRun {
			fmt.Printf("  house %d → %s: %s\n", oldID, newID, name)
			continue
		}
		if _, err := target.Exec(
			"INSERT INTO houses (id, name) VALUES (?, ?)",
			newID, name,
		); err != nil {
			return nil, err
		}
	}
	return ids, rows.Err()
}

func importAssignments(legacy, target *sql.DB, workerIDs, houseIDs map[int64]string, dryRun bool) (int, error) {
	// Oldest databases have no assignment_date column; fall back to the
	// date part of the insert timestamp.
	rows, err := legacy.Query(`
		SELECT id, worker_id, house_id, quantity, note,
		       COALESCE(assignment_date, DATE(date_assigned)),
		       COALESCE(email_sent, 1),
		       date_assigned
		FROM assignment_history ORDER BY id
	`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var oldID, oldWorkerID, oldHouseID int64
		var quantity int
		var note sql.NullString
		var date, createdAt string
		var emailSent int
		if err := rows.Scan(&oldID, &oldWorkerID, &oldHouseID, &quantity, &note, &date, &emailSent, &createdAt); err != nil {
			return count, err
		}

		workerID, ok := workerIDs[oldWorkerID]
		if !ok {
			fmt.Printf("  skipping assignment %d: worker %d no longer exists\n", oldID, oldWorkerID)
			continue
		}
		houseID, ok := houseIDs[oldHouseID]
		if !ok {
			fmt.Printf("  skipping assignment %d: house %d no longer exists\n", oldID, oldHouseID)
			continue
		}

		count++
		newID := fmt.Sprintf("ASG-%03d", count)
		status := "pending"
		var sentAt sql.NullString
		if emailSent == 1 {
			status = "sent"
			sentAt = sql.NullString{String: createdAt, Valid: true}
		}

		if dryRun {
			fmt.Printf("  assignment %d → %s: %s at %s on %s (%s)\n",
				oldID, newID, workerID, houseID, date, status)
			continue
		}
		if quantity < 1 {
			quantity = 1
		}
		if _, err := target.Exec(`
			INSERT INTO assignments (id, worker_id, house_id, assignment_date, quantity, comment, status, created_at, sent_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, newID, workerID, houseID, date, quantity, note, status, createdAt, sentAt); err != nil {
			return count, err
		}
	}
	return count, rows.Err()
}
