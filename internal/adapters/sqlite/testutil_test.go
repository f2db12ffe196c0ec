// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup loads the schema through db.GetSchemaSQL() so tests run
// against the authoritative schema; no test file hardcodes CREATE TABLE
// statements.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/NiyaziPro/taskmeister/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedWorker inserts a test worker and returns its ID.
func seedWorker(t *testing.T, db *sql.DB, id, name, email string) string {
	t.Helper()
	if id == "" {
		id = "WRK-001"
	}
	if name == "" {
		name = "Test Worker"
	}
	if email == "" {
		email = "worker@example.com"
	}
	_, err := db.Exec("INSERT INTO workers (id, name, email) VALUES (?, ?, ?)", id, name, email)
	if err != nil {
		t.Fatalf("failed to seed worker: %v", err)
	}
	return id
}

// seedHouse inserts a test house and returns its ID.
func seedHouse(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "HSE-001"
	}
	if name == "" {
		name = "Test House"
	}
	_, err := db.Exec("INSERT INTO houses (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		t.Fatalf("failed to seed house: %v", err)
	}
	return id
}

// seedAssignment inserts a test assignment and returns its ID.
func seedAssignment(t *testing.T, db *sql.DB, id, workerID, houseID, date, status string) string {
	t.Helper()
	if id == "" {
		id = "ASG-001"
	}
	if date == "" {
		date = "2026-09-01"
	}
	if status == "" {
		status = "pending"
	}
	_, err := db.Exec(
		"INSERT INTO assignments (id, worker_id, house_id, assignment_date, quantity, status) VALUES (?, ?, ?, ?, 1, ?)",
		id, workerID, houseID, date, status,
	)
	if err != nil {
		t.Fatalf("failed to seed assignment: %v", err)
	}
	return id
}
