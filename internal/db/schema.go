package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL creates the tables for fresh installs; IndexSQL below holds
// the indexes.
//
// This is the single source of truth for the database schema. Tests load
// it via GetSchemaSQL() instead of hardcoding CREATE TABLE statements, so
// repository code referencing a column this schema does not define fails
// immediately with "no such column".
//
// The no-double-booking rule (one non-failed assignment per house and
// date) is enforced by the rules engine before insert, not by a
// constraint here; failed assignments must not block their slot, which a
// plain UNIQUE index cannot express across status updates.
const SchemaSQL = `
-- Workers (assignable staff with a notification address)
CREATE TABLE IF NOT EXISTS workers (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Houses (service locations)
CREATE TABLE IF NOT EXISTS houses (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	comment TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Assignments (append-only history; rows are never deleted)
CREATE TABLE IF NOT EXISTS assignments (
	id TEXT PRIMARY KEY,
	worker_id TEXT NOT NULL,
	house_id TEXT NOT NULL,
	assignment_date TEXT NOT NULL,
	quantity INTEGER NOT NULL DEFAULT 1 CHECK(quantity >= 1),
	comment TEXT,
	status TEXT NOT NULL CHECK(status IN ('pending', 'sent', 'failed')) DEFAULT 'pending',
	send_error TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	sent_at DATETIME,
	FOREIGN KEY (worker_id) REFERENCES workers(id),
	FOREIGN KEY (house_id) REFERENCES houses(id)
);
`

// IndexSQL creates the indexes. It runs separately after migrations:
// idx_assignments_status references the status column, which databases
// from before the status model only gain during migration.
const IndexSQL = `
CREATE INDEX IF NOT EXISTS idx_workers_name ON workers(name);
CREATE INDEX IF NOT EXISTS idx_houses_name ON houses(name);
CREATE INDEX IF NOT EXISTS idx_assignments_worker ON assignments(worker_id);
CREATE INDEX IF NOT EXISTS idx_assignments_house ON assignments(house_id);
CREATE INDEX IF NOT EXISTS idx_assignments_date ON assignments(assignment_date DESC);
CREATE INDEX IF NOT EXISTS idx_assignments_house_date ON assignments(house_id, assignment_date);
CREATE INDEX IF NOT EXISTS idx_assignments_status ON assignments(status);
`

// InitSchema creates the schema idempotently and upgrades databases
// written by earlier releases. Tables first, then migrations, then
// indexes: an index on a migrated column must not be created before the
// column exists.
func InitSchema(database *sql.DB) error {
	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := RunMigrations(database); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if _, err := database.Exec(IndexSQL); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL + IndexSQL
}
