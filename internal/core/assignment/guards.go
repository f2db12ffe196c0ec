// Package assignment contains the pure business rules for assignment
// operations. Guards evaluate preconditions without side effects; the
// services re-run them at commit time so a stale house list from the
// caller can never produce a double booking.
package assignment

import (
	"fmt"
	"time"

	"github.com/NiyaziPro/taskmeister/internal/core/domain"
)

// DateLayout is the wire format for assignment dates.
const DateLayout = "2006-01-02"

// Assignment status values.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Kind    error // sentinel from the domain package, nil when allowed
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	if r.Kind == nil {
		return fmt.Errorf("%s", r.Reason)
	}
	return fmt.Errorf("%w: %s", r.Kind, r.Reason)
}

func denied(kind error, format string, args ...any) GuardResult {
	return GuardResult{Allowed: false, Reason: fmt.Sprintf(format, args...), Kind: kind}
}

// ValidateDate checks that a date string is a well-formed calendar date.
func ValidateDate(date string) GuardResult {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return denied(domain.ErrValidation, "date %q must be in YYYY-MM-DD format", date)
	}
	return GuardResult{Allowed: true}
}

// CreateContext provides context for assignment creation guards.
type CreateContext struct {
	WorkerID     string
	WorkerExists bool
	HouseID      string
	HouseExists  bool
	Date         string
	Quantity     int
	HouseTaken   bool // a non-failed assignment already exists for (house, date)
}

// CanCreateAssignment evaluates whether an assignment can be created.
// Rules:
// - Date must be well-formed
// - Quantity must be >= 1
// - Worker and house must exist
// - The (house, date) pair must not already carry a non-failed assignment
func CanCreateAssignment(ctx CreateContext) GuardResult {
	if r := ValidateDate(ctx.Date); !r.Allowed {
		return r
	}

	if ctx.Quantity < 1 {
		return denied(domain.ErrValidation, "quantity must be at least 1, got %d", ctx.Quantity)
	}

	if !ctx.WorkerExists {
		return denied(domain.ErrNotFound, "worker %s", ctx.WorkerID)
	}

	if !ctx.HouseExists {
		return denied(domain.ErrNotFound, "house %s", ctx.HouseID)
	}

	if ctx.HouseTaken {
		return denied(domain.ErrAlreadyAssigned, "house %s on %s", ctx.HouseID, ctx.Date)
	}

	return GuardResult{Allowed: true}
}

// CanSend evaluates whether a notification may be dispatched for an
// assignment in the given status. Pending and failed assignments are
// sendable; a sent assignment must not be delivered twice. slotRetaken
// covers the resend of a failed assignment: a failed send frees its
// (house, date) slot, so by the time of the retry another booking may
// hold it, and delivering anyway would double-book the house.
func CanSend(assignmentID, status string, slotRetaken bool) GuardResult {
	if status == StatusSent {
		return denied(domain.ErrValidation,
			"assignment %s has already been sent", assignmentID)
	}
	if slotRetaken {
		return denied(domain.ErrAlreadyAssigned,
			"assignment %s lost its slot to another booking", assignmentID)
	}
	return GuardResult{Allowed: true}
}

// Blocks reports whether an assignment in the given status occupies its
// (house, date) slot. Failed sends do not block re-assignment.
func Blocks(status string) bool {
	return status != StatusFailed
}
