// Package domain defines the error kinds shared by all services.
// Callers classify failures with errors.Is; services wrap these with
// context describing the offending entity.
package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced worker, house, or
	// assignment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for bad input: non-positive quantity,
	// empty required field, malformed date.
	ErrValidation = errors.New("invalid input")

	// ErrAlreadyAssigned is returned when a house already has a
	// non-failed assignment for the requested date.
	ErrAlreadyAssigned = errors.New("house already assigned for this date")

	// ErrConstraint is returned when a delete would orphan existing
	// assignment history.
	ErrConstraint = errors.New("referenced by assignment history")

	// ErrTransport is returned when a notification could not be
	// delivered: timeout, auth, connectivity.
	ErrTransport = errors.New("notification send failed")
)
