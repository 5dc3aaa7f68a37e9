package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSlotNotFound is returned when a slot lookup yields fewer rows than
// requested ids. It is a client error, not a partial result.
var ErrSlotNotFound = errors.New("one or more selected slots do not exist")

// ErrBookingNotFound is returned for lookups of unknown booking ids.
var ErrBookingNotFound = errors.New("booking not found")

// ErrForbidden is returned when the caller's role does not permit the
// operation (e.g. a non-admin driving status transitions).
var ErrForbidden = errors.New("operation requires admin role")

// ValidationError marks malformed or logically inconsistent input. The
// caller can recover by correcting the request; it is never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// SlotMismatchError marks a request whose ad type disagrees with one or
// more of the selected slots. SlotNames identifies the offending slots
// so the message is actionable.
type SlotMismatchError struct {
	AdType    AdType
	SlotNames []string
}

func (e *SlotMismatchError) Error() string {
	return fmt.Sprintf("all selected slots must match the ad type %q, invalid slots: %s",
		e.AdType, strings.Join(e.SlotNames, ", "))
}

// ConflictError marks a booking that would overlap an existing
// occupying booking on a shared slot. Unlike a ValidationError the same
// request could succeed with different dates. SlotName is empty when
// the conflict was only detected at commit time (a lost race), where
// the winning booking's slot is no longer known.
type ConflictError struct {
	SlotName string
}

func (e *ConflictError) Error() string {
	if e.SlotName == "" {
		return "booking conflicts with a concurrent reservation for the same slot and dates"
	}
	return fmt.Sprintf("slot %q is not available for the selected dates: another ad already booked it for this period", e.SlotName)
}
