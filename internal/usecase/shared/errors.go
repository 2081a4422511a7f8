package shared

import (
	"time"

	"booking-engine/internal/pkg/errs"
)

// Error categories. Every use-case error is marked with exactly one of them;
// the HTTP layer maps categories to status codes.
var (
	ErrValidation = errs.New("validation failed")
	ErrConflict   = errs.New("conflict")
	ErrNotFound   = errs.New("not found")
	ErrForbidden  = errs.New("forbidden")
	ErrUpstream   = errs.New("upstream service failed")
	ErrInternal   = errs.New("internal error")
)

var categories = []error{ErrValidation, ErrConflict, ErrNotFound, ErrForbidden, ErrUpstream, ErrInternal}

var (
	ErrOfferingNotFound    = sentinel("offering not found", ErrNotFound)
	ErrServiceNotFound     = sentinel("service has no offerings", ErrNotFound)
	ErrAppointmentNotFound = sentinel("appointment not found", ErrNotFound)
	ErrLockNotFound        = sentinel("slot lock not found", ErrNotFound)
	ErrSlotNotFound        = sentinel("slot is not offered on this date", ErrNotFound)

	ErrSlotLocked        = sentinel("slot is temporarily unavailable", ErrConflict)
	ErrSlotFullyBooked   = sentinel("slot is fully booked", ErrConflict)
	ErrInvalidTransition = sentinel("appointment status does not allow this action", ErrConflict)
	ErrAlreadyPaid       = sentinel("appointment is already paid", ErrConflict)

	ErrNotPermitted = sentinel("caller may not act on this resource", ErrForbidden)

	ErrPaymentFailed    = sentinel("payment intent creation failed", ErrUpstream)
	ErrRefundFailed     = sentinel("refund request failed", ErrUpstream)
	ErrPaymentsDisabled = sentinel("card payments are not configured", ErrUpstream)
)

// sentinel builds an error that matches its category while keeping its own
// mark, so two sentinels of one category stay distinguishable with errs.Is.
func sentinel(msg string, category error) error {
	base := errs.New(msg)
	return errs.Mark(errs.Mark(base, category), base)
}

// Category returns the category err is marked with, or nil.
func Category(err error) error {
	for _, c := range categories {
		if errs.Is(err, c) {
			return c
		}
	}
	return nil
}

// Because wraps cause so that it matches both the sentinel and the
// sentinel's category.
func Because(sentinel error, cause error, msg string) error {
	err := errs.Mark(errs.Wrap(cause, msg), sentinel)
	if c := Category(sentinel); c != nil {
		err = errs.Mark(err, c)
	}
	return err
}

const (
	ReasonSlotLocked        = "slot_locked"
	ReasonSlotFullyBooked   = "slot_fully_booked"
	ReasonInvalidTransition = "invalid_transition"
)

// AlternativeSlot is a still-available slot on the same date offered to the
// client after a conflict.
type AlternativeSlot struct {
	Start             string `json:"start"`
	End               string `json:"end"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

// ConflictError carries what a client needs to retry after a conflict.
type ConflictError struct {
	Reason           string
	LockedUntil      *time.Time
	AlternativeSlots []AlternativeSlot
	cause            error
}

func NewConflict(cause error, reason string) *ConflictError {
	return &ConflictError{Reason: reason, cause: cause}
}

func (e *ConflictError) WithLockedUntil(t time.Time) *ConflictError {
	e.LockedUntil = &t
	return e
}

func (e *ConflictError) WithAlternatives(slots []AlternativeSlot) *ConflictError {
	e.AlternativeSlots = slots
	return e
}

func (e *ConflictError) Error() string {
	return e.cause.Error()
}

func (e *ConflictError) Unwrap() error {
	return e.cause
}

// Validation wraps a domain validation failure with the validation category.
func Validation(err error) error {
	return errs.Mark(err, ErrValidation)
}

// Internal wraps an unexpected failure with the internal category unless it is
// already categorised.
func Internal(err error, msg string) error {
	if err == nil {
		return nil
	}
	if Category(err) != nil {
		return err
	}
	return errs.Mark(errs.Wrap(err, msg), ErrInternal)
}
