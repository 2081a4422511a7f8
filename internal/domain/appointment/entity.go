package appointment

import (
	"errors"
	"slices"
	"strings"
	"time"

	"booking-engine/internal/domain/recurrence"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("appointment status transition not allowed")
	ErrInvalidSchedule   = errors.New("appointment start must be before end")
	ErrNegativeTotal     = errors.New("appointment total cannot be negative")
	ErrInvalidMethod     = errors.New("invalid payment method")
	ErrReasonTooShort    = errors.New("reason is too short")
	ErrInvalidOverride   = errors.New("override target must be missed or failed")
	ErrAlreadyPaid       = errors.New("appointment is already paid")
)

type Refund struct {
	ID         string
	Percentage int
	Amount     int64
	Status     string
}

type Schedule struct {
	Date  recurrence.CivilDate
	Start recurrence.TimeOfDay
	End   recurrence.TimeOfDay
}

func (s Schedule) Validate() error {
	if s.Date.IsZero() || s.Start >= s.End {
		return ErrInvalidSchedule
	}
	return nil
}

func (s Schedule) StartAt(loc *time.Location) time.Time { return s.Date.At(s.Start, loc) }
func (s Schedule) EndAt(loc *time.Location) time.Time   { return s.Date.At(s.End, loc) }

// Appointment is one reserved unit of a slot's capacity.
type Appointment struct {
	id              uuid.UUID
	offeringID      uuid.UUID
	customerID      uuid.UUID
	schedule        Schedule
	status          Status
	paymentStatus   PaymentStatus
	paymentMethod   PaymentMethod
	paymentIntentID *string
	total           int64
	currency        string
	statusReason    *string
	cancelledAt     *time.Time
	refund          *Refund
	createdAt       time.Time
	updatedAt       time.Time
}

func New(
	offeringID, customerID uuid.UUID,
	schedule Schedule,
	total int64,
	currency string,
	method PaymentMethod,
	now time.Time,
) (*Appointment, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	if total < 0 {
		return nil, ErrNegativeTotal
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}

	paymentStatus := PaymentNone
	if method == PaymentMethodCard && total > 0 {
		paymentStatus = PaymentPending
	}

	return &Appointment{
		id:            uuid.New(),
		offeringID:    offeringID,
		customerID:    customerID,
		schedule:      schedule,
		status:        StatusPending,
		paymentStatus: paymentStatus,
		paymentMethod: method,
		total:         total,
		currency:      currency,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type Snapshot struct {
	ID              uuid.UUID
	OfferingID      uuid.UUID
	CustomerID      uuid.UUID
	Schedule        Schedule
	Status          Status
	PaymentStatus   PaymentStatus
	PaymentMethod   PaymentMethod
	PaymentIntentID *string
	Total           int64
	Currency        string
	StatusReason    *string
	CancelledAt     *time.Time
	Refund          *Refund
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Reconstruct(s Snapshot) *Appointment {
	return &Appointment{
		id:              s.ID,
		offeringID:      s.OfferingID,
		customerID:      s.CustomerID,
		schedule:        s.Schedule,
		status:          s.Status,
		paymentStatus:   s.PaymentStatus,
		paymentMethod:   s.PaymentMethod,
		paymentIntentID: s.PaymentIntentID,
		total:           s.Total,
		currency:        s.Currency,
		statusReason:    s.StatusReason,
		cancelledAt:     s.CancelledAt,
		refund:          s.Refund,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}

func (a *Appointment) Snapshot() Snapshot {
	return Snapshot{
		ID:              a.id,
		OfferingID:      a.offeringID,
		CustomerID:      a.customerID,
		Schedule:        a.schedule,
		Status:          a.status,
		PaymentStatus:   a.paymentStatus,
		PaymentMethod:   a.paymentMethod,
		PaymentIntentID: a.paymentIntentID,
		Total:           a.total,
		Currency:        a.currency,
		StatusReason:    a.statusReason,
		CancelledAt:     a.cancelledAt,
		Refund:          a.refund,
		CreatedAt:       a.createdAt,
		UpdatedAt:       a.updatedAt,
	}
}

func (a *Appointment) AttachPaymentIntent(id string) {
	a.paymentIntentID = &id
}

func (a *Appointment) Confirm(now time.Time) error {
	if a.status != StatusPending {
		return ErrInvalidTransition
	}
	a.status = StatusConfirmed
	a.updatedAt = now
	return nil
}

// MarkPaid records a captured payment. A pending appointment is confirmed by it.
func (a *Appointment) MarkPaid(now time.Time) error {
	if a.status.IsTerminal() {
		return ErrInvalidTransition
	}
	if a.paymentStatus == PaymentPaid {
		return ErrAlreadyPaid
	}
	a.paymentStatus = PaymentPaid
	if a.status == StatusPending {
		a.status = StatusConfirmed
	}
	a.updatedAt = now
	return nil
}

// RequiresRefund reports whether cancelling under quote must call the payment gateway.
func (a *Appointment) RequiresRefund(quote RefundQuote) bool {
	return a.paymentStatus == PaymentPaid && quote.Percentage > 0 && a.paymentIntentID != nil
}

// Cancel moves a pending or confirmed appointment to cancelled. refund is nil when
// no money was returned.
func (a *Appointment) Cancel(now time.Time, reason string, refund *Refund) error {
	if !slices.Contains(Cancellable, a.status) {
		return ErrInvalidTransition
	}
	a.status = StatusCancelled
	a.cancelledAt = &now
	if reason = strings.TrimSpace(reason); reason != "" {
		a.statusReason = &reason
	}
	if refund != nil {
		a.refund = refund
		if refund.Percentage >= 100 {
			a.paymentStatus = PaymentRefunded
		} else {
			a.paymentStatus = PaymentPartiallyRefunded
		}
	}
	a.updatedAt = now
	return nil
}

func (a *Appointment) Complete(now time.Time) error {
	if a.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	a.status = StatusCompleted
	a.updatedAt = now
	return nil
}

// Override applies an administrative missed or failed outcome.
func (a *Appointment) Override(to Status, reason string, minReasonLength int, now time.Time) error {
	if to != StatusMissed && to != StatusFailed {
		return ErrInvalidOverride
	}
	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) < minReasonLength {
		return ErrReasonTooShort
	}
	if !slices.Contains(Overridable, a.status) {
		return ErrInvalidTransition
	}
	a.status = to
	a.statusReason = &reason
	a.updatedAt = now
	return nil
}

// Reschedule moves the appointment in place; status is unchanged.
func (a *Appointment) Reschedule(schedule Schedule, now time.Time) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	if a.status.IsTerminal() {
		return ErrInvalidTransition
	}
	a.schedule = schedule
	a.updatedAt = now
	return nil
}

func (a *Appointment) ID() uuid.UUID                { return a.id }
func (a *Appointment) OfferingID() uuid.UUID        { return a.offeringID }
func (a *Appointment) CustomerID() uuid.UUID        { return a.customerID }
func (a *Appointment) Schedule() Schedule           { return a.schedule }
func (a *Appointment) Status() Status               { return a.status }
func (a *Appointment) PaymentStatus() PaymentStatus { return a.paymentStatus }
func (a *Appointment) PaymentMethod() PaymentMethod { return a.paymentMethod }
func (a *Appointment) PaymentIntentID() *string     { return a.paymentIntentID }
func (a *Appointment) Total() int64                 { return a.total }
func (a *Appointment) Currency() string             { return a.currency }
func (a *Appointment) StatusReason() *string        { return a.statusReason }
func (a *Appointment) CancelledAt() *time.Time      { return a.cancelledAt }
func (a *Appointment) Refund() *Refund              { return a.refund }
func (a *Appointment) CreatedAt() time.Time         { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time         { return a.updatedAt }
