package shared

import (
	"context"
	"time"

	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/domain/offering"
	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/domain/slot"
	"booking-engine/internal/domain/slotlock"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
}

// AppointmentRepository is the transactional write side.
type AppointmentRepository interface {
	// GuardSlotDay serialises writers for one offering and date until the transaction ends.
	GuardSlotDay(ctx context.Context, offeringID uuid.UUID, date recurrence.CivilDate) error
	// ListBooked returns intervals of non-cancelled appointments, skipping exclude.
	ListBooked(ctx context.Context, offeringID uuid.UUID, date recurrence.CivilDate, exclude uuid.UUID) ([]slot.Interval, error)
	Create(ctx context.Context, a *appointment.Appointment) error
	// Save persists a only while its stored status is one of from; otherwise a
	// conflict repository error is returned.
	Save(ctx context.Context, a *appointment.Appointment, from []appointment.Status) error
}

type AppointmentFilter struct {
	OfferingIDs     []uuid.UUID
	DateFrom        *recurrence.CivilDate
	DateTo          *recurrence.CivilDate
	Statuses        []appointment.Status
	ExcludeStatuses []appointment.Status
	StartsFrom      *time.Time
	StartsBefore    *time.Time
	EndsBefore      *time.Time
	Limit           uint64
}

// AppointmentReader reads committed appointments outside transactions.
type AppointmentReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	Find(ctx context.Context, filter AppointmentFilter) ([]*appointment.Appointment, error)
}

type RecurrenceReader interface {
	ListEntries(ctx context.Context, offeringID uuid.UUID, month time.Month, year int) ([]recurrence.DateEntry, error)
}

type OfferingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*offering.Offering, error)
	ListByService(ctx context.Context, serviceID uuid.UUID) ([]*offering.Offering, error)
}

// SlotLockStore keeps short-lived exclusive slot reservations. Exclusivity is
// enforced by the store in a single atomic operation.
type SlotLockStore interface {
	// Acquire inserts lock unless a live lock exists for its key, in which case
	// the existing lock is returned with acquired=false.
	Acquire(ctx context.Context, lock *slotlock.Lock) (current *slotlock.Lock, acquired bool, err error)
	// Get returns the live lock for key, or nil.
	Get(ctx context.Context, key slotlock.Key) (*slotlock.Lock, error)
	// GetByID returns the live lock with id, or nil.
	GetByID(ctx context.Context, id uuid.UUID) (*slotlock.Lock, error)
	ListHeldBy(ctx context.Context, holder uuid.UUID) ([]*slotlock.Lock, error)
	// Release deletes lock only if it is still the stored lock for its key.
	Release(ctx context.Context, lock *slotlock.Lock) (bool, error)
	// DeleteExpired removes locks past expiry; stores with native expiry report 0.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type PaymentIntentRequest struct {
	Amount         int64
	Currency       string
	Metadata       map[string]string
	IdempotencyKey string
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
}

type RefundRequest struct {
	PaymentIntentID string
	// Amount is nil for a full refund of the captured amount.
	Amount         *int64
	IdempotencyKey string
}

type RefundResult struct {
	ID     string
	Status string
	Amount int64
}

type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)
	CancelPaymentIntent(ctx context.Context, id string) error
	Refund(ctx context.Context, req RefundRequest) (*RefundResult, error)
}

const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingMoved     = "booking.rescheduled"
	EventBookingCompleted = "booking.completed"
	EventBookingReminder  = "booking.reminder"
	EventWaitlistOpening  = "waitlist.slot_released"
)

type Event struct {
	Type          string            `json:"type"`
	AppointmentID uuid.UUID         `json:"appointmentId"`
	OfferingID    uuid.UUID         `json:"offeringId"`
	CustomerID    uuid.UUID         `json:"customerId"`
	Date          string            `json:"date"`
	Start         string            `json:"start"`
	End           string            `json:"end"`
	OccurredAt    time.Time         `json:"occurredAt"`
	Attributes    map[string]string `json:"attributes,omitempty"`
}

// NewAppointmentEvent describes a lifecycle event of a.
func NewAppointmentEvent(eventType string, a *appointment.Appointment, at time.Time) Event {
	s := a.Schedule()
	return Event{
		Type:          eventType,
		AppointmentID: a.ID(),
		OfferingID:    a.OfferingID(),
		CustomerID:    a.CustomerID(),
		Date:          s.Date.String(),
		Start:         s.Start.String(),
		End:           s.End.String(),
		OccurredAt:    at,
	}
}

// Notifier delivers an event to a transport and reports the outcome.
type Notifier interface {
	Publish(ctx context.Context, e Event) error
}

// Dispatcher runs notifications as detached tasks. The caller never waits for
// delivery and never observes its failure.
type Dispatcher interface {
	Dispatch(ctx context.Context, e Event)
}

// DedupStore records one-shot markers with a TTL.
type DedupStore interface {
	// MarkOnce sets key if absent and reports whether this call set it.
	MarkOnce(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// SweepGuard claims a periodic sweep run at most once per interval across processes.
type SweepGuard interface {
	Claim(ctx context.Context, name string, now time.Time, interval time.Duration) (bool, error)
}

func ReminderKey(appointmentID uuid.UUID) string {
	return "reminder:" + appointmentID.String()
}
