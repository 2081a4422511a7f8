//go:build unit || e2e

package builder

import (
	"time"

	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/domain/recurrence"
	reqdto "booking-engine/internal/handler/dto/request"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID              uuid.UUID
	OfferingID      uuid.UUID
	CustomerID      uuid.UUID
	Date            string
	Start           string
	End             string
	Status          appointment.Status
	PaymentStatus   appointment.PaymentStatus
	PaymentMethod   appointment.PaymentMethod
	PaymentIntentID *string
	Total           int64
	Currency        string
	CreatedAt       time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:            uuid.New(),
		OfferingID:    uuid.New(),
		CustomerID:    uuid.New(),
		Date:          "2024-06-01",
		Start:         "09:00",
		End:           "09:30",
		Status:        appointment.StatusPending,
		PaymentStatus: appointment.PaymentNone,
		PaymentMethod: appointment.PaymentMethodCash,
		Total:         100,
		Currency:      "usd",
		CreatedAt:     time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithStatus(s appointment.Status) *AppointmentBuilder {
	b.Status = s
	return b
}

// WithCardPaid marks the appointment as paid by card with a captured intent.
func (b *AppointmentBuilder) WithCardPaid(intentID string) *AppointmentBuilder {
	b.PaymentMethod = appointment.PaymentMethodCard
	b.PaymentStatus = appointment.PaymentPaid
	b.PaymentIntentID = &intentID
	return b
}

func (b *AppointmentBuilder) Schedule() appointment.Schedule {
	return appointment.Schedule{
		Date:  recurrence.MustDate(b.Date),
		Start: recurrence.MustTimeOfDay(b.Start),
		End:   recurrence.MustTimeOfDay(b.End),
	}
}

// Build methods
func (b *AppointmentBuilder) BuildSnapshot() appointment.Snapshot {
	return appointment.Snapshot{
		ID:              b.ID,
		OfferingID:      b.OfferingID,
		CustomerID:      b.CustomerID,
		Schedule:        b.Schedule(),
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		PaymentMethod:   b.PaymentMethod,
		PaymentIntentID: b.PaymentIntentID,
		Total:           b.Total,
		Currency:        b.Currency,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	return appointment.Reconstruct(b.BuildSnapshot())
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		SlotKeyRequest: reqdto.SlotKeyRequest{
			OfferingID: b.OfferingID,
			Date:       b.Date,
			Start:      b.Start,
			End:        b.End,
		},
		PaymentMethod: b.PaymentMethod.String(),
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return queries.NewAppointmentView(b.BuildDomain())
}
