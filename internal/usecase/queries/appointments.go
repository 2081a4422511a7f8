package queries

import (
	"context"
	"time"

	"booking-engine/internal/domain/actor"
	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type RefundView struct {
	ID         string `json:"id,omitempty"`
	Percentage int    `json:"percentage"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
}

type AppointmentView struct {
	ID            uuid.UUID   `json:"id"`
	OfferingID    uuid.UUID   `json:"offeringId"`
	CustomerID    uuid.UUID   `json:"customerId"`
	Date          string      `json:"date"`
	Start         string      `json:"start"`
	End           string      `json:"end"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"paymentStatus"`
	PaymentMethod string      `json:"paymentMethod"`
	Total         int64       `json:"total"`
	Currency      string      `json:"currency"`
	StatusReason  *string     `json:"statusReason,omitempty"`
	CancelledAt   *time.Time  `json:"cancelledAt,omitempty"`
	Refund        *RefundView `json:"refund,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func NewAppointmentView(a *appointment.Appointment) *AppointmentView {
	s := a.Schedule()
	v := &AppointmentView{
		ID:            a.ID(),
		OfferingID:    a.OfferingID(),
		CustomerID:    a.CustomerID(),
		Date:          s.Date.String(),
		Start:         s.Start.String(),
		End:           s.End.String(),
		Status:        a.Status().String(),
		PaymentStatus: a.PaymentStatus().String(),
		PaymentMethod: a.PaymentMethod().String(),
		Total:         a.Total(),
		Currency:      a.Currency(),
		StatusReason:  a.StatusReason(),
		CancelledAt:   a.CancelledAt(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
	if r := a.Refund(); r != nil {
		v.Refund = &RefundView{ID: r.ID, Percentage: r.Percentage, Amount: r.Amount, Status: r.Status}
	}
	return v
}

type CancellationPreview struct {
	HoursUntilAppointment float64 `json:"hoursUntilAppointment"`
	RefundPercentage      int     `json:"refundPercentage"`
	PolicyTier            string  `json:"policyTier"`
	RefundAmount          int64   `json:"refundAmount"`
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, caller actor.Actor, id uuid.UUID) (*AppointmentView, error)
	GetCancellationPreview(ctx context.Context, caller actor.Actor, id uuid.UUID) (*CancellationPreview, error)
}

type appointmentQueriesImpl struct {
	appointments shared.AppointmentReader
	offerings    shared.OfferingReader
	policy       appointment.RefundPolicy
	clock        clock.Clock
	location     *time.Location
}

func NewAppointmentQueries(
	appointments shared.AppointmentReader,
	offerings shared.OfferingReader,
	policy appointment.RefundPolicy,
	clk clock.Clock,
	settings Settings,
) AppointmentQueries {
	return &appointmentQueriesImpl{
		appointments: appointments,
		offerings:    offerings,
		policy:       policy,
		clock:        clk,
		location:     settings.Location,
	}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, caller actor.Actor, id uuid.UUID) (*AppointmentView, error) {
	a, _, err := LoadAppointment(ctx, q.appointments, q.offerings, caller, id)
	if err != nil {
		return nil, err
	}
	return NewAppointmentView(a), nil
}

// GetCancellationPreview quotes the refund a cancellation would produce now.
// The quote applies even when no payment was captured; nothing is changed.
func (q *appointmentQueriesImpl) GetCancellationPreview(ctx context.Context, caller actor.Actor, id uuid.UUID) (*CancellationPreview, error) {
	a, _, err := LoadAppointment(ctx, q.appointments, q.offerings, caller, id)
	if err != nil {
		return nil, err
	}
	quote := q.policy.Evaluate(a.Schedule().StartAt(q.location), q.clock.Now(), a.Total())
	return &CancellationPreview{
		HoursUntilAppointment: quote.HoursUntil,
		RefundPercentage:      quote.Percentage,
		PolicyTier:            quote.Tier,
		RefundAmount:          quote.Amount,
	}, nil
}
