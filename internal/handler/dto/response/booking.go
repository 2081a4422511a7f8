package response

import (
	"time"

	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type LockResponse struct {
	LockID     uuid.UUID `json:"lockId"`
	OfferingID uuid.UUID `json:"offeringId"`
	Date       string    `json:"date"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Reacquired bool      `json:"reacquired"`
}

func FromLockResult(r *commands.LockResult) *LockResponse {
	return &LockResponse{
		LockID:     r.LockID,
		OfferingID: r.Key.OfferingID,
		Date:       r.Key.Date.String(),
		Start:      r.Key.Start.String(),
		End:        r.Key.End.String(),
		ExpiresAt:  r.ExpiresAt,
		Reacquired: r.Reacquired,
	}
}

type ReleaseAllResponse struct {
	Released int `json:"released"`
}

type PaymentResponse struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
}

type CreateAppointmentResponse struct {
	Appointment *queries.AppointmentView `json:"appointment"`
	Payment     *PaymentResponse         `json:"payment,omitempty"`
}

func FromCreateResult(r *commands.CreateAppointmentResult) *CreateAppointmentResponse {
	resp := &CreateAppointmentResponse{Appointment: r.Appointment}
	if r.Payment != nil {
		resp.Payment = &PaymentResponse{IntentID: r.Payment.ID, ClientSecret: r.Payment.ClientSecret}
	}
	return resp
}

type CancelAppointmentResponse struct {
	Appointment *queries.AppointmentView `json:"appointment"`
	Refund      queries.RefundView       `json:"refund"`
}

func FromCancelResult(r *commands.CancelAppointmentResult) *CancelAppointmentResponse {
	return &CancelAppointmentResponse{Appointment: r.Appointment, Refund: r.Refund}
}

// DaySlotsResponse keys the slot list by its date.
type DaySlotsResponse map[string][]queries.SlotView

func FromDaySlots(v *queries.DaySlotsView) DaySlotsResponse {
	slots := v.Slots
	if slots == nil {
		slots = []queries.SlotView{}
	}
	return DaySlotsResponse{v.Date: slots}
}

type NearbyDatesResponse struct {
	Dates []string `json:"dates"`
}

func FromDates(dates []recurrence.CivilDate) *NearbyDatesResponse {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return &NearbyDatesResponse{Dates: out}
}
