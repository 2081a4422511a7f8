package request

import (
	"strings"

	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/usecase/commands"
)

type CreateAppointmentRequest struct {
	SlotKeyRequest
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=card cash"`
}

func (r CreateAppointmentRequest) ToParams(idempotencyKey string) (commands.CreateAppointmentParams, error) {
	key, err := r.SlotKeyRequest.ToParams()
	if err != nil {
		return commands.CreateAppointmentParams{}, err
	}
	return commands.CreateAppointmentParams{
		OfferingID:     key.OfferingID,
		Date:           key.Date,
		Start:          key.Start,
		End:            key.End,
		PaymentMethod:  appointment.PaymentMethod(r.PaymentMethod),
		IdempotencyKey: strings.TrimSpace(idempotencyKey),
	}, nil
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type RescheduleRequest struct {
	Date  string `json:"date" binding:"required,datetime=2006-01-02"`
	Start string `json:"start" binding:"required,len=5"`
	End   string `json:"end" binding:"required,len=5"`
}

func (r RescheduleRequest) ToParams() (commands.RescheduleParams, error) {
	date, start, end, err := parseSlot(r.Date, r.Start, r.End)
	if err != nil {
		return commands.RescheduleParams{}, err
	}
	return commands.RescheduleParams{Date: date, Start: start, End: end}, nil
}

type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=missed failed"`
	Reason string `json:"reason" binding:"required,max=500"`
}

func (r OverrideStatusRequest) ToStatus() appointment.Status {
	return appointment.Status(r.Status)
}
