package converter

import (
	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/domain/slotlock"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	s := a.Schedule()
	return sqlc.CreateAppointmentParams{
		ID:              a.ID(),
		OfferingID:      a.OfferingID(),
		CustomerID:      a.CustomerID(),
		SlotDate:        pgconv.DateToPgtype(s.Date),
		StartTime:       pgconv.TimeOfDayToPgtype(s.Start),
		EndTime:         pgconv.TimeOfDayToPgtype(s.End),
		Status:          a.Status().String(),
		PaymentStatus:   string(a.PaymentStatus()),
		PaymentMethod:   a.PaymentMethod().String(),
		PaymentIntentID: pgconv.StringPtrToPgtype(a.PaymentIntentID()),
		TotalMinor:      a.Total(),
		Currency:        a.Currency(),
		CreatedAt:       pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentToUpdateParams(a *appointment.Appointment, from []appointment.Status) sqlc.UpdateAppointmentParams {
	s := a.Schedule()
	params := sqlc.UpdateAppointmentParams{
		ID:              a.ID(),
		SlotDate:        pgconv.DateToPgtype(s.Date),
		StartTime:       pgconv.TimeOfDayToPgtype(s.Start),
		EndTime:         pgconv.TimeOfDayToPgtype(s.End),
		Status:          a.Status().String(),
		PaymentStatus:   string(a.PaymentStatus()),
		PaymentIntentID: pgconv.StringPtrToPgtype(a.PaymentIntentID()),
		StatusReason:    pgconv.StringPtrToPgtype(a.StatusReason()),
		CancelledAt:     pgconv.TimePtrToPgtype(a.CancelledAt()),
		UpdatedAt:       pgconv.TimeToPgtype(a.UpdatedAt()),
		FromStatuses:    make([]string, len(from)),
	}
	for i, st := range from {
		params.FromStatuses[i] = st.String()
	}

	if r := a.Refund(); r != nil {
		if r.ID != "" {
			params.RefundID = pgtype.Text{String: r.ID, Valid: true}
		}
		params.RefundPercentage = pgtype.Int4{Int32: int32(r.Percentage), Valid: true} // #nosec G115 -- percentage is 0..100
		params.RefundAmount = pgtype.Int8{Int64: r.Amount, Valid: true}
		params.RefundStatus = pgtype.Text{String: r.Status, Valid: r.Status != ""}
	}
	return params
}

func AppointmentFromRow(row sqlc.Appointments) *appointment.Appointment {
	snap := appointment.Snapshot{
		ID:         row.ID,
		OfferingID: row.OfferingID,
		CustomerID: row.CustomerID,
		Schedule: appointment.Schedule{
			Date:  pgconv.DateFromPgtype(row.SlotDate),
			Start: pgconv.TimeOfDayFromPgtype(row.StartTime),
			End:   pgconv.TimeOfDayFromPgtype(row.EndTime),
		},
		Status:          appointment.Status(row.Status),
		PaymentStatus:   appointment.PaymentStatus(row.PaymentStatus),
		PaymentMethod:   appointment.PaymentMethod(row.PaymentMethod),
		PaymentIntentID: pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		Total:           row.TotalMinor,
		Currency:        row.Currency,
		StatusReason:    pgconv.StringPtrFromPgtype(row.StatusReason),
		CancelledAt:     pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.RefundPercentage.Valid {
		snap.Refund = &appointment.Refund{
			ID:         row.RefundID.String,
			Percentage: int(row.RefundPercentage.Int32),
			Amount:     row.RefundAmount.Int64,
			Status:     row.RefundStatus.String,
		}
	}
	return appointment.Reconstruct(snap)
}

func SlotLockToAcquireParams(l *slotlock.Lock) sqlc.AcquireSlotLockParams {
	k := l.Key()
	return sqlc.AcquireSlotLockParams{
		ID:         l.ID(),
		OfferingID: k.OfferingID,
		SlotDate:   pgconv.DateToPgtype(k.Date),
		StartTime:  pgconv.TimeOfDayToPgtype(k.Start),
		EndTime:    pgconv.TimeOfDayToPgtype(k.End),
		HeldBy:     l.HeldBy(),
		CreatedAt:  pgconv.TimeToPgtype(l.CreatedAt()),
		ExpiresAt:  pgconv.TimeToPgtype(l.ExpiresAt()),
	}
}

func SlotLockFromRow(row sqlc.SlotLocks) *slotlock.Lock {
	key := slotlock.Key{
		OfferingID: row.OfferingID,
		Date:       pgconv.DateFromPgtype(row.SlotDate),
		Start:      pgconv.TimeOfDayFromPgtype(row.StartTime),
		End:        pgconv.TimeOfDayFromPgtype(row.EndTime),
	}
	return slotlock.Reconstruct(row.ID, key, row.HeldBy, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.ExpiresAt))
}

// SlotDayLockKey names the advisory lock serialising writers of one offering's day.
func SlotDayLockKey(offeringID string, date recurrence.CivilDate) string {
	return "slot-day:" + offeringID + ":" + date.String()
}
