package repository

import (
	"context"

	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/domain/slot"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/repository/converter"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) error
	UpdateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentParams) (int64, error)
	ListBookedIntervals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedIntervalsParams) ([]sqlc.ListBookedIntervalsRow, error)
	LockSlotDay(ctx context.Context, db sqlc.DBTX, lockKey string) error
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

// GuardSlotDay takes a transaction-scoped advisory lock; it is a no-op
// outside a transaction since the lock is released with the statement.
func (r *AppointmentRepository) GuardSlotDay(ctx context.Context, offeringID uuid.UUID, date recurrence.CivilDate) error {
	if err := r.queries.LockSlotDay(ctx, r.db, converter.SlotDayLockKey(offeringID.String(), date)); err != nil {
		return infra.WrapRepoErr("failed to lock slot day", err)
	}
	return nil
}

func (r *AppointmentRepository) ListBooked(ctx context.Context, offeringID uuid.UUID, date recurrence.CivilDate, exclude uuid.UUID) ([]slot.Interval, error) {
	rows, err := r.queries.ListBookedIntervals(ctx, r.db, sqlc.ListBookedIntervalsParams{
		OfferingID: offeringID,
		SlotDate:   pgconv.DateToPgtype(date),
		ID:         exclude,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked intervals", err)
	}

	out := make([]slot.Interval, len(rows))
	for i, row := range rows {
		out[i] = slot.Interval{
			Start: pgconv.TimeOfDayFromPgtype(row.StartTime),
			End:   pgconv.TimeOfDayFromPgtype(row.EndTime),
		}
	}
	return out, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) error {
	if err := r.queries.CreateAppointment(ctx, r.db, converter.AppointmentToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) Save(ctx context.Context, a *appointment.Appointment, from []appointment.Status) error {
	n, err := r.queries.UpdateAppointment(ctx, r.db, converter.AppointmentToUpdateParams(a, from))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
