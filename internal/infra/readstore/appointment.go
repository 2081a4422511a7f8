package readstore

import (
	"context"
	"time"

	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/repository/converter"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AppointmentReadQueries interface {
	GetAppointmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var appointmentColumns = []string{
	"id", "offering_id", "customer_id", "slot_date", "start_time", "end_time",
	"status", "payment_status", "payment_method", "payment_intent_id",
	"total_minor", "currency", "status_reason", "cancelled_at",
	"refund_id", "refund_percentage", "refund_amount", "refund_status",
	"created_at", "updated_at",
}

// AppointmentReadStore serves committed appointments. Filtered listings are
// built with squirrel since every filter field is optional.
type AppointmentReadStore struct {
	queries AppointmentReadQueries
	db      sqlc.DBTX
	tz      string
}

func NewAppointmentReadStore(queries AppointmentReadQueries, db sqlc.DBTX, loc *time.Location) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
		tz:      loc.String(),
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return converter.AppointmentFromRow(row), nil
}

func (r *AppointmentReadStore) Find(ctx context.Context, filter shared.AppointmentFilter) ([]*appointment.Appointment, error) {
	query, args, err := r.buildFind(filter).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build appointment query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointments", err)
	}
	defer rows.Close()

	var out []*appointment.Appointment
	for rows.Next() {
		row, err := scanAppointment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		out = append(out, converter.AppointmentFromRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}
	return out, nil
}

func (r *AppointmentReadStore) buildFind(f shared.AppointmentFilter) squirrel.SelectBuilder {
	q := psql.Select(appointmentColumns...).From("appointments")

	if len(f.OfferingIDs) > 0 {
		q = q.Where(squirrel.Eq{"offering_id": f.OfferingIDs})
	}
	if f.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"slot_date": pgconv.DateToPgtype(*f.DateFrom)})
	}
	if f.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"slot_date": pgconv.DateToPgtype(*f.DateTo)})
	}
	if len(f.Statuses) > 0 {
		q = q.Where(squirrel.Eq{"status": statusStrings(f.Statuses)})
	}
	if len(f.ExcludeStatuses) > 0 {
		q = q.Where(squirrel.NotEq{"status": statusStrings(f.ExcludeStatuses)})
	}
	// Slot dates and times are wall clock values in the booking timezone.
	if f.StartsFrom != nil {
		q = q.Where("(slot_date + start_time) AT TIME ZONE ? >= ?", r.tz, *f.StartsFrom)
	}
	if f.StartsBefore != nil {
		q = q.Where("(slot_date + start_time) AT TIME ZONE ? < ?", r.tz, *f.StartsBefore)
	}
	if f.EndsBefore != nil {
		q = q.Where("(slot_date + end_time) AT TIME ZONE ? <= ?", r.tz, *f.EndsBefore)
	}

	q = q.OrderBy("slot_date ASC", "start_time ASC", "id ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	return q
}

func statusStrings(statuses []appointment.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

func scanAppointment(rows pgx.Rows) (sqlc.Appointments, error) {
	var i sqlc.Appointments
	err := rows.Scan(
		&i.ID,
		&i.OfferingID,
		&i.CustomerID,
		&i.SlotDate,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.PaymentStatus,
		&i.PaymentMethod,
		&i.PaymentIntentID,
		&i.TotalMinor,
		&i.Currency,
		&i.StatusReason,
		&i.CancelledAt,
		&i.RefundID,
		&i.RefundPercentage,
		&i.RefundAmount,
		&i.RefundStatus,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
