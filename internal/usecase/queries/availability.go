package queries

import (
	"context"
	"time"

	"booking-engine/internal/domain/actor"
	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/domain/offering"
	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/domain/slot"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// Availability computes slots for one offering and date. Bookings are always
// re-read; nothing here caches remaining capacity.
type Availability struct {
	offerings    shared.OfferingReader
	recurrence   shared.RecurrenceReader
	appointments shared.AppointmentReader
}

func NewAvailability(
	offerings shared.OfferingReader,
	recurrence shared.RecurrenceReader,
	appointments shared.AppointmentReader,
) *Availability {
	return &Availability{
		offerings:    offerings,
		recurrence:   recurrence,
		appointments: appointments,
	}
}

type DaySlots struct {
	Offering  *offering.Offering
	Date      recurrence.CivilDate
	Generated []slot.Slot
	Booked    []slot.Booked
}

func (d *DaySlots) Available() []slot.Slot {
	return slot.ApplyAvailability(d.Generated, d.Booked)
}

// Remaining reports capacity left on the exact slot, false if it is not generated.
func (d *DaySlots) Remaining(start, end recurrence.TimeOfDay) (int, bool) {
	return slot.Remaining(d.Generated, d.Booked, start, end)
}

// WithBooked returns a copy that counts booked instead of the loaded bookings.
func (d *DaySlots) WithBooked(booked []slot.Booked) *DaySlots {
	cp := *d
	cp.Booked = booked
	return &cp
}

func (d *DaySlots) Alternatives() []shared.AlternativeSlot {
	available := d.Available()
	out := make([]shared.AlternativeSlot, 0, len(available))
	for _, s := range available {
		out = append(out, shared.AlternativeSlot{
			Start:             s.Start.String(),
			End:               s.End.String(),
			RemainingCapacity: s.RemainingCapacity,
		})
	}
	return out
}

func (a *Availability) Offering(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	off, err := a.offerings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrOfferingNotFound
		}
		return nil, shared.Internal(err, "load offering")
	}
	if !off.IsActive() {
		return nil, shared.ErrOfferingNotFound
	}
	return off, nil
}

// Family returns the active offerings of a service.
func (a *Availability) Family(ctx context.Context, serviceID uuid.UUID) ([]*offering.Offering, error) {
	all, err := a.offerings.ListByService(ctx, serviceID)
	if err != nil {
		return nil, shared.Internal(err, "list service offerings")
	}
	var active []*offering.Offering
	for _, o := range all {
		if o.IsActive() {
			active = append(active, o)
		}
	}
	if len(active) == 0 {
		return nil, shared.ErrServiceNotFound
	}
	return active, nil
}

// Entry returns the merged recurrence entry of date; ok is false when the
// offering defines nothing for it.
func (a *Availability) Entry(ctx context.Context, offeringID uuid.UUID, date recurrence.CivilDate) (recurrence.DateEntry, bool, error) {
	entries, err := a.recurrence.ListEntries(ctx, offeringID, date.Month(), date.Year())
	if err != nil {
		return recurrence.DateEntry{}, false, shared.Internal(err, "list recurrence entries")
	}
	def := recurrence.Definition{OfferingID: offeringID, Month: date.Month(), Year: date.Year(), Entries: entries}
	entry, ok := def.EntryFor(date)
	return entry, ok, nil
}

func (a *Availability) Day(ctx context.Context, off *offering.Offering, date recurrence.CivilDate, duration time.Duration) (*DaySlots, error) {
	day := &DaySlots{Offering: off, Date: date}

	entry, ok, err := a.Entry(ctx, off.ID(), date)
	if err != nil {
		return nil, err
	}
	if !ok {
		return day, nil
	}
	day.Generated = slot.Generate(off.ID(), entry, off.SlotDuration(duration))
	if len(day.Generated) == 0 {
		return day, nil
	}

	booked, err := a.appointments.Find(ctx, shared.AppointmentFilter{
		OfferingIDs:     []uuid.UUID{off.ID()},
		DateFrom:        &date,
		DateTo:          &date,
		ExcludeStatuses: []appointment.Status{appointment.StatusCancelled},
	})
	if err != nil {
		return nil, shared.Internal(err, "find booked appointments")
	}
	intervals := make([]slot.Interval, 0, len(booked))
	for _, b := range booked {
		s := b.Schedule()
		intervals = append(intervals, slot.Interval{Start: s.Start, End: s.End})
	}
	day.Booked = slot.AggregateBooked(intervals)
	return day, nil
}

// LoadAppointment fetches an appointment the caller may see: its customer, the
// vendor of its offering, or an admin.
func LoadAppointment(
	ctx context.Context,
	appointments shared.AppointmentReader,
	offerings shared.OfferingReader,
	caller actor.Actor,
	id uuid.UUID,
) (*appointment.Appointment, *offering.Offering, error) {
	a, err := appointments.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, shared.ErrAppointmentNotFound
		}
		return nil, nil, shared.Internal(err, "load appointment")
	}
	off, err := offerings.FindByID(ctx, a.OfferingID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(errs.Wrap(err, "appointment offering missing"), shared.ErrInternal)
		}
		return nil, nil, shared.Internal(err, "load appointment offering")
	}
	if !caller.CanActFor(a.CustomerID()) && !(caller.Role == actor.RoleVendor && off.IsOwnedBy(caller.ID)) {
		return nil, nil, shared.ErrNotPermitted
	}
	return a, off, nil
}
