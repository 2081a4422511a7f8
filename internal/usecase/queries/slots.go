package queries

import (
	"context"
	"time"

	"booking-engine/internal/domain/nearby"
	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/domain/slot"
	"booking-engine/internal/domain/slotlock"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotView struct {
	Start             string `json:"start"`
	End               string `json:"end"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

type DaySlotsView struct {
	Date  string     `json:"date"`
	Slots []SlotView `json:"slots"`
}

type FamilySlotView struct {
	Start             string      `json:"start"`
	End               string      `json:"end"`
	RemainingCapacity int         `json:"remainingCapacity"`
	OfferingIDs       []uuid.UUID `json:"offeringIds"`
}

type CheckSlotView struct {
	Available         bool                     `json:"available"`
	RemainingCapacity *int                     `json:"remainingCapacity,omitempty"`
	LockedUntil       *time.Time               `json:"lockedUntil,omitempty"`
	AlternativeSlots  []shared.AlternativeSlot `json:"alternativeSlots,omitempty"`
}

type CheckSlotParams struct {
	OfferingID uuid.UUID
	Date       recurrence.CivilDate
	Start      recurrence.TimeOfDay
	End        recurrence.TimeOfDay
	// Caller is the requesting holder; its own lock does not make the slot unavailable.
	Caller uuid.UUID
}

type Settings struct {
	Location        *time.Location
	NearbyDateCount int
	LookaheadMonths int
}

type SlotQueries interface {
	GetSlots(ctx context.Context, offeringID uuid.UUID, date recurrence.CivilDate, duration time.Duration) (*DaySlotsView, error)
	GetFamilySlots(ctx context.Context, serviceID uuid.UUID, date recurrence.CivilDate) ([]FamilySlotView, error)
	CheckSlot(ctx context.Context, params CheckSlotParams) (*CheckSlotView, error)
	NearbyDates(ctx context.Context, serviceID uuid.UUID, target recurrence.CivilDate) ([]recurrence.CivilDate, error)
}

type slotQueriesImpl struct {
	availability *Availability
	recurrence   shared.RecurrenceReader
	locks        shared.SlotLockStore
	clock        clock.Clock
	settings     Settings
}

func NewSlotQueries(
	availability *Availability,
	recurrence shared.RecurrenceReader,
	locks shared.SlotLockStore,
	clk clock.Clock,
	settings Settings,
) SlotQueries {
	return &slotQueriesImpl{
		availability: availability,
		recurrence:   recurrence,
		locks:        locks,
		clock:        clk,
		settings:     settings,
	}
}

func (q *slotQueriesImpl) GetSlots(ctx context.Context, offeringID uuid.UUID, date recurrence.CivilDate, duration time.Duration) (*DaySlotsView, error) {
	if duration < 0 || duration%time.Minute != 0 {
		return nil, shared.Validation(errInvalidDuration)
	}
	off, err := q.availability.Offering(ctx, offeringID)
	if err != nil {
		return nil, err
	}
	day, err := q.availability.Day(ctx, off, date, duration)
	if err != nil {
		return nil, err
	}

	available := day.Available()
	view := &DaySlotsView{Date: date.String(), Slots: make([]SlotView, 0, len(available))}
	for _, s := range available {
		view.Slots = append(view.Slots, SlotView{
			Start:             s.Start.String(),
			End:               s.End.String(),
			RemainingCapacity: s.RemainingCapacity,
		})
	}
	return view, nil
}

func (q *slotQueriesImpl) GetFamilySlots(ctx context.Context, serviceID uuid.UUID, date recurrence.CivilDate) ([]FamilySlotView, error) {
	family, err := q.availability.Family(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	byOffering := make(map[uuid.UUID][]slot.Slot, len(family))
	for _, off := range family {
		day, err := q.availability.Day(ctx, off, date, 0)
		if err != nil {
			return nil, err
		}
		byOffering[off.ID()] = day.Available()
	}

	merged := slot.MergeAcrossOfferings(byOffering)
	out := make([]FamilySlotView, 0, len(merged))
	for _, m := range merged {
		out = append(out, FamilySlotView{
			Start:             m.Start.String(),
			End:               m.End.String(),
			RemainingCapacity: m.RemainingCapacity,
			OfferingIDs:       m.OfferingIDs,
		})
	}
	return out, nil
}

func (q *slotQueriesImpl) CheckSlot(ctx context.Context, params CheckSlotParams) (*CheckSlotView, error) {
	key, err := slotlock.NewKey(params.OfferingID, params.Date, params.Start, params.End)
	if err != nil {
		return nil, shared.Validation(err)
	}
	off, err := q.availability.Offering(ctx, params.OfferingID)
	if err != nil {
		return nil, err
	}
	day, err := q.availability.Day(ctx, off, params.Date, key.End.Sub(key.Start))
	if err != nil {
		return nil, err
	}

	remaining, ok := day.Remaining(key.Start, key.End)
	if !ok || remaining <= 0 {
		return &CheckSlotView{Available: false, AlternativeSlots: day.Alternatives()}, nil
	}

	lock, err := q.locks.Get(ctx, key)
	if err != nil {
		return nil, shared.Internal(err, "read slot lock")
	}
	if lock != nil && !lock.IsHeldBy(params.Caller) {
		until := lock.ExpiresAt()
		return &CheckSlotView{Available: false, LockedUntil: &until, AlternativeSlots: day.Alternatives()}, nil
	}
	return &CheckSlotView{Available: true, RemainingCapacity: &remaining}, nil
}

func (q *slotQueriesImpl) NearbyDates(ctx context.Context, serviceID uuid.UUID, target recurrence.CivilDate) ([]recurrence.CivilDate, error) {
	family, err := q.availability.Family(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	var entries []recurrence.DateEntry
	first := target.AddMonths(-1)
	for i := 0; i <= q.settings.LookaheadMonths+1; i++ {
		month := first.AddMonths(i)
		for _, off := range family {
			got, err := q.recurrence.ListEntries(ctx, off.ID(), month.Month(), month.Year())
			if err != nil {
				return nil, shared.Internal(err, "list recurrence entries")
			}
			entries = append(entries, got...)
		}
	}

	today := recurrence.DateOf(q.clock.Now().In(q.settings.Location))
	return nearby.Find(entries, target, today, q.settings.NearbyDateCount), nil
}
