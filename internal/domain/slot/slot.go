package slot

import (
	"time"

	"booking-engine/internal/domain/recurrence"

	"github.com/google/uuid"
)

// Slot is a fixed-length candidate interval derived from a time window. It has
// no identity beyond its (Start, End) pair; identical windows produce duplicates.
type Slot struct {
	Index             int
	OfferingID        uuid.UUID
	Start             recurrence.TimeOfDay
	End               recurrence.TimeOfDay
	RemainingCapacity int
}

func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

func (s Slot) Matches(start, end recurrence.TimeOfDay) bool {
	return s.Start == start && s.End == end
}

// Generate expands every window of entry into consecutive duration-sized slots.
// A trailing remainder shorter than duration is dropped.
func Generate(offeringID uuid.UUID, entry recurrence.DateEntry, duration time.Duration) []Slot {
	step := int(duration / time.Minute)
	if step <= 0 {
		return nil
	}

	var slots []Slot
	for _, w := range entry.TimeWindows {
		capacity := w.EffectiveCapacity(entry.DefaultCapacity)
		for cursor := w.Start; int(cursor)+step <= int(w.End); cursor += recurrence.TimeOfDay(step) {
			slots = append(slots, Slot{
				Index:             len(slots),
				OfferingID:        offeringID,
				Start:             cursor,
				End:               cursor + recurrence.TimeOfDay(step),
				RemainingCapacity: capacity,
			})
		}
	}
	return slots
}

// Find returns the first slot exactly matching [start, end).
func Find(slots []Slot, start, end recurrence.TimeOfDay) (Slot, bool) {
	for _, s := range slots {
		if s.Matches(start, end) {
			return s, true
		}
	}
	return Slot{}, false
}
