package slot

import (
	"booking-engine/internal/domain/recurrence"
)

type Interval struct {
	Start recurrence.TimeOfDay
	End   recurrence.TimeOfDay
}

// Booked is the number of live appointments sharing one exact interval.
type Booked struct {
	Start recurrence.TimeOfDay
	End   recurrence.TimeOfDay
	Count int
}

// AggregateBooked groups intervals by exact (start, end), keeping first-seen order.
// Callers pass only non-cancelled appointments.
func AggregateBooked(intervals []Interval) []Booked {
	index := make(map[Interval]int, len(intervals))
	var out []Booked
	for _, iv := range intervals {
		if i, ok := index[iv]; ok {
			out[i].Count++
			continue
		}
		index[iv] = len(out)
		out = append(out, Booked{Start: iv.Start, End: iv.End, Count: 1})
	}
	return out
}

// Overlaps reports whether half-open intervals [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd recurrence.TimeOfDay) bool {
	return !(aEnd <= bStart || bEnd <= aStart)
}

// ApplyAvailability deducts every overlapping booking from each slot and drops
// slots left without capacity. The input slice is not modified.
func ApplyAvailability(slots []Slot, booked []Booked) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		remaining := s.RemainingCapacity
		for _, b := range booked {
			if Overlaps(s.Start, s.End, b.Start, b.End) {
				remaining -= b.Count
			}
		}
		if remaining <= 0 {
			continue
		}
		s.RemainingCapacity = remaining
		out = append(out, s)
	}
	return out
}

// Remaining is the capacity left for the exact slot [start, end), or false when
// the slot is not generated at all.
func Remaining(slots []Slot, booked []Booked, start, end recurrence.TimeOfDay) (int, bool) {
	s, ok := Find(slots, start, end)
	if !ok {
		return 0, false
	}
	remaining := s.RemainingCapacity
	for _, b := range booked {
		if Overlaps(s.Start, s.End, b.Start, b.End) {
			remaining -= b.Count
		}
	}
	return remaining, true
}
