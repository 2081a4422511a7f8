package slot

import (
	"slices"
	"strings"

	"booking-engine/internal/domain/recurrence"

	"github.com/google/uuid"
)

// FamilySlot is one interval offered by one or more offerings of the same service.
type FamilySlot struct {
	Start             recurrence.TimeOfDay
	End               recurrence.TimeOfDay
	RemainingCapacity int
	OfferingIDs       []uuid.UUID
}

// MergeAcrossOfferings combines available slots of several offerings, ordered by
// start then end. Identical intervals collapse into one record with summed capacity.
func MergeAcrossOfferings(byOffering map[uuid.UUID][]Slot) []FamilySlot {
	index := make(map[Interval]int)
	var out []FamilySlot
	for offeringID, slots := range byOffering {
		for _, s := range slots {
			key := Interval{Start: s.Start, End: s.End}
			i, ok := index[key]
			if !ok {
				index[key] = len(out)
				out = append(out, FamilySlot{Start: s.Start, End: s.End})
				i = len(out) - 1
			}
			out[i].RemainingCapacity += s.RemainingCapacity
			if !slices.Contains(out[i].OfferingIDs, offeringID) {
				out[i].OfferingIDs = append(out[i].OfferingIDs, offeringID)
			}
		}
	}

	for i := range out {
		slices.SortFunc(out[i].OfferingIDs, func(a, b uuid.UUID) int {
			return strings.Compare(a.String(), b.String())
		})
	}
	slices.SortFunc(out, func(a, b FamilySlot) int {
		if a.Start != b.Start {
			return int(a.Start) - int(b.Start)
		}
		return int(a.End) - int(b.End)
	})
	return out
}
