package nearby

import (
	"slices"

	"booking-engine/internal/domain/recurrence"
)

// Find returns alternative dates around target: at most one date before it and
// enough dates after it to reach total. Only dates with at least one non-empty
// window qualify; remaining capacity is not considered.
//
// The earlier date is never before today and is skipped entirely when target is
// today or tomorrow.
func Find(entries []recurrence.DateEntry, target, today recurrence.CivilDate, total int) []recurrence.CivilDate {
	if total <= 0 {
		return nil
	}

	dates := candidateDates(entries, today)

	var out []recurrence.CivilDate
	if target.After(today.AddDays(1)) {
		for i := len(dates) - 1; i >= 0; i-- {
			if dates[i].Before(target) {
				out = append(out, dates[i])
				break
			}
		}
	}

	for _, d := range dates {
		if len(out) >= total {
			break
		}
		if d.After(target) {
			out = append(out, d)
		}
	}
	return out
}

func candidateDates(entries []recurrence.DateEntry, today recurrence.CivilDate) []recurrence.CivilDate {
	var dates []recurrence.CivilDate
	for _, e := range entries {
		if !e.HasWindows() || e.Date.Before(today) {
			continue
		}
		dates = append(dates, e.Date)
	}
	slices.SortFunc(dates, recurrence.CivilDate.Compare)
	return slices.CompactFunc(dates, recurrence.CivilDate.Equal)
}
