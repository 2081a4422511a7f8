package recurrence

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeCapacity = errors.New("capacity cannot be negative")
	ErrEmptyWindow      = errors.New("time window start must be before end")
	ErrDateOutsideMonth = errors.New("date is outside the definition month")
)

// TimeWindow is one bookable range on a date. A nil Capacity falls back to the
// entry's DefaultCapacity.
type TimeWindow struct {
	Start    TimeOfDay `json:"start"`
	End      TimeOfDay `json:"end"`
	Capacity *int      `json:"capacity,omitempty"`
}

func (w TimeWindow) IsEmpty() bool {
	return w.Start >= w.End
}

func (w TimeWindow) Validate() error {
	if w.IsEmpty() {
		return ErrEmptyWindow
	}
	if w.Capacity != nil && *w.Capacity < 0 {
		return ErrNegativeCapacity
	}
	return nil
}

// EffectiveCapacity resolves the window capacity against the date default.
func (w TimeWindow) EffectiveCapacity(defaultCapacity int) int {
	if w.Capacity != nil {
		return *w.Capacity
	}
	return defaultCapacity
}

// DateEntry holds the windows defined for one calendar date. Windows may overlap.
type DateEntry struct {
	Date            CivilDate    `json:"date"`
	DefaultCapacity int          `json:"defaultCapacity"`
	TimeWindows     []TimeWindow `json:"timeWindows"`
}

func (e DateEntry) HasWindows() bool {
	for _, w := range e.TimeWindows {
		if !w.IsEmpty() {
			return true
		}
	}
	return false
}

func (e DateEntry) Validate() error {
	if e.DefaultCapacity < 0 {
		return ErrNegativeCapacity
	}
	for i, w := range e.TimeWindows {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("%s window %d: %w", e.Date, i, err)
		}
	}
	return nil
}

// Definition is the availability of one offering for one month.
type Definition struct {
	OfferingID uuid.UUID
	Month      time.Month
	Year       int
	Entries    []DateEntry
}

func (d Definition) Validate() error {
	for _, e := range d.Entries {
		if e.Date.Year() != d.Year || e.Date.Month() != d.Month {
			return fmt.Errorf("%s: %w", e.Date, ErrDateOutsideMonth)
		}
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// EntryFor returns the entry for date. Several entries for the same date are
// concatenated in definition order.
func (d Definition) EntryFor(date CivilDate) (DateEntry, bool) {
	var (
		out   DateEntry
		found bool
	)
	for _, e := range d.Entries {
		if !e.Date.Equal(date) {
			continue
		}
		if !found {
			out = DateEntry{Date: e.Date, DefaultCapacity: e.DefaultCapacity}
			found = true
		}
		for _, w := range e.TimeWindows {
			if w.Capacity == nil {
				c := e.DefaultCapacity
				w.Capacity = &c
			}
			out.TimeWindows = append(out.TimeWindows, w)
		}
	}
	return out, found
}
