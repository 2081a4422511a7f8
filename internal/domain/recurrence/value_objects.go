package recurrence

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM between 00:00 and 24:00")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
)

const (
	DateLayout    = "2006-01-02"
	minutesPerDay = 24 * 60
)

// TimeOfDay is a wall-clock time expressed in minutes since midnight. 24:00 is
// representable so a window may end at midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	t := TimeOfDay(hour*60 + minute)
	if t > minutesPerDay {
		return 0, ErrInvalidTimeOfDay
	}
	return t, nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeOfDay
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidTimeOfDay
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return NewTimeOfDay(h, m)
}

func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Minute)
}

func (t TimeOfDay) Sub(other TimeOfDay) time.Duration {
	return time.Duration(t-other) * time.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidTimeOfDay
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// CivilDate is a calendar date without a location. It compares by calendar value.
type CivilDate struct {
	t time.Time
}

func NewCivilDate(year int, month time.Month, day int) CivilDate {
	return CivilDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t as observed in t's own location.
func DateOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return NewCivilDate(y, m, d)
}

func ParseDate(s string) (CivilDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CivilDate{}, ErrInvalidDate
	}
	return CivilDate{t: t}, nil
}

func MustDate(s string) CivilDate {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d CivilDate) Year() int         { return d.t.Year() }
func (d CivilDate) Month() time.Month { return d.t.Month() }
func (d CivilDate) Day() int          { return d.t.Day() }
func (d CivilDate) IsZero() bool      { return d.t.IsZero() }
func (d CivilDate) String() string    { return d.t.Format(DateLayout) }

func (d CivilDate) AddDays(n int) CivilDate {
	return CivilDate{t: d.t.AddDate(0, 0, n)}
}

// AddMonths moves to the first day of the month n months away.
func (d CivilDate) AddMonths(n int) CivilDate {
	return NewCivilDate(d.Year(), d.Month()+time.Month(n), 1)
}

func (d CivilDate) Before(o CivilDate) bool { return d.t.Before(o.t) }
func (d CivilDate) After(o CivilDate) bool  { return d.t.After(o.t) }
func (d CivilDate) Equal(o CivilDate) bool  { return d.t.Equal(o.t) }

func (d CivilDate) Compare(o CivilDate) int {
	return d.t.Compare(o.t)
}

// At combines the date with a wall-clock time in loc.
func (d CivilDate) At(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, tod.Minutes(), 0, 0, loc)
}

// Time returns midnight UTC of the date, the representation used for storage.
func (d CivilDate) Time() time.Time { return d.t }

func (d CivilDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *CivilDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
