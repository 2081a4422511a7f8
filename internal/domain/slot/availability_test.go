//go:build unit

package slot_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/slot"
	"booking-engine/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func interval(start, end string) slot.Interval {
	return slot.Interval{Start: tod(start), End: tod(end)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name       string
		a, b       slot.Interval
		overlapped bool
	}{
		{"identical", interval("09:00", "09:30"), interval("09:00", "09:30"), true},
		{"b contained in a", interval("09:00", "10:00"), interval("09:15", "09:45"), true},
		{"a contained in b", interval("09:15", "09:45"), interval("09:00", "10:00"), true},
		{"b starts inside a", interval("09:00", "09:30"), interval("09:15", "09:45"), true},
		{"b ends inside a", interval("09:15", "09:45"), interval("09:00", "09:30"), true},
		{"b touches a end", interval("09:00", "09:30"), interval("09:30", "10:00"), false},
		{"b touches a start", interval("09:30", "10:00"), interval("09:00", "09:30"), false},
		{"disjoint", interval("09:00", "09:30"), interval("11:00", "11:30"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlapped, slot.Overlaps(tt.a.Start, tt.a.End, tt.b.Start, tt.b.End))
			assert.Equal(t, tt.overlapped, slot.Overlaps(tt.b.Start, tt.b.End, tt.a.Start, tt.a.End))
		})
	}
}

func TestAggregateBooked(t *testing.T) {
	got := slot.AggregateBooked([]slot.Interval{
		interval("09:00", "09:30"),
		interval("10:00", "10:30"),
		interval("09:00", "09:30"),
	})

	want := []slot.Booked{
		{Start: tod("09:00"), End: tod("09:30"), Count: 2},
		{Start: tod("10:00"), End: tod("10:30"), Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AggregateBooked() mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, slot.AggregateBooked(nil))
}

func TestApplyAvailability(t *testing.T) {
	offeringID := uuid.New()

	tests := []struct {
		name   string
		slots  []slot.Slot
		booked []slot.Booked
		want   []view
	}{
		{
			name:   "confirmed appointment removes its slot",
			slots:  slot.Generate(offeringID, entry(1, win("09:00", "10:00", nil)), 30*time.Minute),
			booked: slot.AggregateBooked([]slot.Interval{interval("09:00", "09:30")}),
			want:   []view{{"09:30", "10:00", 1}},
		},
		{
			name:   "partial capacity remains",
			slots:  slot.Generate(offeringID, entry(3, win("09:00", "10:00", nil)), time.Hour),
			booked: slot.AggregateBooked([]slot.Interval{interval("09:00", "10:00"), interval("09:00", "10:00")}),
			want:   []view{{"09:00", "10:00", 1}},
		},
		{
			name:   "longer booking overlaps several slots",
			slots:  slot.Generate(offeringID, entry(1, win("09:00", "11:00", nil)), 30*time.Minute),
			booked: slot.AggregateBooked([]slot.Interval{interval("09:15", "10:15")}),
			want:   []view{{"10:30", "11:00", 1}},
		},
		{
			name:   "zero capacity window dropped",
			slots:  slot.Generate(offeringID, entry(1, win("09:00", "10:00", ptr.Of(0))), 30*time.Minute),
			booked: nil,
			want:   []view{},
		},
		{
			name:   "duplicate slots each deducted",
			slots:  slot.Generate(offeringID, entry(2, win("09:00", "10:00", nil), win("09:00", "10:00", nil)), time.Hour),
			booked: slot.AggregateBooked([]slot.Interval{interval("09:00", "10:00")}),
			want:   []view{{"09:00", "10:00", 1}, {"09:00", "10:00", 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slot.ApplyAvailability(tt.slots, tt.booked)
			if diff := cmp.Diff(tt.want, views(got), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ApplyAvailability() mismatch (-want +got):\n%s", diff)
			}
			for _, s := range got {
				assert.Positive(t, s.RemainingCapacity)
			}
		})
	}
}

func TestApplyAvailabilityIsIdempotent(t *testing.T) {
	slots := slot.Generate(uuid.New(), entry(2, win("09:00", "12:00", nil)), 45*time.Minute)
	booked := slot.AggregateBooked([]slot.Interval{interval("09:00", "09:45")})

	first := slot.ApplyAvailability(slots, booked)
	second := slot.ApplyAvailability(slots, booked)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, slots[0].RemainingCapacity, "input must not be mutated")
}

func TestRemaining(t *testing.T) {
	slots := slot.Generate(uuid.New(), entry(1, win("09:00", "10:00", nil)), 30*time.Minute)
	booked := slot.AggregateBooked([]slot.Interval{interval("09:00", "09:30")})

	remaining, ok := slot.Remaining(slots, booked, tod("09:00"), tod("09:30"))
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)

	remaining, ok = slot.Remaining(slots, booked, tod("09:30"), tod("10:00"))
	assert.True(t, ok)
	assert.Equal(t, 1, remaining)

	_, ok = slot.Remaining(slots, booked, tod("12:00"), tod("12:30"))
	assert.False(t, ok)
}
