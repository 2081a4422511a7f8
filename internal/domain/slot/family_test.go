//go:build unit

package slot_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAcrossOfferings(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	merged := slot.MergeAcrossOfferings(map[uuid.UUID][]slot.Slot{
		b: slot.Generate(b, entry(1, win("09:30", "10:30", nil)), 30*time.Minute),
		a: slot.Generate(a, entry(2, win("09:00", "10:00", nil)), 30*time.Minute),
	})

	require.Len(t, merged, 3)

	assert.Equal(t, "09:00", merged[0].Start.String())
	assert.Equal(t, 2, merged[0].RemainingCapacity)
	assert.Equal(t, []uuid.UUID{a}, merged[0].OfferingIDs)

	assert.Equal(t, "09:30", merged[1].Start.String())
	assert.Equal(t, "10:00", merged[1].End.String())
	assert.Equal(t, 3, merged[1].RemainingCapacity)
	assert.Equal(t, []uuid.UUID{a, b}, merged[1].OfferingIDs)

	assert.Equal(t, "10:00", merged[2].Start.String())
	assert.Equal(t, []uuid.UUID{b}, merged[2].OfferingIDs)
}

func TestMergeAcrossOfferingsOrdersByEndOnTie(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	merged := slot.MergeAcrossOfferings(map[uuid.UUID][]slot.Slot{
		a: slot.Generate(a, entry(1, win("09:00", "10:00", nil)), time.Hour),
		b: slot.Generate(b, entry(1, win("09:00", "10:00", nil)), 30*time.Minute),
	})

	require.Len(t, merged, 3)
	assert.Equal(t, "09:30", merged[0].End.String())
	assert.Equal(t, "10:00", merged[1].End.String())
	assert.Equal(t, "09:30", merged[2].Start.String())
}
