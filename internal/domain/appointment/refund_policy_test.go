//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
)

func TestRefundPolicyEvaluate(t *testing.T) {
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	policy := appointment.DefaultRefundPolicy()

	hoursBefore := func(h float64) time.Time {
		return start.Add(-time.Duration(h * float64(time.Hour)))
	}

	tests := []struct {
		name       string
		hours      float64
		percentage int
		tier       string
		amount     int64
	}{
		{"well ahead", 72, 100, "full", 100},
		{"exactly 24h", 24, 100, "full", 100},
		{"just under 24h", 23.99, 75, "partial_75", 75},
		{"exactly 12h", 12, 75, "partial_75", 75},
		{"just under 12h", 11.99, 50, "partial_50", 50},
		{"five hours", 5, 50, "partial_50", 50},
		{"exactly 2h", 2, 50, "partial_50", 50},
		{"just under 2h", 1.99, 0, "none", 0},
		{"already started", -1, 0, "none", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := policy.Evaluate(start, hoursBefore(tt.hours), 100)
			assert.Equal(t, tt.percentage, q.Percentage)
			assert.Equal(t, tt.tier, q.Tier)
			assert.Equal(t, tt.amount, q.Amount)
			assert.InDelta(t, tt.hours, q.HoursUntil, 0.001)
		})
	}
}

func TestRefundPolicyIsMonotonic(t *testing.T) {
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	policy := appointment.DefaultRefundPolicy()

	prev := int64(1 << 62)
	for minutes := 72 * 60; minutes >= -60; minutes -= 7 {
		q := policy.Evaluate(start, start.Add(-time.Duration(minutes)*time.Minute), 12345)
		assert.LessOrEqual(t, q.Amount, prev)
		assert.Contains(t, []int{100, 75, 50, 0}, q.Percentage)
		prev = q.Amount
	}
}

func TestRefundQuoteExplicitAmount(t *testing.T) {
	assert.Nil(t, appointment.RefundQuote{Percentage: 100, Amount: 100}.ExplicitAmount())
	assert.Nil(t, appointment.RefundQuote{Percentage: 0}.ExplicitAmount())

	amount := appointment.RefundQuote{Percentage: 75, Amount: 75}.ExplicitAmount()
	if assert.NotNil(t, amount) {
		assert.Equal(t, int64(75), *amount)
	}
}

func TestRefundAmountRoundsDown(t *testing.T) {
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	q := appointment.DefaultRefundPolicy().Evaluate(start, start.Add(-13*time.Hour), 999)

	assert.Equal(t, int64(749), q.Amount)
}
