package appointment

import (
	"time"
)

type RefundTier struct {
	Name       string
	MinHours   float64
	Percentage int
}

const TierNone = "none"

// RefundPolicy is a step function over hours until the appointment starts.
// Tiers are ordered by descending MinHours.
type RefundPolicy struct {
	tiers []RefundTier
}

func DefaultRefundPolicy() RefundPolicy {
	return RefundPolicy{tiers: []RefundTier{
		{Name: "full", MinHours: 24, Percentage: 100},
		{Name: "partial_75", MinHours: 12, Percentage: 75},
		{Name: "partial_50", MinHours: 2, Percentage: 50},
	}}
}

type RefundQuote struct {
	HoursUntil float64
	Percentage int
	Tier       string
	Amount     int64
}

// IsFull reports a 100% refund, which is requested without an explicit amount.
func (q RefundQuote) IsFull() bool {
	return q.Percentage == 100
}

func (q RefundQuote) ExplicitAmount() *int64 {
	if q.IsFull() || q.Percentage == 0 {
		return nil
	}
	amount := q.Amount
	return &amount
}

func (p RefundPolicy) Evaluate(startAt, now time.Time, total int64) RefundQuote {
	hours := startAt.Sub(now).Hours()
	quote := RefundQuote{HoursUntil: hours, Tier: TierNone}
	for _, t := range p.tiers {
		if hours >= t.MinHours {
			quote.Percentage = t.Percentage
			quote.Tier = t.Name
			break
		}
	}
	quote.Amount = total * int64(quote.Percentage) / 100
	return quote
}
