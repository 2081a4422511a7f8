//go:build unit || e2e

package builder

import (
	"time"

	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/domain/slotlock"
	reqdto "booking-engine/internal/handler/dto/request"

	"github.com/google/uuid"
)

type SlotLockBuilder struct {
	ID         uuid.UUID
	OfferingID uuid.UUID
	Date       string
	Start      string
	End        string
	HeldBy     uuid.UUID
	CreatedAt  time.Time
	TTL        time.Duration
}

func NewSlotLockBuilder() *SlotLockBuilder {
	return &SlotLockBuilder{
		ID:         uuid.New(),
		OfferingID: uuid.New(),
		Date:       "2024-06-01",
		Start:      "09:00",
		End:        "09:30",
		HeldBy:     uuid.New(),
		CreatedAt:  time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC),
		TTL:        10 * time.Minute,
	}
}

func (b *SlotLockBuilder) With(mutate func(*SlotLockBuilder)) *SlotLockBuilder {
	mutate(b)
	return b
}

func (b *SlotLockBuilder) Key() slotlock.Key {
	return slotlock.Key{
		OfferingID: b.OfferingID,
		Date:       recurrence.MustDate(b.Date),
		Start:      recurrence.MustTimeOfDay(b.Start),
		End:        recurrence.MustTimeOfDay(b.End),
	}
}

func (b *SlotLockBuilder) BuildDomain() *slotlock.Lock {
	return slotlock.Reconstruct(b.ID, b.Key(), b.HeldBy, b.CreatedAt, b.CreatedAt.Add(b.TTL))
}

func (b *SlotLockBuilder) BuildRequestDTO() reqdto.SlotKeyRequest {
	return reqdto.SlotKeyRequest{
		OfferingID: b.OfferingID,
		Date:       b.Date,
		Start:      b.Start,
		End:        b.End,
	}
}
