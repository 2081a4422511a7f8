package slotlock

import (
	"errors"
	"fmt"
	"time"

	"booking-engine/internal/domain/recurrence"

	"github.com/google/uuid"
)

var (
	ErrInvalidKey = errors.New("slot key requires offering, date and start before end")
	ErrInvalidTTL = errors.New("lock ttl must be positive")
	ErrNoHolder   = errors.New("lock holder is required")
)

// Key identifies one slot of one offering. At most one live lock exists per key.
type Key struct {
	OfferingID uuid.UUID
	Date       recurrence.CivilDate
	Start      recurrence.TimeOfDay
	End        recurrence.TimeOfDay
}

func NewKey(offeringID uuid.UUID, date recurrence.CivilDate, start, end recurrence.TimeOfDay) (Key, error) {
	k := Key{OfferingID: offeringID, Date: date, Start: start, End: end}
	if err := k.Validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}

func (k Key) Validate() error {
	if k.OfferingID == uuid.Nil || k.Date.IsZero() || k.Start >= k.End {
		return ErrInvalidKey
	}
	return nil
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s:%s", k.OfferingID, k.Date, k.Start, k.End)
}

type Lock struct {
	id        uuid.UUID
	key       Key
	heldBy    uuid.UUID
	createdAt time.Time
	expiresAt time.Time
}

func New(key Key, heldBy uuid.UUID, now time.Time, ttl time.Duration) (*Lock, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if heldBy == uuid.Nil {
		return nil, ErrNoHolder
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	return &Lock{
		id:        uuid.New(),
		key:       key,
		heldBy:    heldBy,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

func Reconstruct(id uuid.UUID, key Key, heldBy uuid.UUID, createdAt, expiresAt time.Time) *Lock {
	return &Lock{
		id:        id,
		key:       key,
		heldBy:    heldBy,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}
}

func (l *Lock) IsHeldBy(holder uuid.UUID) bool {
	return l.heldBy == holder
}

func (l *Lock) IsExpired(now time.Time) bool {
	return !now.Before(l.expiresAt)
}

// TTL is the time left before expiry at now, never negative.
func (l *Lock) TTL(now time.Time) time.Duration {
	if d := l.expiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

func (l *Lock) ID() uuid.UUID        { return l.id }
func (l *Lock) Key() Key             { return l.key }
func (l *Lock) HeldBy() uuid.UUID    { return l.heldBy }
func (l *Lock) CreatedAt() time.Time { return l.createdAt }
func (l *Lock) ExpiresAt() time.Time { return l.expiresAt }
