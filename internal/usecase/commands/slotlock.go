package commands

import (
	"context"
	"log/slog"
	"time"

	"booking-engine/internal/domain/actor"
	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/domain/slotlock"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/metrics"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type LockSlotParams struct {
	OfferingID uuid.UUID
	Date       recurrence.CivilDate
	Start      recurrence.TimeOfDay
	End        recurrence.TimeOfDay
}

type LockResult struct {
	LockID    uuid.UUID
	Key       slotlock.Key
	ExpiresAt time.Time
	// Reacquired is set when the caller already held the lock.
	Reacquired bool
}

type SlotLockCommands interface {
	LockSlot(ctx context.Context, caller actor.Actor, params LockSlotParams) (*LockResult, error)
	UnlockByID(ctx context.Context, caller actor.Actor, lockID uuid.UUID) error
	UnlockByKey(ctx context.Context, caller actor.Actor, params LockSlotParams) error
	ReleaseAll(ctx context.Context, caller actor.Actor) (int, error)
}

type slotLockUseCaseImpl struct {
	availability *queries.Availability
	locks        shared.SlotLockStore
	clock        clock.Clock
	metrics      *metrics.Metrics
	settings     Settings
}

func NewSlotLockUseCase(
	availability *queries.Availability,
	locks shared.SlotLockStore,
	clk clock.Clock,
	m *metrics.Metrics,
	settings Settings,
) SlotLockCommands {
	return &slotLockUseCaseImpl{
		availability: availability,
		locks:        locks,
		clock:        clk,
		metrics:      m,
		settings:     settings,
	}
}

func (uc *slotLockUseCaseImpl) LockSlot(ctx context.Context, caller actor.Actor, params LockSlotParams) (*LockResult, error) {
	key, err := slotlock.NewKey(params.OfferingID, params.Date, params.Start, params.End)
	if err != nil {
		return nil, shared.Validation(err)
	}

	day, err := loadSlotDay(ctx, uc.availability, key)
	if err != nil {
		return nil, err
	}
	if err := requireCapacity(ctx, day, key); err != nil {
		uc.metrics.LockAttempt(metrics.OutcomeFullyBooked)
		return nil, err
	}

	lock, err := slotlock.New(key, caller.ID, uc.clock.Now(), uc.settings.LockTTL)
	if err != nil {
		return nil, shared.Validation(err)
	}

	current, acquired, err := uc.locks.Acquire(ctx, lock)
	if err != nil {
		uc.metrics.LockAttempt(metrics.OutcomeError)
		return nil, shared.Internal(err, "acquire slot lock")
	}
	if acquired {
		uc.metrics.LockAttempt(metrics.OutcomeAcquired)
		return &LockResult{LockID: current.ID(), Key: key, ExpiresAt: current.ExpiresAt()}, nil
	}
	if current.IsHeldBy(caller.ID) {
		uc.metrics.LockAttempt(metrics.OutcomeReacquired)
		return &LockResult{LockID: current.ID(), Key: key, ExpiresAt: current.ExpiresAt(), Reacquired: true}, nil
	}

	uc.metrics.LockAttempt(metrics.OutcomeLocked)
	slog.InfoContext(ctx, "slot lock conflict",
		"key", key.String(),
		"locked_until", current.ExpiresAt())
	return nil, shared.NewConflict(shared.ErrSlotLocked, shared.ReasonSlotLocked).
		WithLockedUntil(current.ExpiresAt()).
		WithAlternatives(day.Alternatives())
}

func (uc *slotLockUseCaseImpl) UnlockByID(ctx context.Context, caller actor.Actor, lockID uuid.UUID) error {
	lock, err := uc.locks.GetByID(ctx, lockID)
	if err != nil {
		return shared.Internal(err, "read slot lock")
	}
	return uc.release(ctx, caller, lock)
}

func (uc *slotLockUseCaseImpl) UnlockByKey(ctx context.Context, caller actor.Actor, params LockSlotParams) error {
	key, err := slotlock.NewKey(params.OfferingID, params.Date, params.Start, params.End)
	if err != nil {
		return shared.Validation(err)
	}
	lock, err := uc.locks.Get(ctx, key)
	if err != nil {
		return shared.Internal(err, "read slot lock")
	}
	return uc.release(ctx, caller, lock)
}

func (uc *slotLockUseCaseImpl) ReleaseAll(ctx context.Context, caller actor.Actor) (int, error) {
	held, err := uc.locks.ListHeldBy(ctx, caller.ID)
	if err != nil {
		return 0, shared.Internal(err, "list held slot locks")
	}
	released := 0
	for _, l := range held {
		ok, err := uc.locks.Release(ctx, l)
		if err != nil {
			return released, shared.Internal(err, "release slot lock")
		}
		if ok {
			released++
		}
	}
	return released, nil
}

func (uc *slotLockUseCaseImpl) release(ctx context.Context, caller actor.Actor, lock *slotlock.Lock) error {
	if lock == nil || lock.IsExpired(uc.clock.Now()) {
		return shared.ErrLockNotFound
	}
	if !lock.IsHeldBy(caller.ID) && !caller.IsAdmin() {
		slog.InfoContext(ctx, "slot unlock refused for non-holder", "lock_id", lock.ID())
		return shared.NewConflict(shared.ErrSlotLocked, shared.ReasonSlotLocked).WithLockedUntil(lock.ExpiresAt())
	}
	ok, err := uc.locks.Release(ctx, lock)
	if err != nil {
		return shared.Internal(err, "release slot lock")
	}
	if !ok {
		return shared.ErrLockNotFound
	}
	return nil
}

// loadSlotDay loads availability of the key's date using the key's own length,
// so a key is bookable exactly when GetSlots at that duration lists it.
func loadSlotDay(ctx context.Context, availability *queries.Availability, key slotlock.Key) (*queries.DaySlots, error) {
	off, err := availability.Offering(ctx, key.OfferingID)
	if err != nil {
		return nil, err
	}
	return availability.Day(ctx, off, key.Date, key.End.Sub(key.Start))
}

func requireCapacity(ctx context.Context, day *queries.DaySlots, key slotlock.Key) error {
	remaining, ok := day.Remaining(key.Start, key.End)
	if !ok {
		return shared.ErrSlotNotFound
	}
	if remaining <= 0 {
		slog.InfoContext(ctx, "slot fully booked", "key", key.String())
		return shared.NewConflict(shared.ErrSlotFullyBooked, shared.ReasonSlotFullyBooked).
			WithAlternatives(day.Alternatives())
	}
	return nil
}
