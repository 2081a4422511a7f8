//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"booking-engine/internal/domain/slotlock"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"
	"booking-engine/tests/common/builder"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func (s *CommandsTestSuite) existingLock(holder uuid.UUID) *slotlock.Lock {
	return builder.NewSlotLockBuilder().With(func(b *builder.SlotLockBuilder) {
		b.OfferingID = s.offering.ID()
		b.HeldBy = holder
		b.CreatedAt = testNow.Add(-time.Minute)
	}).BuildDomain()
}

func (s *CommandsTestSuite) TestLockSlot_Acquired() {
	s.givenDay(1)
	s.locks.EXPECT().Acquire(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *slotlock.Lock) (*slotlock.Lock, bool, error) {
			s.Equal(s.customer.ID, l.HeldBy())
			s.Equal(testNow.Add(s.settings.LockTTL), l.ExpiresAt())
			return l, true, nil
		})

	res, err := s.slotLocks.LockSlot(context.Background(), s.customer, s.key("09:00", "09:30"))

	s.Require().NoError(err)
	s.False(res.Reacquired)
	s.Equal(testNow.Add(s.settings.LockTTL), res.ExpiresAt)
}

func (s *CommandsTestSuite) TestLockSlot_SameHolderKeepsExistingLock() {
	s.givenDay(1)
	mine := s.existingLock(s.customer.ID)
	s.locks.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(mine, false, nil)

	res, err := s.slotLocks.LockSlot(context.Background(), s.customer, s.key("09:00", "09:30"))

	s.Require().NoError(err)
	s.True(res.Reacquired)
	s.Equal(mine.ID(), res.LockID)
	s.Equal(mine.ExpiresAt(), res.ExpiresAt)
}

func (s *CommandsTestSuite) TestLockSlot_HeldByAnother() {
	s.givenDay(2)
	theirs := s.existingLock(uuid.New())
	s.locks.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(theirs, false, nil)

	_, err := s.slotLocks.LockSlot(context.Background(), s.customer, s.key("09:00", "09:30"))

	ce := s.requireConflict(err, shared.ReasonSlotLocked)
	s.True(errs.Is(err, shared.ErrSlotLocked))
	s.Require().NotNil(ce.LockedUntil)
	s.Equal(theirs.ExpiresAt(), *ce.LockedUntil)
	s.NotEmpty(ce.AlternativeSlots)
}

func (s *CommandsTestSuite) TestLockSlot_FullyBooked() {
	booked := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
		b.OfferingID = s.offering.ID()
		b.Date = "2024-06-01"
		b.Start, b.End = "09:00", "09:30"
	}).BuildDomain()
	s.givenDay(1, booked)

	_, err := s.slotLocks.LockSlot(context.Background(), s.customer, s.key("09:00", "09:30"))

	ce := s.requireConflict(err, shared.ReasonSlotFullyBooked)
	s.Require().Len(ce.AlternativeSlots, 1)
	s.Equal("09:30", ce.AlternativeSlots[0].Start)
}

func (s *CommandsTestSuite) TestLockSlot_SlotNotGenerated() {
	s.givenDay(1)

	_, err := s.slotLocks.LockSlot(context.Background(), s.customer, s.key("09:10", "09:40"))

	s.ErrorIs(err, shared.ErrSlotNotFound)
	s.True(errs.Is(err, shared.ErrNotFound))
}

func (s *CommandsTestSuite) TestLockSlot_InvalidKey() {
	_, err := s.slotLocks.LockSlot(context.Background(), s.customer, s.key("10:00", "09:00"))

	s.True(errs.Is(err, shared.ErrValidation))
}

func (s *CommandsTestSuite) TestLockSlot_StoreFailure() {
	s.givenDay(1)
	s.locks.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down"))

	_, err := s.slotLocks.LockSlot(context.Background(), s.customer, s.key("09:00", "09:30"))

	s.True(errs.Is(err, shared.ErrInternal))
}

func (s *CommandsTestSuite) TestUnlockByID() {
	mine := s.existingLock(s.customer.ID)
	theirs := s.existingLock(uuid.New())

	s.Run("holder releases", func() {
		s.locks.EXPECT().GetByID(gomock.Any(), mine.ID()).Return(mine, nil)
		s.locks.EXPECT().Release(gomock.Any(), mine).Return(true, nil)

		s.NoError(s.slotLocks.UnlockByID(context.Background(), s.customer, mine.ID()))
	})

	s.Run("other holder is rejected", func() {
		s.locks.EXPECT().GetByID(gomock.Any(), theirs.ID()).Return(theirs, nil)

		err := s.slotLocks.UnlockByID(context.Background(), s.customer, theirs.ID())

		ce := s.requireConflict(err, shared.ReasonSlotLocked)
		s.NotNil(ce.LockedUntil)
	})

	s.Run("admin releases any lock", func() {
		s.locks.EXPECT().GetByID(gomock.Any(), theirs.ID()).Return(theirs, nil)
		s.locks.EXPECT().Release(gomock.Any(), theirs).Return(true, nil)

		s.NoError(s.slotLocks.UnlockByID(context.Background(), s.admin, theirs.ID()))
	})

	s.Run("missing lock", func() {
		s.locks.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

		err := s.slotLocks.UnlockByID(context.Background(), s.customer, mine.ID())

		s.ErrorIs(err, shared.ErrLockNotFound)
	})

	s.Run("expired lock", func() {
		s.locks.EXPECT().GetByID(gomock.Any(), mine.ID()).Return(mine, nil)
		s.clock.Add(s.settings.LockTTL)
		defer s.clock.Set(testNow)

		err := s.slotLocks.UnlockByID(context.Background(), s.customer, mine.ID())

		s.ErrorIs(err, shared.ErrLockNotFound)
	})
}

func (s *CommandsTestSuite) TestUnlockByKey() {
	mine := s.existingLock(s.customer.ID)
	s.locks.EXPECT().Get(gomock.Any(), mine.Key()).Return(mine, nil)
	s.locks.EXPECT().Release(gomock.Any(), mine).Return(true, nil)

	s.NoError(s.slotLocks.UnlockByKey(context.Background(), s.customer, s.key("09:00", "09:30")))
}

func (s *CommandsTestSuite) TestReleaseAll() {
	first := s.existingLock(s.customer.ID)
	second := s.existingLock(s.customer.ID)
	s.locks.EXPECT().ListHeldBy(gomock.Any(), s.customer.ID).Return([]*slotlock.Lock{first, second}, nil)
	s.locks.EXPECT().Release(gomock.Any(), first).Return(true, nil)
	// already expired between listing and release
	s.locks.EXPECT().Release(gomock.Any(), second).Return(false, nil)

	n, err := s.slotLocks.ReleaseAll(context.Background(), s.customer)

	s.Require().NoError(err)
	s.Equal(1, n)
}
