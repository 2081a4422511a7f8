//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/domain/slot"
	"booking-engine/internal/domain/slotlock"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/shared"
	"booking-engine/tests/common/builder"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func (s *CommandsTestSuite) createParams(method appointment.PaymentMethod) commands.CreateAppointmentParams {
	k := s.key("09:00", "09:30")
	return commands.CreateAppointmentParams{
		OfferingID:     k.OfferingID,
		Date:           k.Date,
		Start:          k.Start,
		End:            k.End,
		PaymentMethod:  method,
		IdempotencyKey: "checkout-1",
	}
}

func (s *CommandsTestSuite) expectInsert(booked ...slot.Interval) {
	s.repo.EXPECT().GuardSlotDay(gomock.Any(), s.offering.ID(), testDate).Return(nil)
	s.repo.EXPECT().ListBooked(gomock.Any(), s.offering.ID(), testDate, uuid.Nil).Return(booked, nil)
}

func (s *CommandsTestSuite) TestCreateAppointment_Cash() {
	s.givenDay(1)
	s.locks.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.expectInsert()
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e shared.Event) {
			s.Equal(shared.EventBookingCreated, e.Type)
		})

	res, err := s.bookings.CreateAppointment(context.Background(), s.customer, s.createParams(appointment.PaymentMethodCash))

	s.Require().NoError(err)
	s.Nil(res.Payment)
	s.Equal("pending", res.Appointment.Status)
	s.Equal("none", res.Appointment.PaymentStatus)
	s.Equal(s.customer.ID, res.Appointment.CustomerID)
	s.EqualValues(100, res.Appointment.Total)
}

func (s *CommandsTestSuite) TestCreateAppointment_CardCreatesIntentAndConsumesLock() {
	s.givenDay(1)
	mine := s.existingLock(s.customer.ID)
	s.locks.EXPECT().Get(gomock.Any(), mine.Key()).Return(mine, nil)
	s.payments.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req shared.PaymentIntentRequest) (*shared.PaymentIntent, error) {
			s.EqualValues(100, req.Amount)
			s.Equal("usd", req.Currency)
			s.Equal("appointment:"+s.customer.ID.String()+":checkout-1", req.IdempotencyKey)
			return &shared.PaymentIntent{ID: "pi_1", ClientSecret: "secret"}, nil
		})
	s.expectInsert()
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *appointment.Appointment) error {
			s.Require().NotNil(a.PaymentIntentID())
			s.Equal("pi_1", *a.PaymentIntentID())
			return nil
		})
	s.locks.EXPECT().Release(gomock.Any(), mine).Return(true, nil)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any())

	res, err := s.bookings.CreateAppointment(context.Background(), s.customer, s.createParams(appointment.PaymentMethodCard))

	s.Require().NoError(err)
	s.Require().NotNil(res.Payment)
	s.Equal("pi_1", res.Payment.ID)
	s.Equal("pending", res.Appointment.PaymentStatus)
}

func (s *CommandsTestSuite) TestCreateAppointment_SameSlotTwiceWithoutClientKey() {
	s.givenDay(2)
	s.locks.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	var keys []string
	var intents []string
	s.payments.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req shared.PaymentIntentRequest) (*shared.PaymentIntent, error) {
			s.NotContains(req.Metadata, "appointment_id")
			keys = append(keys, req.IdempotencyKey)
			id := fmt.Sprintf("pi_%d", len(keys))
			intents = append(intents, id)
			return &shared.PaymentIntent{ID: id}, nil
		}).Times(2)
	s.repo.EXPECT().GuardSlotDay(gomock.Any(), s.offering.ID(), testDate).Return(nil).Times(2)
	s.repo.EXPECT().ListBooked(gomock.Any(), s.offering.ID(), testDate, uuid.Nil).Return(nil, nil).Times(2)
	var created []*appointment.Appointment
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *appointment.Appointment) error {
			created = append(created, a)
			return nil
		}).Times(2)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(2)

	params := s.createParams(appointment.PaymentMethodCard)
	params.IdempotencyKey = ""
	for range 2 {
		_, err := s.bookings.CreateAppointment(context.Background(), s.customer, params)
		s.Require().NoError(err)
	}

	s.Require().Len(keys, 2)
	s.NotEqual(keys[0], keys[1])
	s.Equal("appointment:"+s.customer.ID.String()+":"+created[0].ID().String(), keys[0])
	s.Require().Len(created, 2)
	s.Equal(intents[0], *created[0].PaymentIntentID())
	s.Equal(intents[1], *created[1].PaymentIntentID())
}

func (s *CommandsTestSuite) TestCreateAppointment_ClientKeyRetrySendsSameRequest() {
	s.givenDay(2)
	s.locks.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	var requests []shared.PaymentIntentRequest
	s.payments.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req shared.PaymentIntentRequest) (*shared.PaymentIntent, error) {
			requests = append(requests, req)
			return &shared.PaymentIntent{ID: "pi_1"}, nil
		}).Times(2)
	s.repo.EXPECT().GuardSlotDay(gomock.Any(), s.offering.ID(), testDate).Return(nil).Times(2)
	s.repo.EXPECT().ListBooked(gomock.Any(), s.offering.ID(), testDate, uuid.Nil).Return(nil, nil).Times(2)
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(2)

	for range 2 {
		_, err := s.bookings.CreateAppointment(context.Background(), s.customer, s.createParams(appointment.PaymentMethodCard))
		s.Require().NoError(err)
	}

	s.Require().Len(requests, 2)
	s.Equal(requests[0], requests[1])
}

func (s *CommandsTestSuite) TestCreateAppointment_LockConsumeFailureIsIgnored() {
	s.givenDay(1)
	mine := s.existingLock(s.customer.ID)
	s.locks.EXPECT().Get(gomock.Any(), gomock.Any()).Return(mine, nil)
	s.expectInsert()
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.locks.EXPECT().Release(gomock.Any(), mine).Return(false, errors.New("redis down"))
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any())

	_, err := s.bookings.CreateAppointment(context.Background(), s.customer, s.createParams(appointment.PaymentMethodCash))

	s.NoError(err)
}

func (s *CommandsTestSuite) TestCreateAppointment_LockedByAnother() {
	s.givenDay(1)
	s.locks.EXPECT().Get(gomock.Any(), gomock.Any()).Return(s.existingLock(uuid.New()), nil)

	_, err := s.bookings.CreateAppointment(context.Background(), s.customer, s.createParams(appointment.PaymentMethodCash))

	ce := s.requireConflict(err, shared.ReasonSlotLocked)
	s.NotNil(ce.LockedUntil)
}

func (s *CommandsTestSuite) TestCreateAppointment_RecountRejectsAndCancelsIntent() {
	s.givenDay(1)
	s.locks.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.payments.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).
		Return(&shared.PaymentIntent{ID: "pi_2"}, nil)
	// a concurrent booking committed between the read and the transaction
	s.expectInsert(slot.Interval{Start: s.key("09:00", "09:30").Start, End: s.key("09:00", "09:30").End})
	s.payments.EXPECT().CancelPaymentIntent(gomock.Any(), "pi_2").Return(nil)

	_, err := s.bookings.CreateAppointment(context.Background(), s.customer, s.createParams(appointment.PaymentMethodCard))

	s.requireConflict(err, shared.ReasonSlotFullyBooked)
	s.True(errs.Is(err, shared.ErrSlotFullyBooked))
}

func (s *CommandsTestSuite) TestCreateAppointment_PaymentFailure() {
	s.givenDay(1)
	s.locks.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.payments.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(nil, errors.New("card declined"))

	_, err := s.bookings.CreateAppointment(context.Background(), s.customer, s.createParams(appointment.PaymentMethodCard))

	s.True(errs.Is(err, shared.ErrUpstream))
	s.True(errs.Is(err, shared.ErrPaymentFailed))
	s.False(errs.Is(err, shared.ErrRefundFailed))
}

func (s *CommandsTestSuite) TestCreateAppointment_InvalidMethod() {
	_, err := s.bookings.CreateAppointment(context.Background(), s.customer, s.createParams("cheque"))

	s.True(errs.Is(err, shared.ErrValidation))
}

func (s *CommandsTestSuite) TestConfirmAppointment() {
	a := s.givenAppointment(builder.NewAppointmentBuilder())

	s.Run("vendor confirms", func() {
		s.repo.EXPECT().Save(gomock.Any(), a, []appointment.Status{appointment.StatusPending}).Return(nil)
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any())

		view, err := s.bookings.ConfirmAppointment(context.Background(), s.vendor, a.ID())

		s.Require().NoError(err)
		s.Equal("confirmed", view.Status)
	})

	s.Run("second confirm conflicts", func() {
		_, err := s.bookings.ConfirmAppointment(context.Background(), s.vendor, a.ID())

		s.requireConflict(err, shared.ReasonInvalidTransition)
	})
}

func (s *CommandsTestSuite) TestConfirmAppointment_CustomerNotPermitted() {
	a := s.givenAppointment(builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
		b.CustomerID = s.customer.ID
	}))

	_, err := s.bookings.ConfirmAppointment(context.Background(), s.customer, a.ID())

	s.ErrorIs(err, shared.ErrNotPermitted)
	s.True(errs.Is(err, shared.ErrForbidden))
}

func (s *CommandsTestSuite) TestConfirmAppointment_ConcurrentChange() {
	a := s.givenAppointment(builder.NewAppointmentBuilder())
	s.repo.EXPECT().Save(gomock.Any(), a, gomock.Any()).
		Return(infra.WrapRepoErr("appointment changed", errors.New("0 rows"), infra.KindConflict))

	_, err := s.bookings.ConfirmAppointment(context.Background(), s.admin, a.ID())

	s.requireConflict(err, shared.ReasonInvalidTransition)
}

func (s *CommandsTestSuite) TestRecordPayment() {
	a := s.givenAppointment(builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
		b.PaymentMethod = appointment.PaymentMethodCard
		b.PaymentStatus = appointment.PaymentPending
	}))
	s.repo.EXPECT().Save(gomock.Any(), a, []appointment.Status{appointment.StatusPending}).Return(nil)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any())

	view, err := s.bookings.RecordPayment(context.Background(), s.vendor, a.ID())

	s.Require().NoError(err)
	s.Equal("paid", view.PaymentStatus)
	s.Equal("confirmed", view.Status)

	_, err = s.bookings.RecordPayment(context.Background(), s.vendor, a.ID())
	s.ErrorIs(err, shared.ErrAlreadyPaid)
}

func (s *CommandsTestSuite) paidConfirmed() *appointment.Appointment {
	return s.givenAppointment(builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
		b.CustomerID = s.customer.ID
		b.Date = "2024-06-01"
		b.Start, b.End = "09:00", "09:30"
		b.Status = appointment.StatusConfirmed
	}).WithCardPaid("pi_paid"))
}

func (s *CommandsTestSuite) TestCancelAppointment_PartialRefund() {
	// 21 hours before start
	a := s.paidConfirmed()
	s.payments.EXPECT().Refund(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req shared.RefundRequest) (*shared.RefundResult, error) {
			s.Equal("pi_paid", req.PaymentIntentID)
			s.Require().NotNil(req.Amount)
			s.EqualValues(75, *req.Amount)
			s.Equal("refund:"+a.ID().String(), req.IdempotencyKey)
			return &shared.RefundResult{ID: "re_1", Status: "succeeded", Amount: 75}, nil
		})
	s.repo.EXPECT().Save(gomock.Any(), a, appointment.Cancellable).Return(nil)
	s.dedup.EXPECT().MarkOnce(gomock.Any(), shared.ReminderKey(a.ID()), s.settings.ReminderMarkerTTL).Return(true, nil)
	var events []string
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e shared.Event) { events = append(events, e.Type) }).Times(2)

	res, err := s.bookings.CancelAppointment(context.Background(), s.customer, a.ID(), "plans changed")

	s.Require().NoError(err)
	s.Equal("cancelled", res.Appointment.Status)
	s.Equal("partially_refunded", res.Appointment.PaymentStatus)
	s.Equal(75, res.Refund.Percentage)
	s.EqualValues(75, res.Refund.Amount)
	s.Equal("re_1", res.Refund.ID)
	s.Equal([]string{shared.EventBookingCancelled, shared.EventWaitlistOpening}, events)
}

func (s *CommandsTestSuite) TestCancelAppointment_FullRefundOmitsAmount() {
	a := s.paidConfirmed()
	s.clock.Set(testNow.Add(-48 * time.Hour))
	defer s.clock.Set(testNow)
	s.payments.EXPECT().Refund(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req shared.RefundRequest) (*shared.RefundResult, error) {
			s.Nil(req.Amount)
			return &shared.RefundResult{ID: "re_2", Status: "succeeded", Amount: 100}, nil
		})
	s.repo.EXPECT().Save(gomock.Any(), a, gomock.Any()).Return(nil)
	s.dedup.EXPECT().MarkOnce(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(2)

	res, err := s.bookings.CancelAppointment(context.Background(), s.customer, a.ID(), "")

	s.Require().NoError(err)
	s.Equal("refunded", res.Appointment.PaymentStatus)
	s.Equal(100, res.Refund.Percentage)
	s.EqualValues(100, res.Refund.Amount)
}

func (s *CommandsTestSuite) TestCancelAppointment_RefundFailureLeavesAppointment() {
	a := s.paidConfirmed()
	s.payments.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway timeout"))

	_, err := s.bookings.CancelAppointment(context.Background(), s.customer, a.ID(), "")

	s.True(errs.Is(err, shared.ErrUpstream))
	s.True(errs.Is(err, shared.ErrRefundFailed))
	s.Equal(appointment.StatusConfirmed, a.Status())
	s.Equal(appointment.PaymentPaid, a.PaymentStatus())
}

func (s *CommandsTestSuite) TestCancelAppointment_Unpaid() {
	a := s.givenAppointment(builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
		b.CustomerID = s.customer.ID
	}))
	s.repo.EXPECT().Save(gomock.Any(), a, gomock.Any()).Return(nil)
	s.dedup.EXPECT().MarkOnce(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(2)

	res, err := s.bookings.CancelAppointment(context.Background(), s.customer, a.ID(), "")

	s.Require().NoError(err)
	s.Equal(commands.RefundStatusNotApplicable, res.Refund.Status)
	s.EqualValues(0, res.Refund.Amount)
}

func (s *CommandsTestSuite) TestCancelAppointment_AlreadyCancelled() {
	a := s.givenAppointment(builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
		b.CustomerID = s.customer.ID
	}).WithStatus(appointment.StatusCancelled))

	_, err := s.bookings.CancelAppointment(context.Background(), s.customer, a.ID(), "")

	s.requireConflict(err, shared.ReasonInvalidTransition)
}

func (s *CommandsTestSuite) TestCancelAppointment_StrangerNotPermitted() {
	a := s.givenAppointment(builder.NewAppointmentBuilder())

	_, err := s.bookings.CancelAppointment(context.Background(), s.customer, a.ID(), "")

	s.ErrorIs(err, shared.ErrNotPermitted)
}

func (s *CommandsTestSuite) TestCancelAppointment_NotFound() {
	id := uuid.New()
	s.appointments.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("appointment not found", errors.New("no rows"), infra.KindNotFound))

	_, err := s.bookings.CancelAppointment(context.Background(), s.customer, id, "")

	s.ErrorIs(err, shared.ErrAppointmentNotFound)
	s.True(errs.Is(err, shared.ErrNotFound))
}

func (s *CommandsTestSuite) TestRescheduleAppointment() {
	s.givenDay(1)
	a := s.givenAppointment(builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
		b.CustomerID = s.customer.ID
		b.Date = "2024-06-01"
		b.Start, b.End = "09:00", "09:30"
	}).WithStatus(appointment.StatusConfirmed))
	target := s.key("09:30", "10:00")
	s.locks.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.repo.EXPECT().GuardSlotDay(gomock.Any(), s.offering.ID(), testDate).Return(nil)
	s.repo.EXPECT().ListBooked(gomock.Any(), s.offering.ID(), testDate, a.ID()).Return(nil, nil)
	s.repo.EXPECT().Save(gomock.Any(), a, []appointment.Status{appointment.StatusConfirmed}).Return(nil)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any())

	view, err := s.bookings.RescheduleAppointment(context.Background(), s.customer, a.ID(), commands.RescheduleParams{
		Date: target.Date, Start: target.Start, End: target.End,
	})

	s.Require().NoError(err)
	s.Equal("09:30", view.Start)
	s.Equal("confirmed", view.Status)
}

func (s *CommandsTestSuite) TestRescheduleAppointment_TerminalRejected() {
	a := s.givenAppointment(builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
		b.CustomerID = s.customer.ID
	}).WithStatus(appointment.StatusCompleted))
	target := s.key("09:30", "10:00")

	_, err := s.bookings.RescheduleAppointment(context.Background(), s.customer, a.ID(), commands.RescheduleParams{
		Date: target.Date, Start: target.Start, End: target.End,
	})

	s.requireConflict(err, shared.ReasonInvalidTransition)
}

func (s *CommandsTestSuite) TestRescheduleAppointment_TargetLocked() {
	s.givenDay(1)
	a := s.givenAppointment(builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
		b.CustomerID = s.customer.ID
	}))
	theirs := builder.NewSlotLockBuilder().With(func(b *builder.SlotLockBuilder) {
		b.OfferingID = s.offering.ID()
		b.Start, b.End = "09:30", "10:00"
		b.CreatedAt = testNow
	}).BuildDomain()
	s.locks.EXPECT().Get(gomock.Any(), gomock.AssignableToTypeOf(slotlock.Key{})).Return(theirs, nil)
	target := s.key("09:30", "10:00")

	_, err := s.bookings.RescheduleAppointment(context.Background(), s.customer, a.ID(), commands.RescheduleParams{
		Date: target.Date, Start: target.Start, End: target.End,
	})

	s.requireConflict(err, shared.ReasonSlotLocked)
}

func (s *CommandsTestSuite) TestOverrideStatus() {
	a := s.givenAppointment(builder.NewAppointmentBuilder().WithStatus(appointment.StatusConfirmed))

	s.Run("non-admin", func() {
		_, err := s.bookings.OverrideStatus(context.Background(), s.vendor, a.ID(), appointment.StatusMissed, "customer never arrived")
		s.ErrorIs(err, shared.ErrNotPermitted)
	})

	s.Run("reason too short", func() {
		_, err := s.bookings.OverrideStatus(context.Background(), s.admin, a.ID(), appointment.StatusMissed, "no")
		s.True(errs.Is(err, shared.ErrValidation))
	})

	s.Run("admin marks missed", func() {
		s.repo.EXPECT().Save(gomock.Any(), a, []appointment.Status{appointment.StatusConfirmed}).Return(nil)

		view, err := s.bookings.OverrideStatus(context.Background(), s.admin, a.ID(), appointment.StatusMissed, "customer never arrived")

		s.Require().NoError(err)
		s.Equal("missed", view.Status)
		s.Require().NotNil(view.StatusReason)
	})

	s.Run("from missed is rejected", func() {
		_, err := s.bookings.OverrideStatus(context.Background(), s.admin, a.ID(), appointment.StatusFailed, "payment bounced later")
		s.requireConflict(err, shared.ReasonInvalidTransition)
	})
}
