package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"booking-engine/internal/domain/actor"
	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/domain/offering"
	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/domain/slot"
	"booking-engine/internal/domain/slotlock"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/pkg/metrics"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateAppointmentParams struct {
	OfferingID    uuid.UUID
	Date          recurrence.CivilDate
	Start         recurrence.TimeOfDay
	End           recurrence.TimeOfDay
	PaymentMethod appointment.PaymentMethod
	// IdempotencyKey scopes the payment intent so a retried checkout reuses it.
	IdempotencyKey string
}

type CreateAppointmentResult struct {
	Appointment *queries.AppointmentView
	Payment     *shared.PaymentIntent
}

type CancelAppointmentResult struct {
	Appointment *queries.AppointmentView
	Refund      queries.RefundView
}

type RescheduleParams struct {
	Date  recurrence.CivilDate
	Start recurrence.TimeOfDay
	End   recurrence.TimeOfDay
}

type AppointmentCommands interface {
	CreateAppointment(ctx context.Context, caller actor.Actor, params CreateAppointmentParams) (*CreateAppointmentResult, error)
	ConfirmAppointment(ctx context.Context, caller actor.Actor, id uuid.UUID) (*queries.AppointmentView, error)
	RecordPayment(ctx context.Context, caller actor.Actor, id uuid.UUID) (*queries.AppointmentView, error)
	CancelAppointment(ctx context.Context, caller actor.Actor, id uuid.UUID, reason string) (*CancelAppointmentResult, error)
	RescheduleAppointment(ctx context.Context, caller actor.Actor, id uuid.UUID, params RescheduleParams) (*queries.AppointmentView, error)
	OverrideStatus(ctx context.Context, caller actor.Actor, id uuid.UUID, to appointment.Status, reason string) (*queries.AppointmentView, error)
}

type appointmentUseCaseImpl struct {
	uow          shared.UnitOfWork
	availability *queries.Availability
	appointments shared.AppointmentReader
	offerings    shared.OfferingReader
	locks        shared.SlotLockStore
	payments     shared.PaymentGateway
	dispatcher   shared.Dispatcher
	dedup        shared.DedupStore
	policy       appointment.RefundPolicy
	clock        clock.Clock
	metrics      *metrics.Metrics
	settings     Settings
}

type AppointmentDeps struct {
	UoW          shared.UnitOfWork
	Availability *queries.Availability
	Appointments shared.AppointmentReader
	Offerings    shared.OfferingReader
	Locks        shared.SlotLockStore
	Payments     shared.PaymentGateway
	Dispatcher   shared.Dispatcher
	Dedup        shared.DedupStore
	Policy       appointment.RefundPolicy
	Clock        clock.Clock
	Metrics      *metrics.Metrics
}

func NewAppointmentUseCase(deps AppointmentDeps, settings Settings) AppointmentCommands {
	return &appointmentUseCaseImpl{
		uow:          deps.UoW,
		availability: deps.Availability,
		appointments: deps.Appointments,
		offerings:    deps.Offerings,
		locks:        deps.Locks,
		payments:     deps.Payments,
		dispatcher:   deps.Dispatcher,
		dedup:        deps.Dedup,
		policy:       deps.Policy,
		clock:        deps.Clock,
		metrics:      deps.Metrics,
		settings:     settings,
	}
}

func (uc *appointmentUseCaseImpl) CreateAppointment(ctx context.Context, caller actor.Actor, params CreateAppointmentParams) (*CreateAppointmentResult, error) {
	key, err := slotlock.NewKey(params.OfferingID, params.Date, params.Start, params.End)
	if err != nil {
		return nil, shared.Validation(err)
	}
	if !params.PaymentMethod.IsValid() {
		return nil, shared.Validation(appointment.ErrInvalidMethod)
	}

	day, err := loadSlotDay(ctx, uc.availability, key)
	if err != nil {
		return nil, err
	}
	heldLock, err := uc.lockOwnedOrFree(ctx, caller, key)
	if err != nil {
		return nil, err
	}
	if err := requireCapacity(ctx, day, key); err != nil {
		return nil, err
	}

	currency := day.Offering.Currency()
	if currency == "" {
		currency = uc.settings.Currency
	}
	appt, err := appointment.New(
		key.OfferingID,
		caller.ID,
		appointment.Schedule{Date: key.Date, Start: key.Start, End: key.End},
		day.Offering.PriceMinor(),
		currency,
		params.PaymentMethod,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, shared.Validation(err)
	}

	intent, err := uc.createPaymentIntent(ctx, caller, appt, key, params.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Appointments()
		if err := repo.GuardSlotDay(ctx, key.OfferingID, key.Date); err != nil {
			return err
		}
		intervals, err := repo.ListBooked(ctx, key.OfferingID, key.Date, uuid.Nil)
		if err != nil {
			return err
		}
		if err := requireCapacity(ctx, day.WithBooked(slot.AggregateBooked(intervals)), key); err != nil {
			return err
		}
		return repo.Create(ctx, appt)
	})
	if err != nil {
		if intent != nil {
			uc.cancelPaymentIntent(ctx, intent.ID)
		}
		return nil, shared.Internal(err, "create appointment")
	}
	uc.metrics.Transition(appointment.StatusPending.String())

	if heldLock != nil {
		if _, err := uc.locks.Release(ctx, heldLock); err != nil {
			slog.WarnContext(ctx, "failed to consume slot lock", "lock_id", heldLock.ID(), "error", err.Error())
		}
	}
	uc.dispatcher.Dispatch(ctx, shared.NewAppointmentEvent(shared.EventBookingCreated, appt, uc.clock.Now()))

	return &CreateAppointmentResult{Appointment: queries.NewAppointmentView(appt), Payment: intent}, nil
}

// lockOwnedOrFree returns the caller's own lock on key, nil when the key is
// free, or a conflict when another party holds it.
func (uc *appointmentUseCaseImpl) lockOwnedOrFree(ctx context.Context, caller actor.Actor, key slotlock.Key) (*slotlock.Lock, error) {
	lock, err := uc.locks.Get(ctx, key)
	if err != nil {
		return nil, shared.Internal(err, "read slot lock")
	}
	if lock == nil || lock.IsExpired(uc.clock.Now()) {
		return nil, nil
	}
	if !lock.IsHeldBy(caller.ID) {
		slog.InfoContext(ctx, "slot held by another party", "key", key.String(), "locked_until", lock.ExpiresAt())
		return nil, shared.NewConflict(shared.ErrSlotLocked, shared.ReasonSlotLocked).WithLockedUntil(lock.ExpiresAt())
	}
	return lock, nil
}

func (uc *appointmentUseCaseImpl) createPaymentIntent(
	ctx context.Context,
	caller actor.Actor,
	appt *appointment.Appointment,
	key slotlock.Key,
	idempotencyKey string,
) (*shared.PaymentIntent, error) {
	if appt.PaymentMethod() != appointment.PaymentMethodCard || appt.Total() == 0 {
		return nil, nil
	}
	// A reused key must carry identical parameters, so nothing minted per
	// attempt goes into the request. Without a client key every attempt is its own.
	if idempotencyKey == "" {
		idempotencyKey = appt.ID().String()
	}
	intent, err := uc.payments.CreatePaymentIntent(ctx, shared.PaymentIntentRequest{
		Amount:   appt.Total(),
		Currency: appt.Currency(),
		Metadata: map[string]string{
			"offering_id": key.OfferingID.String(),
			"customer_id": caller.ID.String(),
			"slot":        key.String(),
		},
		IdempotencyKey: fmt.Sprintf("appointment:%s:%s", caller.ID, idempotencyKey),
	})
	if err != nil {
		if errs.Is(err, shared.ErrUpstream) {
			return nil, err
		}
		return nil, shared.Because(shared.ErrPaymentFailed, err, "create payment intent")
	}
	appt.AttachPaymentIntent(intent.ID)
	return intent, nil
}

func (uc *appointmentUseCaseImpl) cancelPaymentIntent(ctx context.Context, intentID string) {
	if err := uc.payments.CancelPaymentIntent(ctx, intentID); err != nil {
		slog.WarnContext(ctx, "failed to cancel payment intent after rejected booking",
			"payment_intent_id", intentID,
			"error", err.Error())
	}
}

func (uc *appointmentUseCaseImpl) ConfirmAppointment(ctx context.Context, caller actor.Actor, id uuid.UUID) (*queries.AppointmentView, error) {
	appt, err := uc.loadManaged(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := appt.Confirm(uc.clock.Now()); err != nil {
		return nil, transitionError(ctx, appt, err)
	}
	if err := uc.save(ctx, appt, []appointment.Status{appointment.StatusPending}); err != nil {
		return nil, err
	}
	uc.metrics.Transition(appointment.StatusConfirmed.String())
	uc.dispatcher.Dispatch(ctx, shared.NewAppointmentEvent(shared.EventBookingConfirmed, appt, uc.clock.Now()))
	return queries.NewAppointmentView(appt), nil
}

// RecordPayment marks the payment captured, confirming a pending appointment.
func (uc *appointmentUseCaseImpl) RecordPayment(ctx context.Context, caller actor.Actor, id uuid.UUID) (*queries.AppointmentView, error) {
	appt, err := uc.loadManaged(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	from := appt.Status()
	if err := appt.MarkPaid(uc.clock.Now()); err != nil {
		if errs.Is(err, appointment.ErrAlreadyPaid) {
			return nil, shared.ErrAlreadyPaid
		}
		return nil, transitionError(ctx, appt, err)
	}
	if err := uc.save(ctx, appt, []appointment.Status{from}); err != nil {
		return nil, err
	}
	if from != appt.Status() {
		uc.metrics.Transition(appt.Status().String())
		uc.dispatcher.Dispatch(ctx, shared.NewAppointmentEvent(shared.EventBookingConfirmed, appt, uc.clock.Now()))
	}
	return queries.NewAppointmentView(appt), nil
}

func (uc *appointmentUseCaseImpl) CancelAppointment(ctx context.Context, caller actor.Actor, id uuid.UUID, reason string) (*CancelAppointmentResult, error) {
	appt, _, err := queries.LoadAppointment(ctx, uc.appointments, uc.offerings, caller, id)
	if err != nil {
		return nil, err
	}
	if !isOneOf(appt.Status(), appointment.Cancellable) {
		return nil, transitionError(ctx, appt, appointment.ErrInvalidTransition)
	}

	now := uc.clock.Now()
	quote := uc.policy.Evaluate(appt.Schedule().StartAt(uc.settings.Location), now, appt.Total())

	refund, view, err := uc.refund(ctx, appt, quote)
	if err != nil {
		return nil, err
	}

	if err := appt.Cancel(now, reason, refund); err != nil {
		return nil, transitionError(ctx, appt, err)
	}
	if err := uc.save(ctx, appt, appointment.Cancellable); err != nil {
		if refund != nil {
			slog.ErrorContext(ctx, "refund issued but cancellation was not persisted",
				"appointment_id", appt.ID(),
				"refund_id", refund.ID)
		}
		return nil, err
	}
	uc.metrics.Transition(appointment.StatusCancelled.String())

	uc.cancelReminder(ctx, appt.ID())
	ev := shared.NewAppointmentEvent(shared.EventBookingCancelled, appt, now)
	ev.Attributes = map[string]string{
		"refund_percentage": strconv.Itoa(quote.Percentage),
		"refund_amount":     strconv.FormatInt(view.Amount, 10),
	}
	uc.dispatcher.Dispatch(ctx, ev)
	uc.dispatcher.Dispatch(ctx, shared.NewAppointmentEvent(shared.EventWaitlistOpening, appt, now))

	return &CancelAppointmentResult{Appointment: queries.NewAppointmentView(appt), Refund: view}, nil
}

const (
	RefundStatusNotApplicable = "not_applicable"
	RefundStatusNotEligible   = "not_eligible"
)

// refund requests the external refund a cancellation owes. Failure aborts the
// cancellation before any state changes.
func (uc *appointmentUseCaseImpl) refund(ctx context.Context, appt *appointment.Appointment, quote appointment.RefundQuote) (*appointment.Refund, queries.RefundView, error) {
	if appt.PaymentStatus() != appointment.PaymentPaid {
		return nil, queries.RefundView{Percentage: quote.Percentage, Status: RefundStatusNotApplicable}, nil
	}
	if !appt.RequiresRefund(quote) {
		return nil, queries.RefundView{Percentage: quote.Percentage, Status: RefundStatusNotEligible}, nil
	}

	res, err := uc.payments.Refund(ctx, shared.RefundRequest{
		PaymentIntentID: *appt.PaymentIntentID(),
		Amount:          quote.ExplicitAmount(),
		IdempotencyKey:  "refund:" + appt.ID().String(),
	})
	if err != nil {
		slog.WarnContext(ctx, "refund request failed, cancellation aborted",
			"appointment_id", appt.ID(),
			"error", err.Error())
		return nil, queries.RefundView{}, shared.Because(shared.ErrRefundFailed, err, "refund")
	}

	amount := quote.Amount
	if quote.IsFull() && res.Amount > 0 {
		amount = res.Amount
	}
	refund := &appointment.Refund{ID: res.ID, Percentage: quote.Percentage, Amount: amount, Status: res.Status}
	return refund, queries.RefundView{ID: res.ID, Percentage: quote.Percentage, Amount: amount, Status: res.Status}, nil
}

// cancelReminder pre-claims the reminder marker so no reminder goes out for a
// cancelled appointment.
func (uc *appointmentUseCaseImpl) cancelReminder(ctx context.Context, id uuid.UUID) {
	if _, err := uc.dedup.MarkOnce(ctx, shared.ReminderKey(id), uc.settings.ReminderMarkerTTL); err != nil {
		slog.WarnContext(ctx, "failed to cancel reminder", "appointment_id", id, "error", err.Error())
	}
}

func (uc *appointmentUseCaseImpl) RescheduleAppointment(ctx context.Context, caller actor.Actor, id uuid.UUID, params RescheduleParams) (*queries.AppointmentView, error) {
	appt, off, err := queries.LoadAppointment(ctx, uc.appointments, uc.offerings, caller, id)
	if err != nil {
		return nil, err
	}
	if appt.Status().IsTerminal() {
		return nil, transitionError(ctx, appt, appointment.ErrInvalidTransition)
	}
	key, err := slotlock.NewKey(off.ID(), params.Date, params.Start, params.End)
	if err != nil {
		return nil, shared.Validation(err)
	}

	day, err := uc.availability.Day(ctx, off, key.Date, key.End.Sub(key.Start))
	if err != nil {
		return nil, err
	}
	heldLock, err := uc.lockOwnedOrFree(ctx, caller, key)
	if err != nil {
		return nil, err
	}

	from := appt.Status()
	next := appointment.Schedule{Date: key.Date, Start: key.Start, End: key.End}
	if err := appt.Reschedule(next, uc.clock.Now()); err != nil {
		return nil, transitionError(ctx, appt, err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Appointments()
		if err := repo.GuardSlotDay(ctx, key.OfferingID, key.Date); err != nil {
			return err
		}
		intervals, err := repo.ListBooked(ctx, key.OfferingID, key.Date, appt.ID())
		if err != nil {
			return err
		}
		if err := requireCapacity(ctx, day.WithBooked(slot.AggregateBooked(intervals)), key); err != nil {
			return err
		}
		return repo.Save(ctx, appt, []appointment.Status{from})
	})
	if err != nil {
		return nil, uc.saveError(ctx, appt, err)
	}

	if heldLock != nil {
		if _, err := uc.locks.Release(ctx, heldLock); err != nil {
			slog.WarnContext(ctx, "failed to consume slot lock", "lock_id", heldLock.ID(), "error", err.Error())
		}
	}
	uc.dispatcher.Dispatch(ctx, shared.NewAppointmentEvent(shared.EventBookingMoved, appt, uc.clock.Now()))
	return queries.NewAppointmentView(appt), nil
}

func (uc *appointmentUseCaseImpl) OverrideStatus(ctx context.Context, caller actor.Actor, id uuid.UUID, to appointment.Status, reason string) (*queries.AppointmentView, error) {
	if !caller.IsAdmin() {
		return nil, shared.ErrNotPermitted
	}
	appt, _, err := queries.LoadAppointment(ctx, uc.appointments, uc.offerings, caller, id)
	if err != nil {
		return nil, err
	}
	from := appt.Status()
	if err := appt.Override(to, reason, uc.settings.MinReasonLength, uc.clock.Now()); err != nil {
		switch {
		case errs.Is(err, appointment.ErrInvalidTransition):
			return nil, transitionError(ctx, appt, err)
		default:
			return nil, shared.Validation(err)
		}
	}
	if err := uc.save(ctx, appt, []appointment.Status{from}); err != nil {
		return nil, err
	}
	uc.metrics.Transition(to.String())
	return queries.NewAppointmentView(appt), nil
}

// loadManaged loads an appointment the caller manages: the offering's vendor or an admin.
func (uc *appointmentUseCaseImpl) loadManaged(ctx context.Context, caller actor.Actor, id uuid.UUID) (*appointment.Appointment, error) {
	appt, off, err := queries.LoadAppointment(ctx, uc.appointments, uc.offerings, caller, id)
	if err != nil {
		return nil, err
	}
	if !manages(caller, off) {
		return nil, shared.ErrNotPermitted
	}
	return appt, nil
}

func (uc *appointmentUseCaseImpl) save(ctx context.Context, appt *appointment.Appointment, from []appointment.Status) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Appointments().Save(ctx, appt, from)
	})
	if err != nil {
		return uc.saveError(ctx, appt, err)
	}
	return nil
}

func (uc *appointmentUseCaseImpl) saveError(ctx context.Context, appt *appointment.Appointment, err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return transitionError(ctx, appt, err)
	}
	return shared.Internal(err, "save appointment")
}

func transitionError(ctx context.Context, appt *appointment.Appointment, cause error) error {
	slog.InfoContext(ctx, "appointment transition rejected",
		"appointment_id", appt.ID(),
		"status", appt.Status().String(),
		"reason", cause.Error())
	return shared.NewConflict(shared.ErrInvalidTransition, shared.ReasonInvalidTransition)
}

func manages(caller actor.Actor, off *offering.Offering) bool {
	return caller.IsAdmin() || (caller.Role == actor.RoleVendor && off.IsOwnedBy(caller.ID))
}

func isOneOf(s appointment.Status, set []appointment.Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
