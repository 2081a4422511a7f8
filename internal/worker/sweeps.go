package worker

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/metrics"
	"booking-engine/internal/usecase/shared"
)

const (
	SweepAutoComplete     = "auto_complete"
	SweepLockCleanup      = "lock_cleanup"
	SweepReminderDispatch = "reminder_dispatch"
)

// AutoComplete moves confirmed appointments to completed once their end plus
// a buffer has passed.
type AutoComplete struct {
	Appointments shared.AppointmentReader
	UoW          shared.UnitOfWork
	Dispatcher   shared.Dispatcher
	Metrics      *metrics.Metrics
	Buffer       time.Duration
	BatchSize    int32
	Every        time.Duration
}

func (s *AutoComplete) Name() string            { return SweepAutoComplete }
func (s *AutoComplete) Interval() time.Duration { return s.Every }

func (s *AutoComplete) Run(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-s.Buffer)
	due, err := s.Appointments.Find(ctx, shared.AppointmentFilter{
		Statuses:   []appointment.Status{appointment.StatusConfirmed},
		EndsBefore: &cutoff,
		Limit:      uint64(s.BatchSize),
	})
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, a := range due {
		if err := a.Complete(now); err != nil {
			continue
		}
		err := s.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Appointments().Save(ctx, a, []appointment.Status{appointment.StatusConfirmed})
		})
		if infra.IsKind(err, infra.KindConflict) {
			// changed by a request since it was read
			continue
		}
		if err != nil {
			return completed, err
		}
		completed++
		s.Metrics.Transition(appointment.StatusCompleted.String())
		s.Dispatcher.Dispatch(ctx, shared.NewAppointmentEvent(shared.EventBookingCompleted, a, now))
	}
	return completed, nil
}

// LockCleanup deletes expired slot locks from stores without native expiry.
type LockCleanup struct {
	Locks shared.SlotLockStore
	Every time.Duration
}

func (s *LockCleanup) Name() string            { return SweepLockCleanup }
func (s *LockCleanup) Interval() time.Duration { return s.Every }

func (s *LockCleanup) Run(ctx context.Context, now time.Time) (int, error) {
	n, err := s.Locks.DeleteExpired(ctx, now)
	return int(n), err
}

// ReminderDispatch notifies customers of confirmed appointments starting
// within Lead. Each appointment is reminded at most once; the marker lives in
// the dedup store so restarts and other instances see it.
type ReminderDispatch struct {
	Appointments shared.AppointmentReader
	Dedup        shared.DedupStore
	Dispatcher   shared.Dispatcher
	Lead         time.Duration
	MarkerTTL    time.Duration
	BatchSize    int32
	Every        time.Duration
}

func (s *ReminderDispatch) Name() string            { return SweepReminderDispatch }
func (s *ReminderDispatch) Interval() time.Duration { return s.Every }

func (s *ReminderDispatch) Run(ctx context.Context, now time.Time) (int, error) {
	until := now.Add(s.Lead)
	upcoming, err := s.Appointments.Find(ctx, shared.AppointmentFilter{
		Statuses:     []appointment.Status{appointment.StatusConfirmed},
		StartsFrom:   &now,
		StartsBefore: &until,
		Limit:        uint64(s.BatchSize),
	})
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, a := range upcoming {
		first, err := s.Dedup.MarkOnce(ctx, shared.ReminderKey(a.ID()), s.MarkerTTL)
		if err != nil {
			slog.WarnContext(ctx, "reminder marker failed", "appointment_id", a.ID(), "error", err.Error())
			continue
		}
		if !first {
			continue
		}
		e := shared.NewAppointmentEvent(shared.EventBookingReminder, a, now)
		e.Attributes = map[string]string{"lead_minutes": strconv.Itoa(int(s.Lead / time.Minute))}
		s.Dispatcher.Dispatch(ctx, e)
		sent++
	}
	return sent, nil
}
