package components

import (
	"context"

	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/metrics"
	"booking-engine/internal/usecase/shared"
	"booking-engine/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweepRunner,
	),
	fx.Invoke(startSweeps),
)

type sweepRunnerIn struct {
	fx.In

	Guard        shared.SweepGuard
	Appointments shared.AppointmentReader
	UoW          shared.UnitOfWork
	Locks        shared.SlotLockStore
	Dedup        shared.DedupStore
	Dispatcher   shared.Dispatcher
	Clock        clock.Clock
	Metrics      *metrics.Metrics
	Config       config.Config
}

func NewSweepRunner(in sweepRunnerIn) *worker.Runner {
	sweep := in.Config.Sweep
	return worker.NewRunner(in.Guard, in.Clock, in.Metrics,
		&worker.AutoComplete{
			Appointments: in.Appointments,
			UoW:          in.UoW,
			Dispatcher:   in.Dispatcher,
			Metrics:      in.Metrics,
			Buffer:       in.Config.Booking.AutoCompleteBuffer,
			BatchSize:    sweep.BatchSize,
			Every:        sweep.AutoCompleteInterval,
		},
		&worker.LockCleanup{
			Locks: in.Locks,
			Every: sweep.LockCleanupInterval,
		},
		&worker.ReminderDispatch{
			Appointments: in.Appointments,
			Dedup:        in.Dedup,
			Dispatcher:   in.Dispatcher,
			Lead:         sweep.ReminderLead,
			MarkerTTL:    sweep.ReminderLead + sweep.ReminderInterval,
			BatchSize:    sweep.BatchSize,
			Every:        sweep.ReminderInterval,
		},
	)
}

func startSweeps(lc fx.Lifecycle, r *worker.Runner) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			r.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			r.Stop()
			return nil
		},
	})
}
