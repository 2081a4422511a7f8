package components

import (
	"booking-engine/internal/domain/appointment"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/metrics"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	appointment.DefaultRefundPolicy,
	queries.NewAvailability,
	NewCommandSettings,
	NewQuerySettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSlotLockUseCase,
		NewAppointmentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewAppointmentQueries,
	),
)

func NewCommandSettings(cfg config.Config) (commands.Settings, error) {
	return commands.NewSettings(cfg.Booking, cfg.Sweep)
}

func NewQuerySettings(cfg config.Config) (queries.Settings, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return queries.Settings{}, err
	}
	return queries.Settings{
		Location:        loc,
		NearbyDateCount: cfg.Booking.NearbyDateCount,
		LookaheadMonths: cfg.Booking.NearbyLookaheadMonths,
	}, nil
}

type appointmentCommandsIn struct {
	fx.In

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
	Settings     commands.Settings
}

func NewAppointmentCommands(in appointmentCommandsIn) commands.AppointmentCommands {
	return commands.NewAppointmentUseCase(commands.AppointmentDeps{
		UoW:          in.UoW,
		Availability: in.Availability,
		Appointments: in.Appointments,
		Offerings:    in.Offerings,
		Locks:        in.Locks,
		Payments:     in.Payments,
		Dispatcher:   in.Dispatcher,
		Dedup:        in.Dedup,
		Policy:       in.Policy,
		Clock:        in.Clock,
		Metrics:      in.Metrics,
	}, in.Settings)
}
