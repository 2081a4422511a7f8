package components

import (
	"booking-engine/internal/handler"
	"booking-engine/internal/handler/api"
	"booking-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewSlotLockHandler,
		api.NewAppointmentHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(slots *api.SlotHandler, locks *api.SlotLockHandler, appointments *api.AppointmentHandler) handler.Handlers {
	return handler.Handlers{
		Slots:        slots,
		SlotLocks:    locks,
		Appointments: appointments,
	}
}
