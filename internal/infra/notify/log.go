package notify

import (
	"context"
	"log/slog"

	"booking-engine/internal/usecase/shared"
)

// LogNotifier only records events. Used when no broker is configured.
type LogNotifier struct{}

func (LogNotifier) Publish(ctx context.Context, e shared.Event) error {
	slog.InfoContext(ctx, "booking event",
		"type", e.Type,
		"appointment_id", e.AppointmentID,
		"offering_id", e.OfferingID,
		"date", e.Date,
		"start", e.Start)
	return nil
}
