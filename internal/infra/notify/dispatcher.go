package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booking-engine/internal/usecase/shared"
)

// Dispatcher publishes each event on its own goroutine. Failures are logged
// and never reach the caller.
type Dispatcher struct {
	notifier shared.Notifier
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewDispatcher(notifier shared.Notifier, timeout time.Duration) *Dispatcher {
	return &Dispatcher{notifier: notifier, timeout: timeout}
}

func (d *Dispatcher) Dispatch(ctx context.Context, e shared.Event) {
	// the request context ends with the response; keep its values only
	base := context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(base, "notification panicked", "type", e.Type, "panic", r)
			}
		}()

		pubCtx, cancel := context.WithTimeout(base, d.timeout)
		defer cancel()
		if err := d.notifier.Publish(pubCtx, e); err != nil {
			slog.WarnContext(base, "notification failed",
				"type", e.Type,
				"appointment_id", e.AppointmentID,
				"error", err.Error())
		}
	}()
}

// Wait blocks until in-flight notifications finish or ctx ends.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
