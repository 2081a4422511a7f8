package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/metrics"
	"booking-engine/internal/usecase/shared"
)

// Sweep is one periodic background job. Run must be safe to repeat: a second
// run over rows that were already processed changes nothing.
type Sweep interface {
	Name() string
	Interval() time.Duration
	Run(ctx context.Context, now time.Time) (int, error)
}

// Runner ticks every sweep on its own interval. Before each run the sweep is
// claimed through the guard so one process runs it per interval.
type Runner struct {
	guard   shared.SweepGuard
	clock   clock.Clock
	metrics *metrics.Metrics
	sweeps  []Sweep

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRunner(guard shared.SweepGuard, clk clock.Clock, m *metrics.Metrics, sweeps ...Sweep) *Runner {
	return &Runner{
		guard:   guard,
		clock:   clk,
		metrics: m,
		sweeps:  sweeps,
	}
}

func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	for _, s := range r.sweeps {
		r.wg.Add(1)
		go r.loop(ctx, s)
	}
	slog.Info("background sweeps started", "count", len(r.sweeps))
}

func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	slog.Info("background sweeps stopped")
}

func (r *Runner) loop(ctx context.Context, s Sweep) {
	defer r.wg.Done()
	ticker := time.NewTicker(s.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RunOnce(ctx, s)
		}
	}
}

// RunOnce claims and runs s a single time.
func (r *Runner) RunOnce(ctx context.Context, s Sweep) {
	now := r.clock.Now()
	// ticks drift slightly; a claim due a moment early must not be skipped
	claimed, err := r.guard.Claim(ctx, s.Name(), now, s.Interval()-s.Interval()/10)
	if err != nil {
		r.metrics.SweepRun(s.Name(), metrics.SweepFailed)
		slog.ErrorContext(ctx, "sweep claim failed", "sweep", s.Name(), "error", err.Error())
		return
	}
	if !claimed {
		r.metrics.SweepRun(s.Name(), metrics.SweepSkipped)
		slog.DebugContext(ctx, "sweep already ran in this interval", "sweep", s.Name())
		return
	}

	n, err := s.Run(ctx, now)
	if err != nil {
		r.metrics.SweepRun(s.Name(), metrics.SweepFailed)
		slog.ErrorContext(ctx, "sweep failed", "sweep", s.Name(), "processed", n, "error", err.Error())
		return
	}
	r.metrics.SweepRun(s.Name(), metrics.SweepClaimed)
	if n > 0 {
		slog.InfoContext(ctx, "sweep finished", "sweep", s.Name(), "processed", n)
	}
}
