package repository

import (
	"context"
	"time"

	"booking-engine/internal/infra"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"
)

type SweepRunQueries interface {
	ClaimSweepRun(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimSweepRunParams) (int64, error)
}

// SweepRunGuard records the last run of each sweep so that only one process
// runs a sweep per interval.
type SweepRunGuard struct {
	queries SweepRunQueries
	db      sqlc.DBTX
}

func NewSweepRunGuard(queries SweepRunQueries, db sqlc.DBTX) *SweepRunGuard {
	return &SweepRunGuard{
		queries: queries,
		db:      db,
	}
}

func (g *SweepRunGuard) Claim(ctx context.Context, name string, now time.Time, interval time.Duration) (bool, error) {
	n, err := g.queries.ClaimSweepRun(ctx, g.db, sqlc.ClaimSweepRunParams{
		Name:      name,
		LastRunAt: pgconv.TimeToPgtype(now),
		DueBefore: pgconv.TimeToPgtype(now.Add(-interval)),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim sweep run", err)
	}
	return n > 0, nil
}
