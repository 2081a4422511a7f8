package repository

import (
	"context"
	"time"

	"booking-engine/internal/domain/slotlock"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/repository/converter"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotLockQueries interface {
	AcquireSlotLock(ctx context.Context, db sqlc.DBTX, arg sqlc.AcquireSlotLockParams) (sqlc.SlotLocks, error)
	GetLiveSlotLockByKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLiveSlotLockByKeyParams) (sqlc.SlotLocks, error)
	GetLiveSlotLockByID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLiveSlotLockByIDParams) (sqlc.SlotLocks, error)
	ListLiveSlotLocksByHolder(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLiveSlotLocksByHolderParams) ([]sqlc.SlotLocks, error)
	DeleteSlotLock(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteExpiredSlotLocks(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

// SlotLockStore keeps slot locks in Postgres. The unique key constraint makes
// acquisition a single conditional upsert; expired rows are taken over in place.
type SlotLockStore struct {
	queries SlotLockQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

func NewSlotLockStore(queries SlotLockQueries, db sqlc.DBTX, clk clock.Clock) *SlotLockStore {
	return &SlotLockStore{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

// acquireAttempts bounds the race where the conflicting lock is deleted
// between the upsert and the follow-up read.
const acquireAttempts = 3

func (s *SlotLockStore) Acquire(ctx context.Context, lock *slotlock.Lock) (*slotlock.Lock, bool, error) {
	for attempt := 0; attempt < acquireAttempts; attempt++ {
		row, err := s.queries.AcquireSlotLock(ctx, s.db, converter.SlotLockToAcquireParams(lock))
		if err == nil {
			return converter.SlotLockFromRow(row), true, nil
		}
		if !pgconv.IsNoRows(err) {
			return nil, false, infra.WrapRepoErr("failed to acquire slot lock", err)
		}

		current, err := s.Get(ctx, lock.Key())
		if err != nil {
			return nil, false, err
		}
		if current != nil {
			return current, false, nil
		}
	}
	return nil, false, infra.WrapRepoErr("slot lock contended", nil, infra.KindConflict)
}

func (s *SlotLockStore) Get(ctx context.Context, key slotlock.Key) (*slotlock.Lock, error) {
	row, err := s.queries.GetLiveSlotLockByKey(ctx, s.db, sqlc.GetLiveSlotLockByKeyParams{
		OfferingID: key.OfferingID,
		SlotDate:   pgconv.DateToPgtype(key.Date),
		StartTime:  pgconv.TimeOfDayToPgtype(key.Start),
		EndTime:    pgconv.TimeOfDayToPgtype(key.End),
		Now:        pgconv.TimeToPgtype(s.clock.Now()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get slot lock", err)
	}
	return converter.SlotLockFromRow(row), nil
}

func (s *SlotLockStore) GetByID(ctx context.Context, id uuid.UUID) (*slotlock.Lock, error) {
	row, err := s.queries.GetLiveSlotLockByID(ctx, s.db, sqlc.GetLiveSlotLockByIDParams{
		ID:  id,
		Now: pgconv.TimeToPgtype(s.clock.Now()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get slot lock by id", err)
	}
	return converter.SlotLockFromRow(row), nil
}

func (s *SlotLockStore) ListHeldBy(ctx context.Context, holder uuid.UUID) ([]*slotlock.Lock, error) {
	rows, err := s.queries.ListLiveSlotLocksByHolder(ctx, s.db, sqlc.ListLiveSlotLocksByHolderParams{
		HeldBy: holder,
		Now:    pgconv.TimeToPgtype(s.clock.Now()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slot locks", err)
	}
	out := make([]*slotlock.Lock, len(rows))
	for i, row := range rows {
		out[i] = converter.SlotLockFromRow(row)
	}
	return out, nil
}

// Release deletes by id. Lock ids are unique per acquisition so a takeover of
// the key leaves the new holder's row untouched.
func (s *SlotLockStore) Release(ctx context.Context, lock *slotlock.Lock) (bool, error) {
	n, err := s.queries.DeleteSlotLock(ctx, s.db, lock.ID())
	if err != nil {
		return false, infra.WrapRepoErr("failed to release slot lock", err)
	}
	return n > 0, nil
}

func (s *SlotLockStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.queries.DeleteExpiredSlotLocks(ctx, s.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired slot locks", err)
	}
	return n, nil
}
