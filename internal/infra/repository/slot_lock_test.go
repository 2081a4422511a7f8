//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/domain/slotlock"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/repository"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/pkg/pgconv"
	repositorymock "booking-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var lockNow = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func newTestLock(t *testing.T, holder uuid.UUID) *slotlock.Lock {
	t.Helper()
	key, err := slotlock.NewKey(uuid.New(), recurrence.MustDate("2024-06-01"),
		recurrence.MustTimeOfDay("09:00"), recurrence.MustTimeOfDay("09:30"))
	require.NoError(t, err)
	lock, err := slotlock.New(key, holder, lockNow, 10*time.Minute)
	require.NoError(t, err)
	return lock
}

func lockRow(l *slotlock.Lock) sqlc.SlotLocks {
	k := l.Key()
	return sqlc.SlotLocks{
		ID:         l.ID(),
		OfferingID: k.OfferingID,
		SlotDate:   pgconv.DateToPgtype(k.Date),
		StartTime:  pgconv.TimeOfDayToPgtype(k.Start),
		EndTime:    pgconv.TimeOfDayToPgtype(k.End),
		HeldBy:     l.HeldBy(),
		CreatedAt:  pgconv.TimeToPgtype(l.CreatedAt()),
		ExpiresAt:  pgconv.TimeToPgtype(l.ExpiresAt()),
	}
}

// =============================================================================
// Acquire Tests
// =============================================================================

func TestSlotLockStore_Acquire(t *testing.T) {
	ctx := context.Background()
	holder := uuid.New()
	other := uuid.New()

	testCases := []struct {
		name         string
		setupMock    func(*repositorymock.MockSlotLockQueries, *slotlock.Lock, *mockDBTX)
		expectHolder uuid.UUID
		expectNew    bool
		expectKind   infra.RepositoryErrorKind
	}{
		{
			name: "success: free key is acquired",
			setupMock: func(mock *repositorymock.MockSlotLockQueries, lock *slotlock.Lock, tx *mockDBTX) {
				mock.EXPECT().AcquireSlotLock(ctx, tx, gomock.Any()).Return(lockRow(lock), nil)
			},
			expectHolder: holder,
			expectNew:    true,
		},
		{
			name: "success: live lock of another holder is returned",
			setupMock: func(mock *repositorymock.MockSlotLockQueries, lock *slotlock.Lock, tx *mockDBTX) {
				current := slotlock.Reconstruct(uuid.New(), lock.Key(), other, lockNow, lockNow.Add(5*time.Minute))
				mock.EXPECT().AcquireSlotLock(ctx, tx, gomock.Any()).Return(sqlc.SlotLocks{}, pgx.ErrNoRows)
				mock.EXPECT().GetLiveSlotLockByKey(ctx, tx, gomock.Any()).Return(lockRow(current), nil)
			},
			expectHolder: other,
			expectNew:    false,
		},
		{
			name: "success: conflicting lock vanishes and the retry wins",
			setupMock: func(mock *repositorymock.MockSlotLockQueries, lock *slotlock.Lock, tx *mockDBTX) {
				gomock.InOrder(
					mock.EXPECT().AcquireSlotLock(ctx, tx, gomock.Any()).Return(sqlc.SlotLocks{}, pgx.ErrNoRows),
					mock.EXPECT().GetLiveSlotLockByKey(ctx, tx, gomock.Any()).Return(sqlc.SlotLocks{}, pgx.ErrNoRows),
					mock.EXPECT().AcquireSlotLock(ctx, tx, gomock.Any()).Return(lockRow(lock), nil),
				)
			},
			expectHolder: holder,
			expectNew:    true,
		},
		{
			name: "error: contention never settles",
			setupMock: func(mock *repositorymock.MockSlotLockQueries, lock *slotlock.Lock, tx *mockDBTX) {
				mock.EXPECT().AcquireSlotLock(ctx, tx, gomock.Any()).Return(sqlc.SlotLocks{}, pgx.ErrNoRows).Times(3)
				mock.EXPECT().GetLiveSlotLockByKey(ctx, tx, gomock.Any()).Return(sqlc.SlotLocks{}, pgx.ErrNoRows).Times(3)
			},
			expectKind: infra.KindConflict,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockSlotLockQueries, lock *slotlock.Lock, tx *mockDBTX) {
				mock.EXPECT().AcquireSlotLock(ctx, tx, gomock.Any()).Return(sqlc.SlotLocks{}, errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSlotLockQueries(ctrl)
			mockDB := &mockDBTX{}
			store := repository.NewSlotLockStore(mockQueries, mockDB, clock.NewMockClock(lockNow))
			lock := newTestLock(t, holder)

			tc.setupMock(mockQueries, lock, mockDB)

			got, acquired, err := store.Acquire(ctx, lock)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.expectNew, acquired)
			assert.Equal(t, tc.expectHolder, got.HeldBy())
			assert.Equal(t, lock.Key(), got.Key())
		})
	}
}

// =============================================================================
// Get / GetByID Tests
// =============================================================================

func TestSlotLockStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reads with the clock's now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotLockQueries(ctrl)
		mockDB := &mockDBTX{}
		store := repository.NewSlotLockStore(mockQueries, mockDB, clock.NewMockClock(lockNow))
		lock := newTestLock(t, uuid.New())

		mockQueries.EXPECT().GetLiveSlotLockByKey(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.GetLiveSlotLockByKeyParams) (sqlc.SlotLocks, error) {
				assert.True(t, lockNow.Equal(pgconv.TimeFromPgtype(arg.Now)))
				assert.Equal(t, lock.Key().OfferingID, arg.OfferingID)
				return lockRow(lock), nil
			})

		got, err := store.Get(ctx, lock.Key())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, lock.ID(), got.ID())
	})

	t.Run("success: missing key is nil without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotLockQueries(ctrl)
		store := repository.NewSlotLockStore(mockQueries, &mockDBTX{}, clock.NewMockClock(lockNow))

		mockQueries.EXPECT().GetLiveSlotLockByKey(ctx, gomock.Any(), gomock.Any()).Return(sqlc.SlotLocks{}, pgx.ErrNoRows)

		got, err := store.Get(ctx, newTestLock(t, uuid.New()).Key())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("error: unknown id fails only on database errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotLockQueries(ctrl)
		store := repository.NewSlotLockStore(mockQueries, &mockDBTX{}, clock.NewMockClock(lockNow))

		mockQueries.EXPECT().GetLiveSlotLockByID(ctx, gomock.Any(), gomock.Any()).Return(sqlc.SlotLocks{}, pgx.ErrNoRows)
		got, err := store.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)

		mockQueries.EXPECT().GetLiveSlotLockByID(ctx, gomock.Any(), gomock.Any()).Return(sqlc.SlotLocks{}, errors.New("timeout"))
		_, err = store.GetByID(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// ListHeldBy / Release / DeleteExpired Tests
// =============================================================================

func TestSlotLockStore_ListHeldBy(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSlotLockQueries(ctrl)
	mockDB := &mockDBTX{}
	store := repository.NewSlotLockStore(mockQueries, mockDB, clock.NewMockClock(lockNow))

	holder := uuid.New()
	first, second := newTestLock(t, holder), newTestLock(t, holder)
	mockQueries.EXPECT().ListLiveSlotLocksByHolder(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListLiveSlotLocksByHolderParams) ([]sqlc.SlotLocks, error) {
			assert.Equal(t, holder, arg.HeldBy)
			return []sqlc.SlotLocks{lockRow(first), lockRow(second)}, nil
		})

	got, err := store.ListHeldBy(ctx, holder)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID(), got[0].ID())
	assert.Equal(t, second.ID(), got[1].ID())
}

func TestSlotLockStore_Release(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectRelease bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: row deleted", affected: 1, expectRelease: true},
		{name: "success: already gone", affected: 0, expectRelease: false},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSlotLockQueries(ctrl)
			mockDB := &mockDBTX{}
			store := repository.NewSlotLockStore(mockQueries, mockDB, clock.NewMockClock(lockNow))
			lock := newTestLock(t, uuid.New())

			mockQueries.EXPECT().DeleteSlotLock(ctx, mockDB, lock.ID()).Return(tc.affected, tc.queryErr)

			released, err := store.Release(ctx, lock)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectRelease, released)
		})
	}
}

func TestSlotLockStore_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSlotLockQueries(ctrl)
	mockDB := &mockDBTX{}
	store := repository.NewSlotLockStore(mockQueries, mockDB, clock.NewMockClock(lockNow))

	mockQueries.EXPECT().DeleteExpiredSlotLocks(ctx, mockDB, pgconv.TimeToPgtype(lockNow)).Return(int64(4), nil)

	n, err := store.DeleteExpired(ctx, lockNow)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
