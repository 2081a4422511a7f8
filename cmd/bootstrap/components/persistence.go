package components

import (
	"time"

	"booking-engine/internal/infra/readstore"
	"booking-engine/internal/infra/redisstore"
	"booking-engine/internal/infra/repository"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/infra/uow"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	redisstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	NewBookingLocation,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Appointment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AppointmentReadQueries)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(shared.AppointmentReader)),
		),
		// Offering
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OfferingReadQueries)),
		),
		fx.Annotate(
			NewOfferingReadStore,
			fx.As(new(shared.OfferingReader)),
		),
		// Recurrence
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RecurrenceReadQueries)),
		),
		fx.Annotate(
			readstore.NewRecurrenceReadStore,
			fx.As(new(shared.RecurrenceReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// SweepRun
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.SweepRunQueries)),
		),
		fx.Annotate(
			repository.NewSweepRunGuard,
			fx.As(new(shared.SweepGuard)),
		),
		// SlotLock (postgres backend)
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.SlotLockQueries)),
		),
		repository.NewSlotLockStore,
	),
)

var redisstoreModule = fx.Module("persistence/redisstore",
	fx.Provide(
		fx.Annotate(
			redisstore.NewDedupStore,
			fx.As(new(shared.DedupStore)),
		),
		redisstore.NewSlotLockStore,
		NewSlotLockStore,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}

func NewOfferingReadStore(q readstore.OfferingReadQueries, db sqlc.DBTX, cfg config.Config) *readstore.OfferingReadStore {
	return readstore.NewOfferingReadStore(q, db, cfg.Cache.OfferingSize, cfg.Cache.OfferingTTL)
}

// NewSlotLockStore selects the lock backend named by BOOKING_LOCK_BACKEND.
func NewSlotLockStore(cfg config.Config, redisLocks *redisstore.SlotLockStore, pgLocks *repository.SlotLockStore) shared.SlotLockStore {
	if cfg.Booking.LockBackend == config.LockBackendPostgres {
		return pgLocks
	}
	return redisLocks
}
