package readstore

import (
	"context"
	"time"

	"booking-engine/internal/domain/offering"
	"booking-engine/internal/infra"
	sqlc "booking-engine/internal/infra/sqlc/generated"
	"booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

type OfferingReadQueries interface {
	GetOfferingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOfferingByIDRow, error)
	ListOfferingsByService(ctx context.Context, db sqlc.DBTX, serviceID uuid.UUID) ([]sqlc.ListOfferingsByServiceRow, error)
}

// OfferingReadStore caches offering metadata (duration, price, owner) for a
// short TTL. Capacity is never cached.
type OfferingReadStore struct {
	queries OfferingReadQueries
	db      sqlc.DBTX
	cache   *expirable.LRU[uuid.UUID, *offering.Offering]
}

func NewOfferingReadStore(queries OfferingReadQueries, db sqlc.DBTX, size int, ttl time.Duration) *OfferingReadStore {
	return &OfferingReadStore{
		queries: queries,
		db:      db,
		cache:   expirable.NewLRU[uuid.UUID, *offering.Offering](size, nil, ttl),
	}
}

func (r *OfferingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	if off, ok := r.cache.Get(id); ok {
		return off, nil
	}

	row, err := r.queries.GetOfferingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offering not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offering by ID", err)
	}

	off, err := offering.New(row.ID, row.ServiceID, row.VendorID, row.Name,
		time.Duration(row.DurationMinutes)*time.Minute, row.PriceMinor, row.Currency, row.Active)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid offering row", err)
	}
	r.cache.Add(id, off)
	return off, nil
}

func (r *OfferingReadStore) ListByService(ctx context.Context, serviceID uuid.UUID) ([]*offering.Offering, error) {
	rows, err := r.queries.ListOfferingsByService(ctx, r.db, serviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offerings by service", err)
	}

	out := make([]*offering.Offering, 0, len(rows))
	for _, row := range rows {
		off, err := offering.New(row.ID, row.ServiceID, row.VendorID, row.Name,
			time.Duration(row.DurationMinutes)*time.Minute, row.PriceMinor, row.Currency, row.Active)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid offering row", err)
		}
		r.cache.Add(off.ID(), off)
		out = append(out, off)
	}
	return out, nil
}
