//go:build unit || e2e

package builder

import (
	"time"

	"booking-engine/internal/domain/offering"
	"booking-engine/internal/domain/recurrence"
	sqlc "booking-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type OfferingBuilder struct {
	ID         uuid.UUID
	ServiceID  uuid.UUID
	VendorID   uuid.UUID
	Name       string
	Duration   time.Duration
	PriceMinor int64
	Currency   string
	Active     bool
}

func NewOfferingBuilder() *OfferingBuilder {
	return &OfferingBuilder{
		ID:         uuid.New(),
		ServiceID:  uuid.New(),
		VendorID:   uuid.New(),
		Name:       "Haircut",
		Duration:   30 * time.Minute,
		PriceMinor: 100,
		Currency:   "usd",
		Active:     true,
	}
}

func (b *OfferingBuilder) With(mutate func(*OfferingBuilder)) *OfferingBuilder {
	mutate(b)
	return b
}

func (b *OfferingBuilder) WithID(id uuid.UUID) *OfferingBuilder {
	b.ID = id
	return b
}

func (b *OfferingBuilder) WithVendor(vendorID uuid.UUID) *OfferingBuilder {
	b.VendorID = vendorID
	return b
}

func (b *OfferingBuilder) WithService(serviceID uuid.UUID) *OfferingBuilder {
	b.ServiceID = serviceID
	return b
}

func (b *OfferingBuilder) BuildDomain() *offering.Offering {
	off, err := offering.New(b.ID, b.ServiceID, b.VendorID, b.Name, b.Duration, b.PriceMinor, b.Currency, b.Active)
	if err != nil {
		panic(err)
	}
	return off
}

func (b *OfferingBuilder) BuildRow() sqlc.GetOfferingByIDRow {
	return sqlc.GetOfferingByIDRow{
		ID:              b.ID,
		ServiceID:       b.ServiceID,
		VendorID:        b.VendorID,
		Name:            b.Name,
		DurationMinutes: int32(b.Duration / time.Minute),
		PriceMinor:      b.PriceMinor,
		Currency:        b.Currency,
		Active:          b.Active,
	}
}

// Entry builds a recurrence entry for date with one window per "HH:MM-HH:MM" span.
func Entry(date string, capacity int, spans ...string) recurrence.DateEntry {
	e := recurrence.DateEntry{Date: recurrence.MustDate(date), DefaultCapacity: capacity}
	for _, s := range spans {
		e.TimeWindows = append(e.TimeWindows, recurrence.TimeWindow{
			Start: recurrence.MustTimeOfDay(s[:5]),
			End:   recurrence.MustTimeOfDay(s[6:]),
		})
	}
	return e
}
