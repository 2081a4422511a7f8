package offering

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration = errors.New("offering duration must be positive")
	ErrNegativePrice   = errors.New("offering price cannot be negative")
)

// Offering is a vendor's bookable instance of a service. Offerings sharing a
// ServiceID form one family for cross-vendor slot search.
type Offering struct {
	id         uuid.UUID
	serviceID  uuid.UUID
	vendorID   uuid.UUID
	name       string
	duration   time.Duration
	priceMinor int64
	currency   string
	active     bool
}

func New(id, serviceID, vendorID uuid.UUID, name string, duration time.Duration, priceMinor int64, currency string, active bool) (*Offering, error) {
	if duration <= 0 || duration%time.Minute != 0 {
		return nil, ErrInvalidDuration
	}
	if priceMinor < 0 {
		return nil, ErrNegativePrice
	}
	return &Offering{
		id:         id,
		serviceID:  serviceID,
		vendorID:   vendorID,
		name:       name,
		duration:   duration,
		priceMinor: priceMinor,
		currency:   currency,
		active:     active,
	}, nil
}

// SlotDuration resolves a requested duration, falling back to the offering's own.
func (o *Offering) SlotDuration(requested time.Duration) time.Duration {
	if requested > 0 {
		return requested
	}
	return o.duration
}

func (o *Offering) IsOwnedBy(vendorID uuid.UUID) bool {
	return o.vendorID == vendorID
}

func (o *Offering) ID() uuid.UUID           { return o.id }
func (o *Offering) ServiceID() uuid.UUID    { return o.serviceID }
func (o *Offering) VendorID() uuid.UUID     { return o.vendorID }
func (o *Offering) Name() string            { return o.name }
func (o *Offering) Duration() time.Duration { return o.duration }
func (o *Offering) PriceMinor() int64       { return o.priceMinor }
func (o *Offering) Currency() string        { return o.currency }
func (o *Offering) IsActive() bool          { return o.active }
