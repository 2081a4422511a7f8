package queries

import "booking-engine/internal/pkg/errs"

var errInvalidDuration = errs.New("duration must be a non-negative whole number of minutes")
