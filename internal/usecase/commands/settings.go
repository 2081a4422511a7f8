package commands

import (
	"time"

	"booking-engine/internal/pkg/config"
)

type Settings struct {
	Location        *time.Location
	LockTTL         time.Duration
	Currency        string
	MinReasonLength int
	// ReminderMarkerTTL bounds how long a cancelled reminder marker is kept.
	ReminderMarkerTTL time.Duration
}

func NewSettings(cfg config.BookingConfig, sweep config.SweepConfig) (Settings, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Location:          loc,
		LockTTL:           cfg.LockTTL,
		Currency:          cfg.Currency,
		MinReasonLength:   cfg.MinReasonLength,
		ReminderMarkerTTL: sweep.ReminderLead + 24*time.Hour,
	}, nil
}
