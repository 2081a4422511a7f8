package request

import (
	"time"

	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotsQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
	// Duration is in minutes; absent uses the offering's duration.
	Duration *int `form:"duration" binding:"omitempty,min=1,max=1440"`
}

func (q SlotsQuery) ToParams() (recurrence.CivilDate, time.Duration, error) {
	date, err := recurrence.ParseDate(q.Date)
	if err != nil {
		return recurrence.CivilDate{}, 0, err
	}
	if q.Duration == nil {
		return date, 0, nil
	}
	return date, time.Duration(*q.Duration) * time.Minute, nil
}

type DateQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

func (q DateQuery) ToDate() (recurrence.CivilDate, error) {
	return recurrence.ParseDate(q.Date)
}

type CheckSlotQuery struct {
	Date  string `form:"date" binding:"required,datetime=2006-01-02"`
	Start string `form:"start" binding:"required,len=5"`
	End   string `form:"end" binding:"required,len=5"`
}

func (q CheckSlotQuery) ToParams(offeringID, caller uuid.UUID) (queries.CheckSlotParams, error) {
	date, start, end, err := parseSlot(q.Date, q.Start, q.End)
	if err != nil {
		return queries.CheckSlotParams{}, err
	}
	return queries.CheckSlotParams{
		OfferingID: offeringID,
		Date:       date,
		Start:      start,
		End:        end,
		Caller:     caller,
	}, nil
}

// SlotKeyRequest names one slot of one offering. It is the body of lock, unlock
// and booking requests. Times are HH:MM and 24:00 ends a day.
type SlotKeyRequest struct {
	OfferingID uuid.UUID `json:"offeringId" binding:"required"`
	Date       string    `json:"date" binding:"required,datetime=2006-01-02"`
	Start      string    `json:"start" binding:"required,len=5"`
	End        string    `json:"end" binding:"required,len=5"`
}

func (r SlotKeyRequest) ToParams() (commands.LockSlotParams, error) {
	date, start, end, err := parseSlot(r.Date, r.Start, r.End)
	if err != nil {
		return commands.LockSlotParams{}, err
	}
	return commands.LockSlotParams{
		OfferingID: r.OfferingID,
		Date:       date,
		Start:      start,
		End:        end,
	}, nil
}

type LockSlotRequest struct {
	SlotKeyRequest
}

type UnlockSlotRequest struct {
	SlotKeyRequest
}

func parseSlot(dateStr, startStr, endStr string) (recurrence.CivilDate, recurrence.TimeOfDay, recurrence.TimeOfDay, error) {
	date, err := recurrence.ParseDate(dateStr)
	if err != nil {
		return recurrence.CivilDate{}, 0, 0, err
	}
	start, err := recurrence.ParseTimeOfDay(startStr)
	if err != nil {
		return recurrence.CivilDate{}, 0, 0, err
	}
	end, err := recurrence.ParseTimeOfDay(endStr)
	if err != nil {
		return recurrence.CivilDate{}, 0, 0, err
	}
	return date, start, end, nil
}
