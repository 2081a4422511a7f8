package readstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"booking-engine/internal/domain/recurrence"
	"booking-engine/internal/infra"
	sqlc "booking-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RecurrenceReadQueries interface {
	ListRecurrenceEntries(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecurrenceEntriesParams) ([][]byte, error)
}

type RecurrenceReadStore struct {
	queries RecurrenceReadQueries
	db      sqlc.DBTX
}

func NewRecurrenceReadStore(queries RecurrenceReadQueries, db sqlc.DBTX) *RecurrenceReadStore {
	return &RecurrenceReadStore{
		queries: queries,
		db:      db,
	}
}

// ListEntries returns the entries of every definition covering the month.
// Definitions that fail to decode or validate are skipped with a warning so
// one bad row cannot take down availability for the whole month.
func (r *RecurrenceReadStore) ListEntries(ctx context.Context, offeringID uuid.UUID, month time.Month, year int) ([]recurrence.DateEntry, error) {
	docs, err := r.queries.ListRecurrenceEntries(ctx, r.db, sqlc.ListRecurrenceEntriesParams{
		OfferingID: offeringID,
		Month:      int16(month), // #nosec G115 -- month is 1..12
		Year:       int32(year),  // #nosec G115 -- calendar year
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recurrence entries", err)
	}

	var out []recurrence.DateEntry
	for _, doc := range docs {
		var entries []recurrence.DateEntry
		if err := json.Unmarshal(doc, &entries); err != nil {
			slog.WarnContext(ctx, "skipping undecodable recurrence definition",
				"offering_id", offeringID, "month", int(month), "year", year, "error", err.Error())
			continue
		}
		def := recurrence.Definition{OfferingID: offeringID, Month: month, Year: year, Entries: entries}
		if err := def.Validate(); err != nil {
			slog.WarnContext(ctx, "skipping invalid recurrence definition",
				"offering_id", offeringID, "month", int(month), "year", year, "error", err.Error())
			continue
		}
		out = append(out, entries...)
	}
	return out, nil
}
