package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"booking-engine/internal/domain/recurrence"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerMinute = int64(time.Minute / time.Microsecond)

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func DateToPgtype(d recurrence.CivilDate) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) recurrence.CivilDate {
	if !pd.Valid {
		return recurrence.CivilDate{}
	}
	return recurrence.DateOf(pd.Time)
}

// TimeOfDayToPgtype maps to a Postgres TIME; 24:00 is a valid TIME value.
func TimeOfDayToPgtype(t recurrence.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t.Minutes()) * microsPerMinute, Valid: true}
}

func TimeOfDayFromPgtype(pt pgtype.Time) recurrence.TimeOfDay {
	return recurrence.TimeOfDay(pt.Microseconds / microsPerMinute)
}

func Int4PtrToPgtype(v *int32) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: *v, Valid: true}
}

func Int4PtrFromPgtype(pi pgtype.Int4) *int32 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int32
}

func Int8PtrToPgtype(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func Int8PtrFromPgtype(pi pgtype.Int8) *int64 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int64
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
