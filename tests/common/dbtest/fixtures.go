//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"booking-engine/internal/domain/recurrence"
	"booking-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateOffering(t *testing.T, db DBLike, b *builder.OfferingBuilder) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO offerings (id, service_id, vendor_id, name, duration_minutes, price_minor, currency, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.ServiceID, b.VendorID, b.Name, int32(b.Duration/time.Minute), b.PriceMinor, b.Currency, b.Active)
	require.NoError(t, err)

	return b.ID
}

// CreateRecurrence stores one definition holding entries for the month of the first entry.
func CreateRecurrence(t *testing.T, db DBLike, offeringID uuid.UUID, entries ...recurrence.DateEntry) uuid.UUID {
	t.Helper()
	require.NotEmpty(t, entries, "a recurrence definition needs at least one entry")

	doc, err := json.Marshal(entries)
	require.NoError(t, err)

	id := uuid.New()
	first := entries[0].Date
	_, err = db.Exec(context.Background(), `
		INSERT INTO recurrence_definitions (id, offering_id, month, year, entries)
		VALUES ($1, $2, $3, $4, $5)`,
		id, offeringID, int16(first.Month()), int32(first.Year()), doc)
	require.NoError(t, err)

	return id
}

func CountAppointments(t *testing.T, db DBLike, offeringID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM appointments WHERE offering_id = $1 AND status = $2", offeringID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
