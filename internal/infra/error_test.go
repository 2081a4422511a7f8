//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"booking-engine/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("boom"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: pgx.ErrNoRows, kind: []infra.RepositoryErrorKind{infra.KindConflict}, want: infra.KindConflict},
		{name: "nil error with kind", err: nil, kind: []infra.RepositoryErrorKind{infra.KindConflict}, want: infra.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.want))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}
