package providers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"jobcard/internal/storage"
)

func TestMapError(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "no rows", err: pgx.ErrNoRows, wantIs: storage.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("select: %w", pgx.ErrNoRows), wantIs: storage.ErrNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, wantIs: storage.ErrConflict},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, wantIs: storage.ErrDanglingReference},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, wantIs: nil},
		{name: "plain", err: boom, wantIs: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.Error(t, got)
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			}
		})
	}

	t.Run("pg error stays in chain", func(t *testing.T) {
		var pgErr *pgconn.PgError
		assert.ErrorAs(t, mapError(&pgconn.PgError{Code: "23503"}), &pgErr)
	})
}
