package providers

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobcard/internal/domains"
)

type EngineerProvider struct {
	db *pgxpool.Pool
}

func NewEngineerProvider(db *pgxpool.Pool) *EngineerProvider {
	return &EngineerProvider{
		db: db,
	}
}

func (e *EngineerProvider) GetEngineerByID(ctx context.Context, id int64) (domains.Engineer, error) {
	rows, err := e.db.Query(ctx, `SELECT id, eng_id, name FROM engineers WHERE id = $1`, id)
	if err != nil {
		return domains.Engineer{}, err
	}
	engineer, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Engineer])
	if err != nil {
		return domains.Engineer{}, mapError(err)
	}
	return engineer, nil
}
