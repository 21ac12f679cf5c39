package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type healthRepository struct {
	db *sqlx.DB
}

func NewHealthRepository(db *sqlx.DB) HealthRepository {
	return &healthRepository{db: db}
}

func (r *healthRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.db.GetContext(ctx, &one, `SELECT 1`); err != nil {
		return dbError(err, "health check")
	}
	return nil
}

// CountTables reports how many tables exist in the public schema.
func (r *healthRepository) CountTables(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public'
	`)
	if err != nil {
		return 0, dbError(err, "count tables")
	}

	return count, nil
}
