package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"symposiumbot/internal/models"
)

// SeriesRepo is the Postgres implementation of SeriesRepository.
type SeriesRepo struct {
	db *sqlx.DB
}

// NewSeriesRepo builds a series repository on the given database.
func NewSeriesRepo(db *sqlx.DB) *SeriesRepo {
	return &SeriesRepo{db: db}
}

// Create inserts a series and returns its generated id.
func (r *SeriesRepo) Create(ctx context.Context, s *models.Series) (int64, error) {
	const query = `
		INSERT INTO event_series (name, start_date, end_date, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		s.Name, s.StartDate, s.EndDate, s.Description, s.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, models.NewStoreError("series.create", err)
	}
	return id, nil
}

// GetByID fetches one series or models.ErrNotFound.
func (r *SeriesRepo) GetByID(ctx context.Context, id int64) (*models.Series, error) {
	const query = `
		SELECT id, name, start_date, end_date, description, image_url
		FROM event_series
		WHERE id = $1`

	var s models.Series
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, models.NewStoreError("series.get", err)
	}
	return &s, nil
}

// List returns all series ordered by start date.
func (r *SeriesRepo) List(ctx context.Context) ([]models.Series, error) {
	const query = `
		SELECT id, name, start_date, end_date, description, image_url
		FROM event_series
		ORDER BY start_date, id`

	var series []models.Series
	if err := r.db.SelectContext(ctx, &series, query); err != nil {
		return nil, models.NewStoreError("series.list", err)
	}
	return series, nil
}

// Update overwrites every mutable column of the series.
func (r *SeriesRepo) Update(ctx context.Context, s *models.Series) error {
	const query = `
		UPDATE event_series
		SET name = $1, start_date = $2, end_date = $3, description = $4, image_url = $5
		WHERE id = $6`

	res, err := r.db.ExecContext(ctx, query,
		s.Name, s.StartDate, s.EndDate, s.Description, s.ImageURL, s.ID,
	)
	if err != nil {
		return models.NewStoreError("series.update", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.NewStoreError("series.update", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes the series together with its events. Both deletes run
// in one transaction so a partial removal can never be observed.
func (r *SeriesRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.NewStoreError("series.delete", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM events WHERE series_id = $1`, id); err != nil {
		return models.NewStoreError("series.delete", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM event_series WHERE id = $1`, id)
	if err != nil {
		return models.NewStoreError("series.delete", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.NewStoreError("series.delete", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return models.NewStoreError("series.delete", err)
	}
	return nil
}
