package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"symposiumbot/internal/models"
)

// EventRepo is the Postgres implementation of EventRepository.
type EventRepo struct {
	db *sqlx.DB
}

// NewEventRepo builds an event repository on the given database.
func NewEventRepo(db *sqlx.DB) *EventRepo {
	return &EventRepo{db: db}
}

// Create inserts an event and returns its generated id.
func (r *EventRepo) Create(ctx context.Context, e *models.Event) (int64, error) {
	const query = `
		INSERT INTO events (series_id, date, time, title, room, speakers, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		e.SeriesID, e.Date, e.Time, e.Title, e.Room, e.Speakers, e.Description, e.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, models.NewStoreError("events.create", err)
	}
	return id, nil
}

// GetByID fetches one event or models.ErrNotFound.
func (r *EventRepo) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	const query = `
		SELECT id, series_id, date, time, title, room, speakers, description, image_url
		FROM events
		WHERE id = $1`

	var e models.Event
	if err := r.db.GetContext(ctx, &e, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, models.NewStoreError("events.get", err)
	}
	return &e, nil
}

// ListBySeries returns the events of a series in chronological order.
func (r *EventRepo) ListBySeries(ctx context.Context, seriesID int64) ([]models.Event, error) {
	const query = `
		SELECT id, series_id, date, time, title, room, speakers, description, image_url
		FROM events
		WHERE series_id = $1
		ORDER BY date, time, id`

	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query, seriesID); err != nil {
		return nil, models.NewStoreError("events.list", err)
	}
	return events, nil
}

// Update overwrites every mutable column of the event.
func (r *EventRepo) Update(ctx context.Context, e *models.Event) error {
	const query = `
		UPDATE events
		SET date = $1, time = $2, title = $3, room = $4, speakers = $5, description = $6, image_url = $7
		WHERE id = $8`

	res, err := r.db.ExecContext(ctx, query,
		e.Date, e.Time, e.Title, e.Room, e.Speakers, e.Description, e.ImageURL, e.ID,
	)
	if err != nil {
		return models.NewStoreError("events.update", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.NewStoreError("events.update", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a single event.
func (r *EventRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return models.NewStoreError("events.delete", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.NewStoreError("events.delete", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}
