// Package storage implements Postgres persistence for symposium series
// and their events on top of sqlx.
package storage

import (
	"context"

	"github.com/jmoiron/sqlx"

	"symposiumbot/internal/models"
)

// SeriesRepository persists symposium series.
type SeriesRepository interface {
	Create(ctx context.Context, s *models.Series) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Series, error)
	List(ctx context.Context) ([]models.Series, error)
	Update(ctx context.Context, s *models.Series) error
	// Delete removes the series and all of its events in one transaction.
	Delete(ctx context.Context, id int64) error
}

// EventRepository persists events belonging to a series.
type EventRepository interface {
	Create(ctx context.Context, e *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	ListBySeries(ctx context.Context, seriesID int64) ([]models.Event, error)
	Update(ctx context.Context, e *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// Store groups the repositories sharing one database handle.
type Store struct {
	Series SeriesRepository
	Events EventRepository
}

// New builds a Store backed by the given database.
func New(db *sqlx.DB) *Store {
	return &Store{
		Series: NewSeriesRepo(db),
		Events: NewEventRepo(db),
	}
}
