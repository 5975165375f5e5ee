package service

import (
	"context"
	"fmt"
	"log/slog"

	"symposiumbot/core/logger"
	"symposiumbot/internal/models"
	"symposiumbot/internal/storage"
)

// EventService manages events within a series.
type EventService struct {
	events storage.EventRepository
	series storage.SeriesRepository
}

// NewEventService builds an event service on the given repositories.
func NewEventService(events storage.EventRepository, series storage.SeriesRepository) *EventService {
	return &EventService{events: events, series: series}
}

// Create validates and persists a new event. The parent series must
// exist.
func (s *EventService) Create(ctx context.Context, event *models.Event) (int64, error) {
	if err := s.validate(event); err != nil {
		return 0, err
	}
	if _, err := s.series.GetByID(ctx, event.SeriesID); err != nil {
		return 0, err
	}

	id, err := s.events.Create(ctx, event)
	if err != nil {
		return 0, err
	}
	logger.LogEvent(ctx, logger.SVCEvents, slog.LevelInfo, "events.create",
		slog.Int64("series_id", event.SeriesID),
		slog.Int64("event_id", id),
	)
	return id, nil
}

// Get fetches one event by id.
func (s *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	return s.events.GetByID(ctx, id)
}

// ListBySeries returns the events of a series in chronological order,
// or models.ErrEmpty when the series has none.
func (s *EventService) ListBySeries(ctx context.Context, seriesID int64) ([]models.Event, error) {
	events, err := s.events.ListBySeries(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, models.ErrEmpty
	}
	return events, nil
}

// Update overwrites every field of an existing event.
func (s *EventService) Update(ctx context.Context, event *models.Event) error {
	if err := s.validate(event); err != nil {
		return err
	}
	if err := s.events.Update(ctx, event); err != nil {
		return err
	}
	logger.LogEvent(ctx, logger.SVCEvents, slog.LevelInfo, "events.update",
		slog.Int64("event_id", event.ID),
	)
	return nil
}

// Delete removes a single event.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}
	logger.LogEvent(ctx, logger.SVCEvents, slog.LevelInfo, "events.delete",
		slog.Int64("event_id", id),
	)
	return nil
}

func (s *EventService) validate(event *models.Event) error {
	if event.Title == "" {
		return fmt.Errorf("%w: event title is required", models.ErrValidation)
	}
	if event.Room == "" {
		return fmt.Errorf("%w: event room is required", models.ErrValidation)
	}
	if event.Time == "" {
		return fmt.Errorf("%w: event time is required", models.ErrValidation)
	}
	return nil
}
