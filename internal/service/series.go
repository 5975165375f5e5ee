// Package service contains the domain operations behind the bot
// handlers: invariant checks, empty-result detection, and structured
// logging around the storage layer.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"symposiumbot/core/logger"
	"symposiumbot/internal/models"
	"symposiumbot/internal/storage"
)

// SeriesService manages symposium series.
type SeriesService struct {
	repo storage.SeriesRepository
}

// NewSeriesService builds a series service on the given repository.
func NewSeriesService(repo storage.SeriesRepository) *SeriesService {
	return &SeriesService{repo: repo}
}

// Create validates and persists a new series.
func (s *SeriesService) Create(ctx context.Context, series *models.Series) (int64, error) {
	if series.Name == "" {
		return 0, fmt.Errorf("%w: series name is required", models.ErrValidation)
	}
	if series.EndDate.Before(series.StartDate) {
		return 0, fmt.Errorf("%w: end date before start date", models.ErrValidation)
	}

	id, err := s.repo.Create(ctx, series)
	if err != nil {
		return 0, err
	}
	logger.LogEvent(ctx, logger.SVCSeries, slog.LevelInfo, "series.create",
		slog.Int64("series_id", id),
	)
	return id, nil
}

// Get fetches one series by id.
func (s *SeriesService) Get(ctx context.Context, id int64) (*models.Series, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every series, or models.ErrEmpty when none exist.
func (s *SeriesService) List(ctx context.Context) ([]models.Series, error) {
	series, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, models.ErrEmpty
	}
	return series, nil
}

// Update overwrites every field of an existing series.
func (s *SeriesService) Update(ctx context.Context, series *models.Series) error {
	if series.Name == "" {
		return fmt.Errorf("%w: series name is required", models.ErrValidation)
	}
	if series.EndDate.Before(series.StartDate) {
		return fmt.Errorf("%w: end date before start date", models.ErrValidation)
	}

	if err := s.repo.Update(ctx, series); err != nil {
		return err
	}
	logger.LogEvent(ctx, logger.SVCSeries, slog.LevelInfo, "series.update",
		slog.Int64("series_id", series.ID),
	)
	return nil
}

// Delete removes a series and all of its events.
func (s *SeriesService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.LogEvent(ctx, logger.SVCSeries, slog.LevelInfo, "series.delete",
		slog.Int64("series_id", id),
	)
	return nil
}
