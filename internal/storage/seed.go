package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"symposiumbot/core/bootstrap"
	"symposiumbot/core/logger"
	"symposiumbot/internal/models"
)

// DemoSeeder fills an empty store with a sample symposium so a fresh
// deployment has something to browse. It is a no-op when any series
// already exists.
type DemoSeeder struct{}

var _ bootstrap.Seeder = DemoSeeder{}

func strptr(s string) *string { return &s }

// Seed implements bootstrap.Seeder.
func (DemoSeeder) Seed(ctx context.Context, storage bootstrap.Storage) error {
	store, ok := storage.(*Store)
	if !ok {
		return fmt.Errorf("seed: unexpected storage %T", storage)
	}

	existing, err := store.Series.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list series: %w", err)
	}
	if len(existing) > 0 {
		logger.LogEvent(ctx, logger.SEED, slog.LevelDebug, "seed.skip",
			slog.Int("series_total", len(existing)),
		)
		return nil
	}

	start := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	seriesID, err := store.Series.Create(ctx, &models.Series{
		Name:        "Autumn Medical Symposium",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		Description: strptr("Three days of talks and workshops on clinical practice."),
	})
	if err != nil {
		return fmt.Errorf("seed: create series: %w", err)
	}

	events := []models.Event{
		{
			SeriesID: seriesID,
			Date:     start,
			Time:     "09:00 - 10:30",
			Title:    "Opening Keynote",
			Room:     "Main Hall",
			Speakers: strptr("Dr. A. Reyes"),
		},
		{
			SeriesID:    seriesID,
			Date:        start,
			Time:        "11:00 - 12:30",
			Title:       "Diagnostics Workshop",
			Room:        "Room 2",
			Speakers:    strptr("Prof. L. Ivanova, Dr. M. Chen"),
			Description: strptr("Hands-on session, limited seats."),
		},
		{
			SeriesID: seriesID,
			Date:     start.AddDate(0, 0, 1),
			Time:     "10:00 - 11:00",
			Title:    "Panel: Care Pathways",
			Room:     "Main Hall",
		},
	}
	for i := range events {
		if _, err := store.Events.Create(ctx, &events[i]); err != nil {
			return fmt.Errorf("seed: create event %q: %w", events[i].Title, err)
		}
	}

	logger.LogEvent(ctx, logger.SEED, slog.LevelInfo, "seed.done",
		slog.Int64("series_id", seriesID),
		slog.Int("events_total", len(events)),
	)
	return nil
}
