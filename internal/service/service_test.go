package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"symposiumbot/internal/models"
)

type fakeSeriesRepo struct {
	byID   map[int64]*models.Series
	nextID int64

	deleted []int64
}

func newFakeSeriesRepo() *fakeSeriesRepo {
	return &fakeSeriesRepo{byID: map[int64]*models.Series{}, nextID: 1}
}

func (f *fakeSeriesRepo) Create(_ context.Context, s *models.Series) (int64, error) {
	id := f.nextID
	f.nextID++
	cp := *s
	cp.ID = id
	f.byID[id] = &cp
	return id, nil
}

func (f *fakeSeriesRepo) GetByID(_ context.Context, id int64) (*models.Series, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return s, nil
}

func (f *fakeSeriesRepo) List(_ context.Context) ([]models.Series, error) {
	out := make([]models.Series, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSeriesRepo) Update(_ context.Context, s *models.Series) error {
	if _, ok := f.byID[s.ID]; !ok {
		return models.ErrNotFound
	}
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSeriesRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeEventRepo struct {
	byID   map[int64]*models.Event
	nextID int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: map[int64]*models.Event{}, nextID: 1}
}

func (f *fakeEventRepo) Create(_ context.Context, e *models.Event) (int64, error) {
	id := f.nextID
	f.nextID++
	cp := *e
	cp.ID = id
	f.byID[id] = &cp
	return id, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) ListBySeries(_ context.Context, seriesID int64) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.byID {
		if e.SeriesID == seriesID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(_ context.Context, e *models.Event) error {
	if _, ok := f.byID[e.ID]; !ok {
		return models.ErrNotFound
	}
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func validSeries() *models.Series {
	start := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	return &models.Series{
		Name:      "Autumn Symposium",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
	}
}

func TestSeriesService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewSeriesService(newFakeSeriesRepo())

	id, err := svc.Create(ctx, validSeries())
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	t.Run("empty name rejected", func(t *testing.T) {
		s := validSeries()
		s.Name = ""
		_, err := svc.Create(ctx, s)
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("inverted date range rejected", func(t *testing.T) {
		s := validSeries()
		s.EndDate = s.StartDate.AddDate(0, 0, -1)
		_, err := svc.Create(ctx, s)
		require.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestSeriesService_List_Empty(t *testing.T) {
	svc := NewSeriesService(newFakeSeriesRepo())
	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, models.ErrEmpty)
}

func TestSeriesService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSeriesRepo()
	svc := NewSeriesService(repo)

	id, err := svc.Create(ctx, validSeries())
	require.NoError(t, err)

	updated := validSeries()
	updated.ID = id
	updated.Name = "Renamed"
	require.NoError(t, svc.Update(ctx, updated))

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)

	missing := validSeries()
	missing.ID = 99
	require.ErrorIs(t, svc.Update(ctx, missing), models.ErrNotFound)
}

func TestSeriesService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSeriesRepo()
	svc := NewSeriesService(repo)

	id, err := svc.Create(ctx, validSeries())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	require.Equal(t, []int64{id}, repo.deleted)
	require.ErrorIs(t, svc.Delete(ctx, id), models.ErrNotFound)
}

func validEvent(seriesID int64) *models.Event {
	return &models.Event{
		SeriesID: seriesID,
		Date:     time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		Time:     "09:00 - 10:30",
		Title:    "Opening Keynote",
		Room:     "Main Hall",
	}
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	seriesRepo := newFakeSeriesRepo()
	svc := NewEventService(newFakeEventRepo(), seriesRepo)

	seriesID, err := seriesRepo.Create(ctx, validSeries())
	require.NoError(t, err)

	id, err := svc.Create(ctx, validEvent(seriesID))
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	t.Run("missing parent series", func(t *testing.T) {
		_, err := svc.Create(ctx, validEvent(99))
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		e := validEvent(seriesID)
		e.Title = ""
		_, err := svc.Create(ctx, e)
		require.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestEventService_ListBySeries_Empty(t *testing.T) {
	ctx := context.Background()
	seriesRepo := newFakeSeriesRepo()
	svc := NewEventService(newFakeEventRepo(), seriesRepo)

	seriesID, err := seriesRepo.Create(ctx, validSeries())
	require.NoError(t, err)

	_, err = svc.ListBySeries(ctx, seriesID)
	require.ErrorIs(t, err, models.ErrEmpty)
}

func TestEventService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	seriesRepo := newFakeSeriesRepo()
	svc := NewEventService(newFakeEventRepo(), seriesRepo)

	seriesID, err := seriesRepo.Create(ctx, validSeries())
	require.NoError(t, err)
	id, err := svc.Create(ctx, validEvent(seriesID))
	require.NoError(t, err)

	updated := validEvent(seriesID)
	updated.ID = id
	updated.Title = "Rescheduled"
	require.NoError(t, svc.Update(ctx, updated))

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Rescheduled", got.Title)

	require.NoError(t, svc.Delete(ctx, id))
	require.ErrorIs(t, svc.Delete(ctx, id), models.ErrNotFound)
}
