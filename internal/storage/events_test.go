package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"symposiumbot/internal/models"
)

func TestEventRepo_Create(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *models.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
	}{
		{
			name: "success",
			event: &models.Event{
				SeriesID: 7,
				Date:     date,
				Time:     "09:00 - 10:30",
				Title:    "Opening Keynote",
				Room:     "Main Hall",
				Speakers: strptr("Dr. A. Reyes"),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(series_id, date, time, title, room, speakers, description, image_url\)`).
					WithArgs(int64(7), date, "09:00 - 10:30", "Opening Keynote", "Main Hall", strptr("Dr. A. Reyes"), nil, nil).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
			},
			wantID: 42,
		},
		{
			name: "db error",
			event: &models.Event{
				SeriesID: 7,
				Date:     date,
				Time:     "09:00 - 10:30",
				Title:    "Broken",
				Room:     "Main Hall",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mock(mock)

			id, err := NewEventRepo(db).Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, id)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT id, series_id, date, time, title, room, speakers, description, image_url`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "series_id", "date", "time", "title", "room", "speakers", "description", "image_url"}).
				AddRow(int64(42), int64(7), date, "09:00 - 10:30", "Opening Keynote", "Main Hall", nil, nil, nil))

		got, err := NewEventRepo(db).GetByID(ctx, 42)
		require.NoError(t, err)
		require.Equal(t, int64(42), got.ID)
		require.Equal(t, int64(7), got.SeriesID)
		require.Equal(t, "Opening Keynote", got.Title)
		require.Nil(t, got.Speakers)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT id, series_id, date, time, title, room, speakers, description, image_url`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := NewEventRepo(db).GetByID(ctx, 99)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestEventRepo_ListBySeries(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT id, series_id, date, time, title, room, speakers, description, image_url`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "series_id", "date", "time", "title", "room", "speakers", "description", "image_url"}).
			AddRow(int64(42), int64(7), date, "09:00 - 10:30", "Opening Keynote", "Main Hall", nil, nil, nil).
			AddRow(int64(43), int64(7), date, "11:00 - 12:30", "Workshop", "Room 2", nil, nil, nil))

	got, err := NewEventRepo(db).ListBySeries(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Opening Keynote", got[0].Title)
	require.Equal(t, "Workshop", got[1].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_Update(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC)
	event := &models.Event{
		ID:       42,
		SeriesID: 7,
		Date:     date,
		Time:     "14:00 - 15:00",
		Title:    "Rescheduled Talk",
		Room:     "Room 3",
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE events`).
			WithArgs(date, "14:00 - 15:00", "Rescheduled Talk", "Room 3", nil, nil, nil, int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewEventRepo(db).Update(ctx, event))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE events`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewEventRepo(db).Update(ctx, event)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestEventRepo_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewEventRepo(db).Delete(ctx, 42))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewEventRepo(db).Delete(ctx, 99)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}
