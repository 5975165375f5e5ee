package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"symposiumbot/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestSeriesRepo_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		series  *models.Series
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
	}{
		{
			name: "success",
			series: &models.Series{
				Name:        "Autumn Symposium",
				StartDate:   start,
				EndDate:     start.AddDate(0, 0, 2),
				Description: strptr("Three days of talks."),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO event_series \(name, start_date, end_date, description, image_url\)`).
					WithArgs("Autumn Symposium", start, start.AddDate(0, 0, 2), strptr("Three days of talks."), nil).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			wantID: 7,
		},
		{
			name: "db error",
			series: &models.Series{
				Name:      "Broken",
				StartDate: start,
				EndDate:   start,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO event_series`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mock(mock)

			id, err := NewSeriesRepo(db).Create(ctx, tt.series)
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

func TestSeriesRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT id, name, start_date, end_date, description, image_url`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "start_date", "end_date", "description", "image_url"}).
				AddRow(int64(7), "Autumn Symposium", start, start.AddDate(0, 0, 2), nil, nil))

		got, err := NewSeriesRepo(db).GetByID(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, int64(7), got.ID)
		require.Equal(t, "Autumn Symposium", got.Name)
		require.Nil(t, got.Description)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT id, name, start_date, end_date, description, image_url`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := NewSeriesRepo(db).GetByID(ctx, 99)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSeriesRepo_List(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT id, name, start_date, end_date, description, image_url`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "start_date", "end_date", "description", "image_url"}).
			AddRow(int64(1), "Spring", start.AddDate(0, -6, 0), start.AddDate(0, -6, 1), nil, nil).
			AddRow(int64(2), "Autumn", start, start.AddDate(0, 0, 2), nil, nil))

	got, err := NewSeriesRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Spring", got[0].Name)
	require.Equal(t, "Autumn", got[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeriesRepo_Update(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	series := &models.Series{
		ID:        7,
		Name:      "Renamed",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 1),
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE event_series`).
			WithArgs("Renamed", start, start.AddDate(0, 0, 1), nil, nil, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewSeriesRepo(db).Update(ctx, series))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE event_series`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewSeriesRepo(db).Update(ctx, series)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSeriesRepo_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes series and events in one transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM events WHERE series_id = \$1`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM event_series WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, NewSeriesRepo(db).Delete(ctx, 7))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing series rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM events WHERE series_id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM event_series WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := NewSeriesRepo(db).Delete(ctx, 99)
		require.ErrorIs(t, err, models.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("event delete error rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM events WHERE series_id = \$1`).
			WithArgs(int64(7)).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := NewSeriesRepo(db).Delete(ctx, 7)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
