package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"symposiumbot/internal/models"
)

func TestRenderSeriesDetail(t *testing.T) {
	start := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	t.Run("with description", func(t *testing.T) {
		s := &models.Series{
			Name:        "Autumn Symposium",
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 2),
			Description: strptrTest("Three days of talks."),
		}
		text := renderSeriesDetail(s)
		require.Contains(t, text, "Autumn Symposium")
		require.Contains(t, text, "12.10.2026 - 14.10.2026")
		require.Contains(t, text, "Three days of talks.")
	})

	t.Run("absent fields fall back", func(t *testing.T) {
		s := &models.Series{Name: "Bare", StartDate: start, EndDate: start}
		text := renderSeriesDetail(s)
		require.Contains(t, text, notSpecified)
		// Single-day range collapses to one date.
		require.Contains(t, text, "Dates: 12.10.2026\n")
	})
}

func TestRenderEventDetail(t *testing.T) {
	e := &models.Event{
		Date:  time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		Time:  "09:00 - 10:30",
		Title: "Opening Keynote",
		Room:  "Main Hall",
	}
	text := renderEventDetail(e)
	require.Contains(t, text, "Opening Keynote")
	require.Contains(t, text, "09:00 - 10:30")
	require.Contains(t, text, "Main Hall")
	require.Contains(t, text, "Speakers: "+notSpecified)
	require.Contains(t, text, "About: "+notSpecified)
}

func TestUserMessage(t *testing.T) {
	require.Contains(t, userMessage(models.ErrValidation), "stop")
	require.Equal(t, msgNoSeries, userMessage(models.ErrEmpty))
	require.Contains(t, userMessage(models.ErrNotFound), "Not found")
	require.Equal(t, msgDenied, userMessage(models.ErrUnauthorized))
	require.Equal(t, msgSomethingOff, userMessage(errors.New("pq: connection refused")))
	require.Equal(t, msgSomethingOff, userMessage(models.NewStoreError("series.list", errors.New("boom"))))
}

func TestSeriesKeyboard(t *testing.T) {
	start := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	series := []models.Series{
		{ID: 1, Name: "First", StartDate: start, EndDate: start},
		{ID: 2, Name: "Second", StartDate: start, EndDate: start.AddDate(0, 0, 1)},
	}

	markup := seriesKeyboard(series, cbSeriesView)
	require.Len(t, markup.InlineKeyboard, 2)

	btn := markup.InlineKeyboard[0][0]
	require.Contains(t, btn.Text, "First")
	require.Equal(t, cbSeriesView, btn.Unique)
	require.Equal(t, "1", btn.Data)
}

func TestConfirmKeyboard(t *testing.T) {
	markup := confirmKeyboard(cbDeleteSeriesYes, cbDeleteSeriesNo, 7)
	require.Len(t, markup.InlineKeyboard, 1)
	require.Len(t, markup.InlineKeyboard[0], 2)
	require.Equal(t, "ds_yes", markup.InlineKeyboard[0][0].Unique)
	require.Equal(t, "7", markup.InlineKeyboard[0][0].Data)
	require.Equal(t, "ds_no", markup.InlineKeyboard[0][1].Unique)
}
