package helpers

import "time"

// DisplayDate is the layout used when rendering dates back to users.
const DisplayDate = "02.01.2006"

// FormatDate renders a date for user-facing messages.
func FormatDate(t time.Time) string {
	return t.Format(DisplayDate)
}

// FormatDateRange renders a start/end date pair for button labels and
// detail views. A single-day range collapses to one date.
func FormatDateRange(start, end time.Time) string {
	if start.Year() == end.Year() && start.YearDay() == end.YearDay() {
		return FormatDate(start)
	}
	return FormatDate(start) + " - " + FormatDate(end)
}
