package models

import "time"

// Series is an event series (symposium) spanning a date range and
// owning zero or more Events. Deleting a Series removes its Events.
type Series struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	Description *string   `db:"description"`
	ImageURL    *string   `db:"image_url"`
}

// Event is a single scheduled item (talk, round table) belonging to
// exactly one Series. Time holds a normalized "HH:MM - HH:MM" interval.
type Event struct {
	ID          int64     `db:"id"`
	SeriesID    int64     `db:"series_id"`
	Date        time.Time `db:"date"`
	Time        string    `db:"time"`
	Title       string    `db:"title"`
	Room        string    `db:"room"`
	Speakers    *string   `db:"speakers"`
	Description *string   `db:"description"`
	ImageURL    *string   `db:"image_url"`
}
