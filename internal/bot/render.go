package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"symposiumbot/core/telegram/format"
	tghelpers "symposiumbot/core/telegram/helpers"
	"symposiumbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"

	"symposiumbot/internal/models"
)

const notSpecified = "not specified"

const (
	msgCancelled    = "Cancelled. Nothing was saved."
	msgDenied       = "This command is available to the administrator only."
	msgNoSeries     = "There are no symposiums yet."
	msgNoEvents     = "This symposium has no events yet."
	msgSomethingOff = "Something went wrong, please try again later."
)

const (
	promptSeriesName  = "Enter the symposium name (or \"stop\" to cancel):"
	promptSeriesStart = "Enter the start date, YYYY-MM-DD:"
	promptSeriesEnd   = "Enter the end date, YYYY-MM-DD:"
	promptSeriesDesc  = "Enter a description, or \"-\" to skip:"
	promptSeriesImage = "Send an image, paste an image URL, or \"-\" to skip:"

	promptEventDate     = "Enter the event date, YYYY-MM-DD:"
	promptEventTime     = "Enter the time range, e.g. 09:00 - 10:30:"
	promptEventTitle    = "Enter the event title:"
	promptEventRoom     = "Enter the room:"
	promptEventSpeakers = "Enter the speakers, or \"-\" to skip:"
	promptEventDesc     = "Enter a description, or \"-\" to skip:"
	promptEventImage    = "Send an image, paste an image URL, or \"-\" to skip:"
)

// userMessage maps domain errors to replies shown in chat.
func userMessage(err error) string {
	var kind string
	switch {
	case errors.Is(err, models.ErrValidation):
		msg := err.Error()
		if i := strings.Index(msg, ": "); i >= 0 {
			msg = msg[i+2:]
		}
		return "Invalid input: " + msg + ". Try again, or send \"stop\" to cancel."
	case errors.Is(err, models.ErrUnauthorized):
		kind = msgDenied
	case errors.Is(err, models.ErrEmpty):
		kind = msgNoSeries
	case errors.Is(err, models.ErrNotFound):
		kind = "Not found. It may have been deleted already."
	default:
		kind = msgSomethingOff
	}
	return kind
}

func md(text string) string {
	escaped, err := format.EscapeMarkdown(text, format.MarkdownV1, "")
	if err != nil {
		return text
	}
	return escaped
}

func renderSeriesLabel(s *models.Series) string {
	return fmt.Sprintf("%s (%s)", s.Name, tghelpers.FormatDateRange(s.StartDate, s.EndDate))
}

func renderSeriesDetail(s *models.Series) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", md(s.Name))
	fmt.Fprintf(&b, "Dates: %s\n", tghelpers.FormatDateRange(s.StartDate, s.EndDate))
	fmt.Fprintf(&b, "About: %s", md(format.DerefString(s.Description, notSpecified)))
	return b.String()
}

func renderEventLabel(e *models.Event) string {
	return fmt.Sprintf("%s %s · %s", tghelpers.FormatDate(e.Date), e.Time, e.Title)
}

func renderEventDetail(e *models.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", md(e.Title))
	fmt.Fprintf(&b, "Date: %s\n", tghelpers.FormatDate(e.Date))
	fmt.Fprintf(&b, "Time: %s\n", e.Time)
	fmt.Fprintf(&b, "Room: %s\n", md(e.Room))
	fmt.Fprintf(&b, "Speakers: %s\n", md(format.DerefString(e.Speakers, notSpecified)))
	fmt.Fprintf(&b, "About: %s", md(format.DerefString(e.Description, notSpecified)))
	return b.String()
}

func seriesKeyboard(series []models.Series, unique string) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(series))
	for i := range series {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   renderSeriesLabel(&series[i]),
			Unique: unique,
			Data:   strconv.FormatInt(series[i].ID, 10),
		})
	}
	return keyboard.InlineButtons(buttons)
}

func eventsKeyboard(events []models.Event, unique string) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(events))
	for i := range events {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   renderEventLabel(&events[i]),
			Unique: unique,
			Data:   strconv.FormatInt(events[i].ID, 10),
		})
	}
	return keyboard.InlineButtons(buttons)
}

func confirmKeyboard(yesUnique, noUnique string, id int64) *tele.ReplyMarkup {
	payload := strconv.FormatInt(id, 10)
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "✅ Yes, delete", Unique: yesUnique, Data: payload},
		{Text: "↩️ No, keep", Unique: noUnique, Data: payload},
	})
}

// photoFor builds a sendable photo from a stored image reference:
// URLs are fetched by Telegram, anything else is treated as a file_id.
func photoFor(ref string, caption string) *tele.Photo {
	var file tele.File
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		file = tele.FromURL(ref)
	} else {
		file = tele.File{FileID: ref}
	}
	return &tele.Photo{File: file, Caption: caption}
}

const helpPublic = `Here is what I can do:
/start - list upcoming symposiums
/help - this message
/id - show your Telegram ID`

const helpAdmin = `
Administration:
/create - create a symposium
/create_event - add an event to a symposium
/update - edit a symposium
/update_event - edit an event
/delete - delete a symposium with its events
/delete_event - delete a single event

Send "stop" at any step to cancel a flow.`
