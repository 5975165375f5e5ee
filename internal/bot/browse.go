package bot

import (
	"errors"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"symposiumbot/core/telegram/callbacks"
	"symposiumbot/core/telegram/format"
	tghelpers "symposiumbot/core/telegram/helpers"

	"symposiumbot/internal/models"
)

func (a *App) handleStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	series, err := a.series.List(ctx)
	if err != nil {
		if errors.Is(err, models.ErrEmpty) {
			return tghelpers.SendText(c, "Welcome! "+msgNoSeries)
		}
		return tghelpers.SendText(c, userMessage(err))
	}

	text := "Welcome! Pick a symposium:"
	markup := seriesKeyboard(series, cbSeriesView)
	if logo := a.cfg.Bot.DefaultLogo; logo != "" {
		return sendPhoto(c, photoFor(logo, text), markup)
	}
	return tghelpers.SendMD(c, text, markup)
}

func (a *App) handleHelp(c tele.Context) error {
	text := helpPublic
	if a.isAdmin(c) {
		text += "\n" + helpAdmin
	}
	return tghelpers.SendText(c, text)
}

func (a *App) handleID(c tele.Context) error {
	return tghelpers.SendText(c, fmt.Sprintf("Your Telegram ID: %d", c.Sender().ID))
}

// cbShowSeries renders the symposium card and its event list.
func (a *App) cbShowSeries(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.UnknownCallback()(c)
	}

	series, err := a.series.Get(ctx, id)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}

	text := renderSeriesDetail(series)
	events, err := a.events.ListBySeries(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrEmpty) {
			return tghelpers.SendText(c, userMessage(err))
		}
		text += "\n\n" + msgNoEvents
	}

	var markup *tele.ReplyMarkup
	if len(events) > 0 {
		markup = eventsKeyboard(events, cbEventView)
	}

	if ref := format.DerefString(series.ImageURL, a.cfg.Bot.DefaultLogo); ref != "" {
		photo := photoFor(ref, text)
		return sendPhoto(c, photo, markup)
	}
	return tghelpers.SendMD(c, text, markup)
}

// cbShowEvent renders a single event card.
func (a *App) cbShowEvent(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.UnknownCallback()(c)
	}

	event, err := a.events.Get(ctx, id)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}

	text := renderEventDetail(event)
	if ref := format.DerefString(event.ImageURL, a.cfg.Bot.DefaultLogo); ref != "" {
		return sendPhoto(c, photoFor(ref, text), nil)
	}
	return tghelpers.SendMD(c, text)
}

func sendPhoto(c tele.Context, photo *tele.Photo, markup *tele.ReplyMarkup) error {
	opts := &tele.SendOptions{ParseMode: tele.ModeMarkdown}
	if markup != nil {
		opts.ReplyMarkup = markup
	}
	return c.Send(photo, opts)
}
