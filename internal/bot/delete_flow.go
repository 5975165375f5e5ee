package bot

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	"symposiumbot/core/telegram/callbacks"
	tghelpers "symposiumbot/core/telegram/helpers"
)

// handleDeleteSeries asks which symposium to remove. Nothing is
// touched until the explicit confirmation button.
func (a *App) handleDeleteSeries(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	series, err := a.series.List(ctx)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	return tghelpers.SendMD(c, "Which symposium do you want to delete?", seriesKeyboard(series, cbDeleteSeriesPick))
}

func (a *App) cbDeleteSeriesPick(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.UnknownCallback()(c)
	}
	series, err := a.series.Get(ctx, id)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}

	question := fmt.Sprintf("Delete %q and all of its events?", series.Name)
	return tghelpers.SendMD(c, question, confirmKeyboard(cbDeleteSeriesYes, cbDeleteSeriesNo, id))
}

func (a *App) cbDeleteSeriesYes(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.UnknownCallback()(c)
	}
	if err := a.series.Delete(ctx, id); err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	return tghelpers.SendText(c, "Symposium and its events deleted.")
}

func (a *App) handleDeleteEvent(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	series, err := a.series.List(ctx)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	return tghelpers.SendMD(c, "Delete an event from which symposium?", seriesKeyboard(series, cbDeleteEventSeries))
}

func (a *App) cbDeleteEventSeries(c tele.Context) error {
	return a.pickEventFrom(c, cbDeleteEventPick, "Which event do you want to delete?")
}

func (a *App) cbDeleteEventPick(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.UnknownCallback()(c)
	}
	event, err := a.events.Get(ctx, id)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}

	question := fmt.Sprintf("Delete %q (%s %s)?", event.Title, tghelpers.FormatDate(event.Date), event.Time)
	return tghelpers.SendMD(c, question, confirmKeyboard(cbDeleteEventYes, cbDeleteEventNo, id))
}

func (a *App) cbDeleteEventYes(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.UnknownCallback()(c)
	}
	if err := a.events.Delete(ctx, id); err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	return tghelpers.SendText(c, "Event deleted.")
}

// cbDeleteKeep answers both "keep" buttons.
func (a *App) cbDeleteKeep(c tele.Context) error {
	return tghelpers.SendText(c, "Nothing was deleted.")
}
