package bot

import (
	tele "gopkg.in/telebot.v4"

	tg "symposiumbot/core/telegram"
	"symposiumbot/core/telegram/commands"
	"symposiumbot/core/telegram/state"
)

// Callback keys. Each inline button carries one of these plus a
// numeric payload, so every press maps to exactly one handler.
const (
	cbSeriesView = "series_view"
	cbEventView  = "event_view"

	cbCreateEventSeries = "ce_series"

	cbUpdateSeriesPick  = "us_series"
	cbUpdateEventSeries = "ue_series"
	cbUpdateEventPick   = "ue_event"

	cbDeleteSeriesPick = "ds_series"
	cbDeleteSeriesYes  = "ds_yes"
	cbDeleteSeriesNo   = "ds_no"

	cbDeleteEventSeries = "de_series"
	cbDeleteEventPick   = "de_event"
	cbDeleteEventYes    = "de_yes"
	cbDeleteEventNo     = "de_no"
)

func (a *App) registerCommands(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "List upcoming symposiums",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.handleHelp,
		Description: "Show available commands",
	})
	reg.RegisterCommand("/id", commands.Command{
		Handler:     a.handleID,
		Description: "Show your Telegram ID",
	})

	reg.RegisterCommand("/create", commands.Command{
		Handler:     a.handleCreateSeries,
		Description: "Create a symposium",
		AdminOnly:   true,
	})
	reg.RegisterCommand("/create_event", commands.Command{
		Handler:     a.handleCreateEvent,
		Description: "Add an event to a symposium",
		AdminOnly:   true,
	})
	reg.RegisterCommand("/update", commands.Command{
		Handler:     a.handleUpdateSeries,
		Description: "Edit a symposium",
		AdminOnly:   true,
	})
	reg.RegisterCommand("/update_event", commands.Command{
		Handler:     a.handleUpdateEvent,
		Description: "Edit an event",
		AdminOnly:   true,
	})
	reg.RegisterCommand("/delete", commands.Command{
		Handler:     a.handleDeleteSeries,
		Description: "Delete a symposium with its events",
		AdminOnly:   true,
	})
	reg.RegisterCommand("/delete_event", commands.Command{
		Handler:     a.handleDeleteEvent,
		Description: "Delete a single event",
		AdminOnly:   true,
	})
}

func (a *App) registerCallbacks(reg *tg.Registry) error {
	public := map[string]tele.HandlerFunc{
		cbSeriesView: a.cbShowSeries,
		cbEventView:  a.cbShowEvent,
	}
	admin := map[string]tele.HandlerFunc{
		cbCreateEventSeries: a.cbCreateEventSeries,
		cbUpdateSeriesPick:  a.cbUpdateSeriesPick,
		cbUpdateEventSeries: a.cbUpdateEventSeries,
		cbUpdateEventPick:   a.cbUpdateEventPick,
		cbDeleteSeriesPick:  a.cbDeleteSeriesPick,
		cbDeleteSeriesYes:   a.cbDeleteSeriesYes,
		cbDeleteSeriesNo:    a.cbDeleteKeep,
		cbDeleteEventSeries: a.cbDeleteEventSeries,
		cbDeleteEventPick:   a.cbDeleteEventPick,
		cbDeleteEventYes:    a.cbDeleteEventYes,
		cbDeleteEventNo:     a.cbDeleteKeep,
	}

	for key, handler := range public {
		if err := reg.RegisterCallback(key, handler); err != nil {
			return err
		}
	}
	for key, handler := range admin {
		if err := reg.RegisterCallback(key, a.requireAdmin(handler)); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) registerStates() {
	state.RegisterHandler(stateSeriesName, a.flowStep(a.seriesNameStep))
	state.RegisterHandler(stateSeriesStart, a.flowStep(a.seriesStartStep))
	state.RegisterHandler(stateSeriesEnd, a.flowStep(a.seriesEndStep))
	state.RegisterHandler(stateSeriesDesc, a.flowStep(a.seriesDescStep))
	state.RegisterHandler(stateSeriesImage, a.flowStep(a.seriesImageStep))

	state.RegisterHandler(stateEventTitle, a.flowStep(a.eventTitleStep))
	state.RegisterHandler(stateEventDate, a.flowStep(a.eventDateStep))
	state.RegisterHandler(stateEventTime, a.flowStep(a.eventTimeStep))
	state.RegisterHandler(stateEventRoom, a.flowStep(a.eventRoomStep))
	state.RegisterHandler(stateEventSpeakers, a.flowStep(a.eventSpeakersStep))
	state.RegisterHandler(stateEventDesc, a.flowStep(a.eventDescStep))
	state.RegisterHandler(stateEventImage, a.flowStep(a.eventImageStep))
}
