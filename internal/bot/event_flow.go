package bot

import (
	"errors"

	tele "gopkg.in/telebot.v4"

	"symposiumbot/core/telegram/callbacks"
	tghelpers "symposiumbot/core/telegram/helpers"

	"symposiumbot/internal/models"
	"symposiumbot/internal/validate"
)

// handleCreateEvent asks which symposium the new event belongs to.
func (a *App) handleCreateEvent(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	series, err := a.series.List(ctx)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	return tghelpers.SendMD(c, "Add an event to which symposium?", seriesKeyboard(series, cbCreateEventSeries))
}

func (a *App) cbCreateEventSeries(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	seriesID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.UnknownCallback()(c)
	}
	if _, err := a.series.Get(ctx, seriesID); err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}

	userID := c.Sender().ID
	a.fsm.Clear(userID)
	a.fsm.SetTemp(userID, tempEventDraft, &models.Event{SeriesID: seriesID})
	a.fsm.SetState(userID, stateEventTitle)
	return tghelpers.SendText(c, promptEventTitle)
}

// handleUpdateEvent narrows down to an event in two steps: pick the
// symposium, then pick the event.
func (a *App) handleUpdateEvent(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	series, err := a.series.List(ctx)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	return tghelpers.SendMD(c, "Edit an event in which symposium?", seriesKeyboard(series, cbUpdateEventSeries))
}

func (a *App) cbUpdateEventSeries(c tele.Context) error {
	return a.pickEventFrom(c, cbUpdateEventPick, "Which event do you want to edit?")
}

func (a *App) cbUpdateEventPick(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	eventID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.UnknownCallback()(c)
	}
	event, err := a.events.Get(ctx, eventID)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}

	userID := c.Sender().ID
	a.fsm.Clear(userID)
	a.fsm.SetTemp(userID, tempEventDraft, &models.Event{ID: event.ID, SeriesID: event.SeriesID})
	a.fsm.SetState(userID, stateEventTitle)
	return tghelpers.SendText(c, promptEventTitle)
}

// pickEventFrom lists the events of the series in the callback payload
// using the given follow-up callback key.
func (a *App) pickEventFrom(c tele.Context, unique, question string) error {
	ctx := tghelpers.BuildContext(c)

	seriesID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.UnknownCallback()(c)
	}
	events, err := a.events.ListBySeries(ctx, seriesID)
	if err != nil {
		if errors.Is(err, models.ErrEmpty) {
			return tghelpers.SendText(c, msgNoEvents)
		}
		return tghelpers.SendText(c, userMessage(err))
	}
	return tghelpers.SendMD(c, question, eventsKeyboard(events, unique))
}

func (a *App) currentEventDraft(c tele.Context) (*models.Event, bool) {
	if v, ok := a.fsm.GetTemp(c.Sender().ID, tempEventDraft); ok {
		if draft, ok := v.(*models.Event); ok {
			return draft, true
		}
	}
	a.endFlow(c.Sender().ID)
	return nil, false
}

func (a *App) eventTitleStep(c tele.Context, input string) error {
	draft, ok := a.currentEventDraft(c)
	if !ok {
		return tghelpers.SendText(c, msgSomethingOff)
	}

	title, err := validate.Required(input)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	draft.Title = title
	a.fsm.SetState(c.Sender().ID, stateEventDate)
	return tghelpers.SendText(c, promptEventDate)
}

func (a *App) eventDateStep(c tele.Context, input string) error {
	draft, ok := a.currentEventDraft(c)
	if !ok {
		return tghelpers.SendText(c, msgSomethingOff)
	}

	date, err := validate.ParseDate(input)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	draft.Date = date
	a.fsm.SetState(c.Sender().ID, stateEventTime)
	return tghelpers.SendText(c, promptEventTime)
}

func (a *App) eventTimeStep(c tele.Context, input string) error {
	draft, ok := a.currentEventDraft(c)
	if !ok {
		return tghelpers.SendText(c, msgSomethingOff)
	}

	timeRange, err := validate.ParseTimeRange(input)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	draft.Time = timeRange
	a.fsm.SetState(c.Sender().ID, stateEventRoom)
	return tghelpers.SendText(c, promptEventRoom)
}

func (a *App) eventRoomStep(c tele.Context, input string) error {
	draft, ok := a.currentEventDraft(c)
	if !ok {
		return tghelpers.SendText(c, msgSomethingOff)
	}

	room, err := validate.Required(input)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	draft.Room = room
	a.fsm.SetState(c.Sender().ID, stateEventSpeakers)
	return tghelpers.SendText(c, promptEventSpeakers)
}

func (a *App) eventSpeakersStep(c tele.Context, input string) error {
	draft, ok := a.currentEventDraft(c)
	if !ok {
		return tghelpers.SendText(c, msgSomethingOff)
	}

	speakers, err := validate.Optional(input)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	draft.Speakers = speakers
	a.fsm.SetState(c.Sender().ID, stateEventDesc)
	return tghelpers.SendText(c, promptEventDesc)
}

func (a *App) eventDescStep(c tele.Context, input string) error {
	draft, ok := a.currentEventDraft(c)
	if !ok {
		return tghelpers.SendText(c, msgSomethingOff)
	}

	desc, err := validate.Optional(input)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	draft.Description = desc
	a.fsm.SetState(c.Sender().ID, stateEventImage)
	return tghelpers.SendText(c, promptEventImage)
}

// eventImageStep commits the draft: insert for a fresh event, full
// overwrite for an edited one.
func (a *App) eventImageStep(c tele.Context, input string) error {
	draft, ok := a.currentEventDraft(c)
	if !ok {
		return tghelpers.SendText(c, msgSomethingOff)
	}

	image, err := imageInput(c, input)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	draft.ImageURL = image

	ctx := tghelpers.BuildContext(c)
	if draft.ID == 0 {
		if _, err := a.events.Create(ctx, draft); err != nil {
			return a.finishFlowError(c, err)
		}
		a.endFlow(c.Sender().ID)
		return tghelpers.SendMD(c, "Event created.\n\n"+renderEventDetail(draft))
	}

	if err := a.events.Update(ctx, draft); err != nil {
		return a.finishFlowError(c, err)
	}
	a.endFlow(c.Sender().ID)
	return tghelpers.SendMD(c, "Event updated.\n\n"+renderEventDetail(draft))
}
