package bot

import (
	"errors"

	tele "gopkg.in/telebot.v4"

	"symposiumbot/core/telegram/callbacks"
	tghelpers "symposiumbot/core/telegram/helpers"

	"symposiumbot/internal/models"
	"symposiumbot/internal/validate"
)

// handleCreateSeries starts the symposium creation flow.
func (a *App) handleCreateSeries(c tele.Context) error {
	userID := c.Sender().ID
	a.fsm.Clear(userID)
	a.fsm.SetTemp(userID, tempSeriesDraft, &models.Series{})
	a.fsm.SetState(userID, stateSeriesName)
	return tghelpers.SendText(c, promptSeriesName)
}

// handleUpdateSeries asks which symposium to re-enter. Updating walks
// the same steps as creation: every field is entered anew.
func (a *App) handleUpdateSeries(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	series, err := a.series.List(ctx)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	return tghelpers.SendMD(c, "Which symposium do you want to edit?", seriesKeyboard(series, cbUpdateSeriesPick))
}

func (a *App) cbUpdateSeriesPick(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return a.UnknownCallback()(c)
	}
	if _, err := a.series.Get(ctx, id); err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}

	userID := c.Sender().ID
	a.fsm.Clear(userID)
	a.fsm.SetTemp(userID, tempSeriesDraft, &models.Series{ID: id})
	a.fsm.SetState(userID, stateSeriesName)
	return tghelpers.SendText(c, promptSeriesName)
}

// currentSeriesDraft returns the scratch series of an active flow. A
// missing draft means the session was lost, so the flow is aborted.
func (a *App) currentSeriesDraft(c tele.Context) (*models.Series, bool) {
	if v, ok := a.fsm.GetTemp(c.Sender().ID, tempSeriesDraft); ok {
		if draft, ok := v.(*models.Series); ok {
			return draft, true
		}
	}
	a.endFlow(c.Sender().ID)
	return nil, false
}

func (a *App) seriesNameStep(c tele.Context, input string) error {
	draft, ok := a.currentSeriesDraft(c)
	if !ok {
		return tghelpers.SendText(c, msgSomethingOff)
	}

	name, err := validate.Required(input)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	draft.Name = name
	a.fsm.SetState(c.Sender().ID, stateSeriesStart)
	return tghelpers.SendText(c, promptSeriesStart)
}

func (a *App) seriesStartStep(c tele.Context, input string) error {
	draft, ok := a.currentSeriesDraft(c)
	if !ok {
		return tghelpers.SendText(c, msgSomethingOff)
	}

	start, err := validate.ParseDate(input)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	draft.StartDate = start
	a.fsm.SetState(c.Sender().ID, stateSeriesEnd)
	return tghelpers.SendText(c, promptSeriesEnd)
}

func (a *App) seriesEndStep(c tele.Context, input string) error {
	draft, ok := a.currentSeriesDraft(c)
	if !ok {
		return tghelpers.SendText(c, msgSomethingOff)
	}

	end, err := validate.ParseEndDate(input, draft.StartDate)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	draft.EndDate = end
	a.fsm.SetState(c.Sender().ID, stateSeriesDesc)
	return tghelpers.SendText(c, promptSeriesDesc)
}

func (a *App) seriesDescStep(c tele.Context, input string) error {
	draft, ok := a.currentSeriesDraft(c)
	if !ok {
		return tghelpers.SendText(c, msgSomethingOff)
	}

	desc, err := validate.Optional(input)
	if err != nil {
		return tghelpers.SendText(c, userMessage(err))
	}
	draft.Description = desc
	a.fsm.SetState(c.Sender().ID, stateSeriesImage)
	return tghelpers.SendText(c, promptSeriesImage)
}

// seriesImageStep finishes the flow: the draft is committed only here,
// so an aborted flow leaves the store untouched.
func (a *App) seriesImageStep(c tele.Context, input string) error {
	draft, ok := a.currentSeriesDraft(c)
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
		if _, err := a.series.Create(ctx, draft); err != nil {
			return a.finishFlowError(c, err)
		}
		a.endFlow(c.Sender().ID)
		return tghelpers.SendMD(c, "Symposium created.\n\n"+renderSeriesDetail(draft))
	}

	if err := a.series.Update(ctx, draft); err != nil {
		return a.finishFlowError(c, err)
	}
	a.endFlow(c.Sender().ID)
	return tghelpers.SendMD(c, "Symposium updated.\n\n"+renderSeriesDetail(draft))
}

// finishFlowError keeps the flow alive on validation errors so the
// user can retry the step, and aborts it on anything else.
func (a *App) finishFlowError(c tele.Context, err error) error {
	if errors.Is(err, models.ErrValidation) {
		return tghelpers.SendText(c, userMessage(err))
	}
	a.endFlow(c.Sender().ID)
	return tghelpers.SendText(c, userMessage(err))
}
