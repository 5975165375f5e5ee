package bot

import "symposiumbot/core/telegram/state"

// Series flows (create and update share the step chain; the draft's ID
// decides whether the final step inserts or overwrites).
const (
	stateSeriesName  state.State = "series_name"
	stateSeriesStart state.State = "series_start"
	stateSeriesEnd   state.State = "series_end"
	stateSeriesDesc  state.State = "series_desc"
	stateSeriesImage state.State = "series_image"
)

// Event flows.
const (
	stateEventTitle    state.State = "event_title"
	stateEventDate     state.State = "event_date"
	stateEventTime     state.State = "event_time"
	stateEventRoom     state.State = "event_room"
	stateEventSpeakers state.State = "event_speakers"
	stateEventDesc     state.State = "event_desc"
	stateEventImage    state.State = "event_image"
)

// Session scratch keys.
const (
	tempSeriesDraft = "series_draft"
	tempEventDraft  = "event_draft"
)

// cancelWord aborts any flow when sent as a message, checked before
// validation so a stuck user can always get out.
const cancelWord = "stop"
