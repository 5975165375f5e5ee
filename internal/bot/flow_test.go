package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	"symposiumbot/internal/models"
	"symposiumbot/internal/service"
)

const (
	adminID   = int64(1000)
	visitorID = int64(2000)
)

// fakeContext implements the handful of tele.Context methods the
// handlers touch. Unimplemented methods panic via the embedded nil
// interface, which is what we want in tests.
type fakeContext struct {
	tele.Context

	sender *tele.User
	text   string
	msg    *tele.Message
	cb     *tele.Callback

	sent  []string
	store map[string]any
}

func newFakeContext(userID int64) *fakeContext {
	return &fakeContext{
		sender: &tele.User{ID: userID},
		store:  map[string]any{},
	}
}

func (f *fakeContext) Sender() *tele.User       { return f.sender }
func (f *fakeContext) Chat() *tele.Chat         { return &tele.Chat{ID: f.sender.ID} }
func (f *fakeContext) Text() string             { return f.text }
func (f *fakeContext) Message() *tele.Message   { return f.msg }
func (f *fakeContext) Callback() *tele.Callback { return f.cb }
func (f *fakeContext) Update() tele.Update      { return tele.Update{} }
func (f *fakeContext) Set(key string, val any)  { f.store[key] = val }
func (f *fakeContext) Get(key string) any       { return f.store[key] }

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	switch v := what.(type) {
	case string:
		f.sent = append(f.sent, v)
	case *tele.Photo:
		f.sent = append(f.sent, "photo:"+v.File.FileID+v.File.FileURL)
	}
	return nil
}

func (f *fakeContext) Respond(_ ...*tele.CallbackResponse) error {
	f.sent = append(f.sent, "respond")
	return nil
}

func (f *fakeContext) lastSent(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.sent)
	return f.sent[len(f.sent)-1]
}

// Repo fakes shared by the flow tests.

type fakeSeriesRepo struct {
	byID   map[int64]*models.Series
	nextID int64
}

func newFakeSeriesRepo() *fakeSeriesRepo {
	return &fakeSeriesRepo{byID: map[int64]*models.Series{}, nextID: 1}
}

func (f *fakeSeriesRepo) Create(_ context.Context, s *models.Series) (int64, error) {
	id := f.nextID
	f.nextID++
	cp := *s
	cp.ID = id
	f.byID[id] = &cp
	return id, nil
}

func (f *fakeSeriesRepo) GetByID(_ context.Context, id int64) (*models.Series, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return s, nil
}

func (f *fakeSeriesRepo) List(_ context.Context) ([]models.Series, error) {
	out := make([]models.Series, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSeriesRepo) Update(_ context.Context, s *models.Series) error {
	if _, ok := f.byID[s.ID]; !ok {
		return models.ErrNotFound
	}
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSeriesRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeEventRepo struct {
	byID   map[int64]*models.Event
	nextID int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: map[int64]*models.Event{}, nextID: 1}
}

func (f *fakeEventRepo) Create(_ context.Context, e *models.Event) (int64, error) {
	id := f.nextID
	f.nextID++
	cp := *e
	cp.ID = id
	f.byID[id] = &cp
	return id, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) ListBySeries(_ context.Context, seriesID int64) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.byID {
		if e.SeriesID == seriesID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(_ context.Context, e *models.Event) error {
	if _, ok := f.byID[e.ID]; !ok {
		return models.ErrNotFound
	}
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func newTestApp() (*App, *fakeSeriesRepo, *fakeEventRepo) {
	cfg := &Config{}
	cfg.Telegram.AdminID = adminID

	seriesRepo := newFakeSeriesRepo()
	eventRepo := newFakeEventRepo()
	app := New(cfg, &services{
		series: service.NewSeriesService(seriesRepo),
		events: service.NewEventService(eventRepo, seriesRepo),
	})
	app.registerStates()
	return app, seriesRepo, eventRepo
}

// say drives one FSM text step as if the user sent a message.
func say(t *testing.T, app *App, userID int64, text string) *fakeContext {
	t.Helper()
	fc := newFakeContext(userID)
	fc.text = text
	require.NoError(t, app.fsm.ManagerHandler(fc))
	return fc
}

func sendPhotoStep(t *testing.T, app *App, userID int64, fileID string) *fakeContext {
	t.Helper()
	fc := newFakeContext(userID)
	fc.msg = &tele.Message{Photo: &tele.Photo{File: tele.File{FileID: fileID}}}
	require.NoError(t, app.fsm.ManagerHandler(fc))
	return fc
}

func TestCreateSeriesFlow(t *testing.T) {
	app, seriesRepo, _ := newTestApp()

	fc := newFakeContext(adminID)
	require.NoError(t, app.handleCreateSeries(fc))
	require.Equal(t, stateSeriesName, app.fsm.GetState(adminID))
	require.Equal(t, promptSeriesName, fc.lastSent(t))

	say(t, app, adminID, "Autumn Symposium")
	require.Equal(t, stateSeriesStart, app.fsm.GetState(adminID))

	// Invalid date re-prompts without leaving the step.
	fc = say(t, app, adminID, "next monday")
	require.Equal(t, stateSeriesStart, app.fsm.GetState(adminID))
	require.Contains(t, fc.lastSent(t), "Invalid input")

	say(t, app, adminID, "2026-10-12")
	require.Equal(t, stateSeriesEnd, app.fsm.GetState(adminID))

	// End before start is rejected.
	fc = say(t, app, adminID, "2026-10-10")
	require.Equal(t, stateSeriesEnd, app.fsm.GetState(adminID))
	require.Contains(t, fc.lastSent(t), "Invalid input")

	say(t, app, adminID, "2026-10-14")
	require.Equal(t, stateSeriesDesc, app.fsm.GetState(adminID))

	say(t, app, adminID, "-")
	require.Equal(t, stateSeriesImage, app.fsm.GetState(adminID))

	fc = say(t, app, adminID, "-")
	require.False(t, app.fsm.InProgress(adminID))
	require.Contains(t, fc.lastSent(t), "Symposium created")

	stored, err := seriesRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Autumn Symposium", stored.Name)
	require.True(t, stored.StartDate.Equal(time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)))
	require.Nil(t, stored.Description)
	require.Nil(t, stored.ImageURL)
}

func TestCreateSeriesFlow_CancelDiscardsDraft(t *testing.T) {
	app, seriesRepo, _ := newTestApp()

	require.NoError(t, app.handleCreateSeries(newFakeContext(adminID)))
	say(t, app, adminID, "Doomed Symposium")

	fc := say(t, app, adminID, "STOP")
	require.Equal(t, msgCancelled, fc.lastSent(t))
	require.False(t, app.fsm.InProgress(adminID))
	require.Empty(t, seriesRepo.byID)

	// A fresh flow starts clean, unaffected by the discarded draft.
	require.NoError(t, app.handleCreateSeries(newFakeContext(adminID)))
	draft, ok := app.currentSeriesDraft(newFakeContext(adminID))
	require.True(t, ok)
	require.Empty(t, draft.Name)
}

func TestCreateEventFlow(t *testing.T) {
	app, seriesRepo, eventRepo := newTestApp()
	seriesID, err := seriesRepo.Create(context.Background(), &models.Series{
		Name:      "Host",
		StartDate: time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	fc := newFakeContext(adminID)
	fc.cb = &tele.Callback{Data: "\fce_series|1"}
	require.NoError(t, app.requireAdmin(app.cbCreateEventSeries)(fc))
	require.Equal(t, stateEventTitle, app.fsm.GetState(adminID))

	say(t, app, adminID, "Opening Keynote")
	require.Equal(t, stateEventDate, app.fsm.GetState(adminID))

	say(t, app, adminID, "2026-10-12")
	require.Equal(t, stateEventTime, app.fsm.GetState(adminID))

	// Inverted range stays on the time step.
	fc = say(t, app, adminID, "09:00 - 08:00")
	require.Equal(t, stateEventTime, app.fsm.GetState(adminID))
	require.Contains(t, fc.lastSent(t), "Invalid input")

	// Sloppy input is normalized on commit.
	say(t, app, adminID, "9:0-10:30")
	require.Equal(t, stateEventRoom, app.fsm.GetState(adminID))

	say(t, app, adminID, "Main Hall")
	say(t, app, adminID, "Dr. A. Reyes")
	say(t, app, adminID, "-")
	require.Equal(t, stateEventImage, app.fsm.GetState(adminID))

	fc = sendPhotoStep(t, app, adminID, "photo-file-id")
	require.False(t, app.fsm.InProgress(adminID))
	require.Contains(t, fc.lastSent(t), "Event created")

	stored, err := eventRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, seriesID, stored.SeriesID)
	require.Equal(t, "09:00 - 10:30", stored.Time)
	require.NotNil(t, stored.Speakers)
	require.Equal(t, "Dr. A. Reyes", *stored.Speakers)
	require.Nil(t, stored.Description)
	require.NotNil(t, stored.ImageURL)
	require.Equal(t, "photo-file-id", *stored.ImageURL)
}

func TestUpdateSeriesFlow_OverwritesAllFields(t *testing.T) {
	app, seriesRepo, _ := newTestApp()
	old := strings.Repeat("x", 3)
	_, err := seriesRepo.Create(context.Background(), &models.Series{
		Name:        old,
		StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Description: strptrTest("old description"),
	})
	require.NoError(t, err)

	fc := newFakeContext(adminID)
	fc.cb = &tele.Callback{Data: "\fus_series|1"}
	require.NoError(t, app.requireAdmin(app.cbUpdateSeriesPick)(fc))
	require.Equal(t, stateSeriesName, app.fsm.GetState(adminID))

	say(t, app, adminID, "Renamed Symposium")
	say(t, app, adminID, "2026-03-01")
	say(t, app, adminID, "2026-03-03")
	say(t, app, adminID, "-")
	fc = say(t, app, adminID, "-")
	require.Contains(t, fc.lastSent(t), "Symposium updated")

	stored, err := seriesRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Renamed Symposium", stored.Name)
	// Skipped optional fields end up absent, not carried over.
	require.Nil(t, stored.Description)
}

func TestDeleteSeriesConfirmation(t *testing.T) {
	app, seriesRepo, _ := newTestApp()
	_, err := seriesRepo.Create(context.Background(), &models.Series{
		Name:      "To Remove",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	fc := newFakeContext(adminID)
	fc.cb = &tele.Callback{Data: "\fds_series|1"}
	require.NoError(t, app.requireAdmin(app.cbDeleteSeriesPick)(fc))
	require.Contains(t, fc.lastSent(t), "Delete")
	require.Len(t, seriesRepo.byID, 1)

	// Declining keeps everything.
	fc = newFakeContext(adminID)
	fc.cb = &tele.Callback{Data: "\fds_no|1"}
	require.NoError(t, app.requireAdmin(app.cbDeleteKeep)(fc))
	require.Len(t, seriesRepo.byID, 1)

	fc = newFakeContext(adminID)
	fc.cb = &tele.Callback{Data: "\fds_yes|1"}
	require.NoError(t, app.requireAdmin(app.cbDeleteSeriesYes)(fc))
	require.Empty(t, seriesRepo.byID)
}

func TestAdminCallbacksRejectVisitors(t *testing.T) {
	app, seriesRepo, _ := newTestApp()
	_, err := seriesRepo.Create(context.Background(), &models.Series{
		Name:      "Guarded",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	fc := newFakeContext(visitorID)
	fc.cb = &tele.Callback{Data: "\fds_yes|1"}
	require.NoError(t, app.requireAdmin(app.cbDeleteSeriesYes)(fc))
	require.Equal(t, msgDenied, fc.lastSent(t))
	require.Len(t, seriesRepo.byID, 1)
	require.False(t, app.fsm.InProgress(visitorID))
}

func TestStartSendsDefaultLogo(t *testing.T) {
	app, seriesRepo, _ := newTestApp()
	app.cfg.Bot.DefaultLogo = "https://example.com/logo.png"
	_, err := seriesRepo.Create(context.Background(), &models.Series{
		Name:      "Visible",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	fc := newFakeContext(visitorID)
	require.NoError(t, app.handleStart(fc))
	require.Equal(t, "photo:https://example.com/logo.png", fc.lastSent(t))

	// Without a configured logo the list falls back to plain text.
	app.cfg.Bot.DefaultLogo = ""
	fc = newFakeContext(visitorID)
	require.NoError(t, app.handleStart(fc))
	require.Contains(t, fc.lastSent(t), "Pick a symposium")
}

func TestEventPickerReportsNoEvents(t *testing.T) {
	app, seriesRepo, _ := newTestApp()
	_, err := seriesRepo.Create(context.Background(), &models.Series{
		Name:      "Childless",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	fc := newFakeContext(adminID)
	fc.cb = &tele.Callback{Data: "\fde_series|1"}
	require.NoError(t, app.requireAdmin(app.cbDeleteEventSeries)(fc))
	require.Equal(t, msgNoEvents, fc.lastSent(t))

	fc = newFakeContext(adminID)
	fc.cb = &tele.Callback{Data: "\fue_series|1"}
	require.NoError(t, app.requireAdmin(app.cbUpdateEventSeries)(fc))
	require.Equal(t, msgNoEvents, fc.lastSent(t))
}

func TestHelpVariesByPrivilege(t *testing.T) {
	app, _, _ := newTestApp()

	fc := newFakeContext(visitorID)
	require.NoError(t, app.handleHelp(fc))
	require.NotContains(t, fc.lastSent(t), "/create")

	fc = newFakeContext(adminID)
	require.NoError(t, app.handleHelp(fc))
	require.Contains(t, fc.lastSent(t), "/create")
	require.Contains(t, fc.lastSent(t), "/delete_event")
}

func strptrTest(s string) *string { return &s }
