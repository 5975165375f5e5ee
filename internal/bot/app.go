package bot

import (
	"context"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"symposiumbot/core/bootstrap"
	"symposiumbot/core/cmd"
	tg "symposiumbot/core/telegram"
	tghelpers "symposiumbot/core/telegram/helpers"
	"symposiumbot/core/telegram/middleware"
	"symposiumbot/core/telegram/router"
	"symposiumbot/core/telegram/state"
	"symposiumbot/core/telegram/ui"

	"symposiumbot/internal/models"
	"symposiumbot/internal/service"
	"symposiumbot/internal/storage"
	"symposiumbot/internal/validate"
)

// App owns the bot's services and FSM manager and builds the Telegram
// runtime configuration.
type App struct {
	cfg    *Config
	series *service.SeriesService
	events *service.EventService
	fsm    state.Manager
}

var (
	_ cmd.TelegramApp     = (*App)(nil)
	_ ui.FallbackProvider = (*App)(nil)
)

type services struct {
	series *service.SeriesService
	events *service.EventService
}

var serviceProvider = bootstrap.TypedServiceProviderFunc[*services](
	func(_ context.Context, _ interface{}, st bootstrap.Storage) (*services, error) {
		store, ok := st.(*storage.Store)
		if !ok {
			return nil, fmt.Errorf("bot: unexpected storage %T", st)
		}
		return &services{
			series: service.NewSeriesService(store.Series),
			events: service.NewEventService(store.Events, store.Series),
		}, nil
	},
)

// New assembles the application from configuration and a ready store.
func New(cfg *Config, svcs *services) *App {
	return &App{
		cfg:    cfg,
		series: svcs.series,
		events: svcs.events,
		fsm:    state.NewMemoryManager(),
	}
}

// LoadCarrier adapts LoadConfig to the cmd runner contract.
func LoadCarrier(path string) (cmd.ConfigCarrier, error) {
	return LoadConfig(path)
}

// Bootstrap initializes infrastructure (logger, database, migrations),
// runs optional seeders, and builds the application.
func Bootstrap(carrier cmd.ConfigCarrier) (cmd.TelegramApp, error) {
	cfg, ok := carrier.(*Config)
	if !ok {
		return nil, fmt.Errorf("bot: unexpected config type %T", carrier)
	}

	res, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	store := storage.New(res.DB)

	ctx := context.Background()
	mods := bootstrap.Modules{Services: serviceProvider}
	if cfg.Bot.SeedDemo {
		mods.Seeders = append(mods.Seeders, storage.DemoSeeder{})
	}
	for _, seeder := range mods.Seeders {
		if err := seeder.Seed(ctx, store); err != nil {
			return nil, fmt.Errorf("bot: seeding failed: %w", err)
		}
	}

	svcs, err := serviceProvider.ProvideTyped(ctx, cfg, store)
	if err != nil {
		return nil, err
	}

	return New(cfg, svcs), nil
}

// TelegramRunOptions wires commands, callbacks, FSM states, and
// middleware into the shared Telegram runtime.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg := tg.NewRegistry()
	a.registerCommands(reg)
	if err := a.registerCallbacks(reg); err != nil {
		return tg.RunOptions{}, err
	}
	a.registerStates()
	reg.SetCallbackNotFound(a.UnknownCallback())

	core := a.cfg.CoreConfig()

	mws := tg.DefaultMiddlewares(core, nil)
	mws = append(mws, tg.Middleware{Name: "session", Use: state.WithSession(a.fsm)})

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID:       core.Telegram.AdminID,
		OnAdminReject: a.denied,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{
		NotFound: a.UnknownCallback(),
	}))
	routes = append(routes, router.TextRoutes(a.fsm, reg, router.TextOptions{
		UnknownText:     a.UnknownText(),
		UnknownDocument: a.UnknownDocument(),
	})...)
	routes = append(routes, a.photoRoute())

	return tg.RunOptions{
		Config:      core,
		Registry:    reg,
		Middlewares: mws,
		Routes:      routes,
	}, nil
}

// photoRoute forwards photos into an active flow so image steps can
// accept uploads, not only URLs.
func (a *App) photoRoute() tg.Route {
	handler := func(c tele.Context) error {
		if a.fsm.InProgress(c.Sender().ID) {
			return a.fsm.ManagerHandler(c)
		}
		return nil
	}
	return tg.Route{
		Endpoint: tele.OnPhoto,
		Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
	}
}

func (a *App) isAdmin(c tele.Context) bool {
	sender := c.Sender()
	return sender != nil && sender.ID == a.cfg.Telegram.AdminID
}

func (a *App) denied(c tele.Context) error {
	return tghelpers.SendText(c, userMessage(models.ErrUnauthorized))
}

// requireAdmin guards callback handlers reachable outside the
// admin-only command middleware.
func (a *App) requireAdmin(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if !a.isAdmin(c) {
			return a.denied(c)
		}
		return next(c)
	}
}

// flowStep wraps an FSM text step with the shared cancel check. The
// cancel word wins over validation so a stuck user can always leave.
func (a *App) flowStep(next func(c tele.Context, input string) error) tele.HandlerFunc {
	return func(c tele.Context) error {
		input := strings.TrimSpace(c.Text())
		if strings.EqualFold(input, cancelWord) {
			a.endFlow(c.Sender().ID)
			return tghelpers.SendText(c, msgCancelled)
		}
		return next(c, input)
	}
}

func (a *App) endFlow(userID int64) {
	a.fsm.Clear(userID)
}

// imageInput resolves an image step: an uploaded photo wins, then the
// skip sentinel or a URL.
func imageInput(c tele.Context, input string) (*string, error) {
	if msg := c.Message(); msg != nil && msg.Photo != nil {
		id := msg.Photo.FileID
		return &id, nil
	}
	return validate.Optional(input)
}

// UnknownText replies to free text outside any flow.
func (a *App) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, "I did not understand that. Try /help.")
	}
}

// UnknownDocument replies to unexpected file uploads.
func (a *App) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, "I cannot do anything with files. Try /help.")
	}
}

// UnknownCallback answers stale or unsupported inline buttons.
func (a *App) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
	}
}
