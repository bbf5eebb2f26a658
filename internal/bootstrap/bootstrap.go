package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	cataloginadapter "chestdef/internal/modules/catalog/adapter/in"
	catalogoutadapter "chestdef/internal/modules/catalog/adapter/out"
	catalogin "chestdef/internal/modules/catalog/port/in"
	catalogservice "chestdef/internal/modules/catalog/service"
	catalogusecase "chestdef/internal/modules/catalog/usecase"
	guideinadapter "chestdef/internal/modules/guide/adapter/in"
	guideoutadapter "chestdef/internal/modules/guide/adapter/out"
	guidein "chestdef/internal/modules/guide/port/in"
	guideservice "chestdef/internal/modules/guide/service"
	guideusecase "chestdef/internal/modules/guide/usecase"
	mediainadapter "chestdef/internal/modules/media/adapter/in"
	mediaoutadapter "chestdef/internal/modules/media/adapter/out"
	mediain "chestdef/internal/modules/media/port/in"
	mediaout "chestdef/internal/modules/media/port/out"
	mediausecase "chestdef/internal/modules/media/usecase"
	nutritioninadapter "chestdef/internal/modules/nutrition/adapter/in"
	nutritionin "chestdef/internal/modules/nutrition/port/in"
	nutritionusecase "chestdef/internal/modules/nutrition/usecase"
	sessioninadapter "chestdef/internal/modules/session/adapter/in"
	sessionoutadapter "chestdef/internal/modules/session/adapter/out"
	sessionin "chestdef/internal/modules/session/port/in"
	sessionout "chestdef/internal/modules/session/port/out"
	sessionusecase "chestdef/internal/modules/session/usecase"
	timerusecase "chestdef/internal/modules/timer/usecase"
	userdatainadapter "chestdef/internal/modules/userdata/adapter/in"
	userdataoutadapter "chestdef/internal/modules/userdata/adapter/out"
	userdatain "chestdef/internal/modules/userdata/port/in"
	userdataout "chestdef/internal/modules/userdata/port/out"
	userdataservice "chestdef/internal/modules/userdata/service"
	userdatausecase "chestdef/internal/modules/userdata/usecase"
	"chestdef/internal/platform/clock"
	"chestdef/internal/platform/config"
	"chestdef/internal/platform/id"
	"chestdef/internal/platform/logging"
	uiapp "chestdef/internal/ui/app"
)

type App struct {
	Config config.Config
	Logger *logging.Logger

	CatalogCLI   cataloginadapter.CLIHandler
	UserDataCLI  userdatainadapter.CLIHandler
	NutritionCLI nutritioninadapter.CLIHandler
	MediaCLI     mediainadapter.CLIHandler
	GuideCLI     guideinadapter.CLIHandler

	catalog   catalogin.Usecase
	userdata  userdatain.Usecase
	nutrition nutritionin.Usecase
	media     mediain.Usecase
	guide     guidein.Usecase
	resolver  sessionout.WorkoutResolver
	active    sessionout.ActiveWorkoutStore

	dispatch *dispatcher
	closers  []func() error
}

// Options overrides adapters that talk to the outside world.
type Options struct {
	// OpenURL replaces the OS launcher used for video playback.
	OpenURL func(ctx context.Context, target string) error
}

func New(cfg config.Config, logger *logging.Logger, opts Options) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	app := &App{Config: cfg, Logger: logger, dispatch: &dispatcher{}}

	var store userdataout.SlotStore
	switch cfg.Store {
	case config.StoreFile:
		store = userdataoutadapter.NewFileSlotStore(cfg.DataDir)
	default:
		sqlStore, err := userdataoutadapter.NewSQLiteSlotStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("new slot store: %w", err)
		}
		app.closers = append(app.closers, sqlStore.Close)
		store = sqlStore
	}

	app.catalog = catalogusecase.NewInteractor(catalogservice.NewCatalogService(catalogoutadapter.NewEmbeddedContent(), logger))
	app.userdata = userdatausecase.NewInteractor(userdataservice.NewUserDataService(store, clk, ids, logger))
	app.nutrition = nutritionusecase.NewInteractor()
	app.guide = guideusecase.NewInteractor(guideservice.NewGuideService(app.catalog, guideoutadapter.NewGlamourRenderer("dark"), logger))

	newPlayer := func() mediaout.Player { return mediaoutadapter.NewLauncherPlayer() }
	if opts.OpenURL != nil {
		newPlayer = func() mediaout.Player { return mediaoutadapter.NewLauncherPlayerWith(opts.OpenURL) }
	}
	app.media = mediausecase.NewInteractor(newPlayer, logger)

	app.resolver = sessionoutadapter.NewCatalogResolver(app.catalog)
	app.active = sessionoutadapter.NewUserDataActiveStore(app.userdata)

	app.CatalogCLI = cataloginadapter.NewCLIHandler(app.catalog)
	app.UserDataCLI = userdatainadapter.NewCLIHandler(app.userdata)
	app.NutritionCLI = nutritioninadapter.NewCLIHandler(app.nutrition)
	app.MediaCLI = mediainadapter.NewCLIHandler(app.media)
	app.GuideCLI = guideinadapter.NewCLIHandler(app.guide)
	return app, nil
}

// Sessions returns the session use-case with timers driven by clk and sched.
func (a *App) Sessions(clk clock.Clock, sched clock.Scheduler) sessionin.Usecase {
	return sessionusecase.NewInteractor(a.resolver, a.active, timerusecase.NewFactory(clk, sched, a.Logger), a.Logger)
}

// Simulator replays scripted gestures on a manual clock.
func (a *App) Simulator(clk *clock.Manual) sessioninadapter.ScriptRunner {
	return sessioninadapter.NewScriptRunner(a.Sessions(clk, clk), clk)
}

// Ports returns the use-cases the terminal UI drives, with session timers
// ticking on wall-clock time through the UI event loop.
func (a *App) Ports() uiapp.Ports {
	return uiapp.Ports{
		Catalog:   a.catalog,
		Session:   a.Sessions(clock.SystemClock{}, clock.NewSystemScheduler(a.dispatch.Dispatch)),
		Media:     a.media,
		Guide:     a.guide,
		Nutrition: a.nutrition,
		UserData:  a.userdata,
	}
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.Ports(), app.Config.Locale)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	app.dispatch.Bind(program)
	defer app.dispatch.Bind(nil)
	_, err := program.Run()
	return err
}

// dispatcher forwards scheduler callbacks to the running program. It is bound
// after the program exists; callbacks arriving while unbound are dropped.
type dispatcher struct {
	mu      sync.Mutex
	program *tea.Program
}

func (d *dispatcher) Bind(p *tea.Program) {
	d.mu.Lock()
	d.program = p
	d.mu.Unlock()
}

func (d *dispatcher) Dispatch(fn func()) {
	d.mu.Lock()
	p := d.program
	d.mu.Unlock()
	if p != nil {
		p.Send(uiapp.RunMsg{Fn: fn})
	}
}
