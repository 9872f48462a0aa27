package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	completioninadapter "sabibi/internal/modules/completion/adapter/in"
	completionoutadapter "sabibi/internal/modules/completion/adapter/out"
	completiondomain "sabibi/internal/modules/completion/domain"
	completionout "sabibi/internal/modules/completion/port/out"
	completionservice "sabibi/internal/modules/completion/service"
	completionusecase "sabibi/internal/modules/completion/usecase"
	presetinadapter "sabibi/internal/modules/preset/adapter/in"
	presetoutadapter "sabibi/internal/modules/preset/adapter/out"
	presetservice "sabibi/internal/modules/preset/service"
	presetusecase "sabibi/internal/modules/preset/usecase"
	timerinadapter "sabibi/internal/modules/timer/adapter/in"
	timeroutadapter "sabibi/internal/modules/timer/adapter/out"
	timerservice "sabibi/internal/modules/timer/service"
	timerusecase "sabibi/internal/modules/timer/usecase"
	"sabibi/internal/platform/clock"
	"sabibi/internal/platform/config"
	"sabibi/internal/platform/logging"
	uiapp "sabibi/internal/ui/app"
)

type App struct {
	Config        config.Config
	CompletionCLI completioninadapter.CLIHandler
	PresetCLI     presetinadapter.CLIHandler
	TimerCLI      timerinadapter.CLIHandler
	TimerTUI      timerinadapter.TUIHandler

	closers []io.Closer
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	clk := clock.SystemClock{}
	app := &App{Config: cfg}

	store, notifier, err := app.openStore(cfg, clk, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("completion store ready", logging.Store(cfg.Store), logging.Path(cfg.DataDir))

	completionUC := completionusecase.NewInteractor(
		completionservice.NewCompletionService(clk, store, logger),
		notifier,
	)

	presetUC := presetusecase.NewInteractor(presetservice.NewPresetService(
		presetoutadapter.NewYAMLCatalogStore(cfg.PresetsPath),
		logger,
	))

	timerUC := timerusecase.NewInteractor(
		timerservice.NewTimerService(
			clk,
			timeroutadapter.NewCompletionRecorder(completionUC),
			timeroutadapter.NewSystemTickSource(time.Second),
			logger,
		),
		presetUC,
	)

	app.CompletionCLI = completioninadapter.NewCLIHandler(completionUC)
	app.PresetCLI = presetinadapter.NewCLIHandler(presetUC)
	app.TimerCLI = timerinadapter.NewCLIHandler(timerUC)
	app.TimerTUI = timerinadapter.NewTUIHandler(timerUC)
	return app, nil
}

// openStore selects the completion backend. Only the file store can be
// watched for writes from other processes.
func (a *App) openStore(cfg config.Config, clk clock.Clock, logger *slog.Logger) (completionout.KeyValueStore, completionout.ChangeNotifier, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		store, err := completionoutadapter.NewSQLiteKeyValueStore(cfg.DBPath, clk)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		a.closers = append(a.closers, store)
		return store, nil, nil
	case config.StoreMemory:
		return completionoutadapter.NewMemoryKeyValueStore(), nil, nil
	case config.StoreFile, "":
		store := completionoutadapter.NewFileKeyValueStore(cfg.StorePath)
		watcher := completionoutadapter.NewFileStoreWatcher(cfg.StorePath, completiondomain.CollectionKey, logger)
		return store, watcher, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store backend %q", cfg.Store)
	}
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func RunTUI(ctx context.Context, app *App, route string) error {
	model, err := uiapp.NewModel(ctx, route, app.TimerTUI, app.PresetCLI, app.CompletionCLI)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
