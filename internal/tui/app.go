package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/hrkit/internal/config"
	"github.com/Iron-Ham/hrkit/internal/ingest"
	"github.com/Iron-Ham/hrkit/internal/logging"
	"github.com/Iron-Ham/hrkit/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program   *tea.Program
	model     Model
	cfg       *config.Config
	logger    *logging.Logger
	watchPath string
}

// New creates a new TUI application. A non-empty watchPath reloads the
// name list whenever that file changes.
func New(cfg *config.Config, opts Options, watchPath string) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	if watchPath != "" {
		opts.Watching = watchPath
	}
	return &App{
		model:     NewModel(cfg, opts),
		cfg:       cfg,
		logger:    logger,
		watchPath: watchPath,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.model.ctx = ctx

	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			a.program.Send(tea.Quit())
		case <-ctx.Done():
		}
	}()

	if a.watchPath != "" {
		watcher, err := a.startWatcher(ctx)
		if err != nil {
			return err
		}
		defer watcher.Stop()
	}

	a.logger.Info("tui started", "names", a.model.roster.Len(), "watch", a.watchPath)
	_, err := a.program.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run tui: %w", err)
	}
	a.logger.Info("tui stopped")
	return nil
}

// startWatcher forwards file reloads into the program as messages.
func (a *App) startWatcher(ctx context.Context) (*ingest.Watcher, error) {
	opts := ingest.Options{
		Accept:  a.cfg.Ingest.Accept,
		MaxSize: a.cfg.Ingest.MaxFileSize(),
	}
	onChange := func(res ingest.Result, err error) {
		if err != nil {
			a.program.Send(msg.ErrMsg{Err: err})
			return
		}
		a.program.Send(msg.FileLoaded(res, true))
	}

	watcher, err := ingest.NewWatcher(a.watchPath, opts, a.cfg.Ingest.WatchDebounce(), onChange, a.logger)
	if err != nil {
		return nil, err
	}
	if err := watcher.Start(ctx); err != nil {
		watcher.Stop()
		return nil, err
	}
	return watcher, nil
}
