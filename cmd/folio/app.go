package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/config"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing messages from background systems to the UI.
type App struct {
	ui            UI
	configUpdates <-chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call Start().
func NewApp(ui UI, configUpdates <-chan config.Config) *App {
	return &App{ui: ui, configUpdates: configUpdates}
}

// Start runs the UI until it exits, forwarding config reloads to it in the meantime.
func (app *App) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer cancel()

		return app.ui.Run()
	})

	group.Go(func() error {
		app.configSyncer(groupCtx)

		return nil
	})

	return group.Wait()
}

// configSyncer sends externally edited config to the UI.
func (app *App) configSyncer(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			slog.Info("Applying reloaded config")
			app.ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}
