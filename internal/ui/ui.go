package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/profile"
	"github.com/leighmacdonald/folio/internal/schedule"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

// New builds the program. It fails when the navigator cannot be set up for the profile, for
// example when the configured start section does not exist.
func New(ctx context.Context, conf config.Config, prof profile.Profile, build BuildInfo) (*UI, error) {
	zone.NewGlobal()

	root, errRoot := newRootModel(conf, prof, schedule.SystemClock{}, build)
	if errRoot != nil {
		return nil, errRoot
	}

	return &UI{
		program: tea.NewProgram(
			root,
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(max(conf.FPS, 1))),
	}, nil
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
