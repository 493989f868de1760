package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

// BuildInfo is shown on the help page.
type BuildInfo struct {
	Version    string
	Date       string
	Commit     string
	ConfigPath string
}

type helpModel struct {
	helpView help.Model
	build    BuildInfo
}

func newHelpModel(build BuildInfo) helpModel {
	return helpModel{helpView: help.New(), build: build}
}

func (m helpModel) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Next,
			input.Default.Previous,
			input.Default.First,
			input.Default.Last,
			input.Default.Jump,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Mode,
			input.Default.Help,
			input.Default.Back,
			input.Default.Quit,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(right))

	commit := m.build.Commit
	if len(commit) > 8 {
		commit = m.build.Commit[0:8]
	}

	configPath := m.build.ConfigPath
	if configPath == "" {
		configPath = "(defaults)"
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Mouse", "wheel, drag to swipe, click a dot"),
		styles.DetailRow("Version", m.build.Version),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.build.Date),
		styles.DetailRow("Config Path", configPath),
	)

	return lipgloss.Place(lipgloss.Width(content), lipgloss.Height(content),
		lipgloss.Center, lipgloss.Center, content)
}
