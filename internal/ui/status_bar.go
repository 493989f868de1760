package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/effect"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

type statusBarModel struct {
	version string
	notice  *effect.Notice
}

func newStatusBarModel(version string) statusBarModel {
	return statusBarModel{version: version}
}

func (m statusBarModel) View(width int, current int, count int, title string, mode config.Mode) string {
	args := []string{
		styles.StatusSection.Render(fmt.Sprintf("%d/%d %s", current+1, count, title)),
		styles.StatusMode.Render(string(mode)),
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
		m.status(),
	}

	return lipgloss.NewStyle().Width(width).Background(styles.Black).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m statusBarModel) status() string {
	if m.notice == nil || !m.notice.Visible() {
		return ""
	}

	if m.notice.IsError {
		return styles.StatusError.Render(m.notice.Message)
	}

	return styles.StatusMessage.Render(m.notice.Message)
}
