package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// indicatorModel draws the section dots and the progress bar. It holds no navigation state of
// its own, everything comes from the last nav.Indicator it was given.
type indicatorModel struct {
	id        string
	labels    []string
	indicator nav.Indicator
	bar       progress.Model
	width     int
}

func newIndicatorModel(labels []string) indicatorModel {
	return indicatorModel{
		id:     zone.NewPrefix(),
		labels: labels,
		bar: progress.New(
			progress.WithGradient(string(styles.Accent), string(styles.Secondary)),
			progress.WithoutPercentage()),
	}
}

func (m *indicatorModel) set(indicator nav.Indicator) {
	m.indicator = indicator
}

func (m *indicatorModel) setWidth(width int) {
	m.width = width
	m.bar.Width = max(width-8, 10)
}

func (m indicatorModel) dotID(idx int) string {
	return m.id + strconv.Itoa(idx)
}

// dotAt returns the index of the dot under the mouse.
func (m indicatorModel) dotAt(msg tea.MouseMsg) (int, bool) {
	for idx := range m.indicator.Dots {
		if zone.Get(m.dotID(idx)).InBounds(msg) {
			return idx, true
		}
	}

	return 0, false
}

func (m indicatorModel) Dots() string {
	if m.width == 0 {
		return ""
	}

	dots := make([]string, len(m.indicator.Dots))
	for idx, active := range m.indicator.Dots {
		label := ""
		if idx < len(m.labels) {
			label = m.labels[idx]
		}

		var dot string
		if active {
			dot = styles.DotActive.Render(styles.IconDot + " " + label)
		} else {
			dot = styles.DotInactive.Render(styles.IconDotHollow + " " + styles.DotLabel.Render(label))
		}

		dots[idx] = zone.Mark(m.dotID(idx), dot)
	}

	return styles.HeaderContainerStyle.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, dots...))
}

func (m indicatorModel) Bar() string {
	if m.width == 0 {
		return ""
	}

	return styles.FooterContainerStyle.Width(m.width).Render(m.bar.ViewAs(m.indicator.Fill))
}
