package styles

import "github.com/charmbracelet/lipgloss"

var (
	Accent    = lipgloss.Color("#f4722b")
	Secondary = lipgloss.Color("#8650ac")

	Black    = lipgloss.Color("#111111")
	Gray     = lipgloss.Color("#3e3e3e")
	GrayDark = lipgloss.Color("#2f3030")
	White    = lipgloss.Color("#cccccc")
	Whiter   = lipgloss.Color("#aaaaaa")

	Red     = lipgloss.Color("#B8383B")
	Blu     = lipgloss.Color("#5885A2")
	Genuine = lipgloss.Color("#4d7455")
	Vintage = lipgloss.Color("#476291")
	Limited = lipgloss.Color("#ffd700")

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	SectionTitle = lipgloss.NewStyle().Foreground(Gray).Bold(true).MarginBottom(1)

	Heading  = lipgloss.NewStyle().Foreground(Accent).Bold(true).MarginBottom(1)
	Typed    = lipgloss.NewStyle().Foreground(Limited).Bold(true)
	Cursor   = lipgloss.NewStyle().Foreground(Accent).Blink(true)
	Body     = lipgloss.NewStyle().Foreground(Whiter)
	Avatar   = lipgloss.NewStyle().Foreground(Blu)
	Faint    = lipgloss.NewStyle().Foreground(Gray)
	TagStyle = lipgloss.NewStyle().Foreground(Black).Background(Vintage).Padding(0, 1).MarginRight(1)

	StatValue = lipgloss.NewStyle().Foreground(Accent).Bold(true).Width(12).Align(lipgloss.Right).PaddingRight(2)
	StatLabel = lipgloss.NewStyle().Foreground(White)

	SkillName = lipgloss.NewStyle().Foreground(White).Width(14)
	SkillBar  = lipgloss.NewStyle().Foreground(Genuine)
	SkillRest = lipgloss.NewStyle().Foreground(GrayDark)

	ProjectCard  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Gray).Padding(0, 1).MarginBottom(1)
	ProjectTitle = lipgloss.NewStyle().Foreground(Blu).Bold(true)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(40)

	DotActive   = lipgloss.NewStyle().Foreground(Accent).Bold(true).PaddingLeft(1).PaddingRight(1)
	DotInactive = lipgloss.NewStyle().Foreground(Gray).PaddingLeft(1).PaddingRight(1)
	DotLabel    = lipgloss.NewStyle().Foreground(Vintage)

	StatusSection = lipgloss.NewStyle().Foreground(Accent).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusMode    = lipgloss.NewStyle().Foreground(Genuine).PaddingRight(2).Bold(true)
	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Genuine).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center)
	StatusVersion = lipgloss.NewStyle().Foreground(Genuine).Bold(true).Align(lipgloss.Center).PaddingRight(2)

	HelpBox = lipgloss.NewStyle().Padding(3)

	IconDot       = "●"
	IconDotHollow = "○"
	IconEmail     = "✉"
	IconLocation  = "⌂"
	IconLink      = "↗"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}
