package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#111111")
	Mantle   = lipgloss.Color("#1a1a1a")
	Surface0 = lipgloss.Color("#262626")
	Surface1 = lipgloss.Color("#3a3a3a")
	Text     = lipgloss.Color("#f5f5f5")
	Subtext0 = lipgloss.Color("#a3a3a3")
	Orange   = lipgloss.Color("#FF5107")
	Amber    = lipgloss.Color("#FFB020")
	Green    = lipgloss.Color("#4ade80")
	Red      = lipgloss.Color("#ef4444")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(0, 1)

	PaneActive = Pane.BorderForeground(Orange)

	Title  = lipgloss.NewStyle().Foreground(Orange).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Subtext0)
	Hot    = lipgloss.NewStyle().Foreground(Orange).Bold(true)
	Good   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Warn   = lipgloss.NewStyle().Foreground(Amber)
	Button = lipgloss.NewStyle().
		Background(Orange).
		Foreground(Base).
		Bold(true).
		Padding(0, 2)

	// Clock is the large timer readout.
	Clock = lipgloss.NewStyle().Foreground(Text).Bold(true).Padding(0, 1)
	// ClockRest tints the readout during the rest interval.
	ClockRest = Clock.Foreground(Green)
)
