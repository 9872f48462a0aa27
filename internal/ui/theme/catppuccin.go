package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")
	Yellow   = lipgloss.Color("#f9e2af")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1, 2)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Alert = lipgloss.NewStyle().Foreground(Red).Bold(true)

	// Clock renders the countdown digits.
	Clock = lipgloss.NewStyle().Foreground(Text).Bold(true).Padding(1, 0)

	StudyBadge = lipgloss.NewStyle().Foreground(Base).Background(Peach).Bold(true).Padding(0, 1)
	BreakBadge = lipgloss.NewStyle().Foreground(Base).Background(Green).Bold(true).Padding(0, 1)
	IdleBadge  = lipgloss.NewStyle().Foreground(Text).Background(Surface1).Padding(0, 1)

	Bar      = lipgloss.NewStyle().Foreground(Lavender)
	BarToday = lipgloss.NewStyle().Foreground(Peach)
	BarEmpty = lipgloss.NewStyle().Foreground(Surface1)
)
