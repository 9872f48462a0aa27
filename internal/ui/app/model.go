package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sabibi/internal/ui/components"
	"sabibi/internal/ui/router"
	"sabibi/internal/ui/theme"
	statsview "sabibi/internal/ui/views/stats"
	timerview "sabibi/internal/ui/views/timer"
)

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Start   key.Binding
	Pause   key.Binding
	Reset   key.Binding
	Window  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start preset")),
		Pause:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset timer")),
		Window:  key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "stats window")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset},
		{k.Tab, k.Window},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns view routing, the help overlay
// and the command palette; timer and stats logic live behind the view ports.
type Model struct {
	timerView timerview.Model
	statsView statsview.Model

	active   router.ViewID
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(ctx context.Context, route string, timer timerview.TimerPort, presets timerview.PresetPort, stats statsview.StatsPort) (Model, error) {
	view, err := router.Resolve(route)
	if err != nil {
		return Model{}, err
	}
	return Model{
		timerView: timerview.New(timer, presets),
		statsView: statsview.New(ctx, stats),
		active:    view,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.timerView.Init(), m.statsView.Init())
}

// Active is the view currently shown.
func (m Model) Active() router.ViewID { return m.active }

// Status is the status-bar message.
func (m Model) Status() string { return m.status }

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case timerview.PresetsLoadedMsg:
		if msg.Err != nil {
			m.status = "presets: " + msg.Err.Error()
		}

	case timerview.StudyRecordedMsg:
		if msg.Err != nil {
			m.status = "study not saved: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("saved %s min of study", joinInts(msg.Minutes))
		}
		cmds = append(cmds, m.statsView.Reload())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.active = m.nextView()
			return m, nil
		case "?":
			m.showHelp = true
			return m, nil
		case ":":
			return m, m.palette.Open()
		}

		// Keys go to the visible view only.
		var cmd tea.Cmd
		switch m.active {
		case router.ViewTimer:
			m.timerView, cmd = m.timerView.Update(msg)
		case router.ViewStats:
			m.statsView, cmd = m.statsView.Update(msg)
		}
		return m, cmd
	}

	// Everything else reaches both views so the timer keeps ticking and
	// stats keep reloading while hidden.
	var timerCmd, statsCmd tea.Cmd
	m.timerView, timerCmd = m.timerView.Update(msg)
	m.statsView, statsCmd = m.statsView.Update(msg)
	if _, ok := msg.(timerview.PresetsLoadedMsg); ok {
		m.palette.SetPresets(m.timerView.PresetLabels())
	}
	cmds = append(cmds, timerCmd, statsCmd)
	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()

	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.active == router.ViewStats:
		content = m.statsView.View()
	default:
		content = m.timerView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	views := router.Views()
	parts := make([]string, len(views))
	for i, v := range views {
		label := " " + v.Title() + " "
		if v == m.active {
			parts[i] = theme.Hot.Render(label)
		} else {
			parts[i] = theme.Muted.Render(label)
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "sabibi  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.timerView.Running() {
		left = theme.Hot.Render("● running") + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "go":
		if len(parts) < 2 {
			m.status = "usage: go <path>"
			return m, nil
		}
		view, err := router.Resolve(parts[1])
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.active = view
		m.status = "at " + router.Path(view)
		return m, nil

	case "timer:start":
		if len(parts) < 2 {
			m.status = "usage: timer:start <preset>"
			return m, nil
		}
		m.active = router.ViewTimer
		return m, m.timerView.StartPreset(strings.Join(parts[1:], " "))

	case "timer:pause":
		return m, m.timerView.Pause()

	case "timer:resume":
		return m, m.timerView.Resume()

	case "timer:reset":
		return m, m.timerView.Reset()

	case "stats:days":
		if len(parts) < 2 {
			m.status = "usage: stats:days <n>"
			return m, nil
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid day count: " + parts[1]
			return m, nil
		}
		m.active = router.ViewStats
		var cmd tea.Cmd
		m.statsView, cmd = m.statsView.SetDays(n)
		m.status = fmt.Sprintf("stats window: %d days", m.statsView.Days())
		return m, cmd

	case "stats:reload":
		m.active = router.ViewStats
		return m, m.statsView.Reload()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) nextView() router.ViewID {
	views := router.Views()
	for i, v := range views {
		if v == m.active {
			return views[(i+1)%len(views)]
		}
	}
	return views[0]
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.statsView, _ = m.statsView.Update(sz)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "+")
}
