package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	completiondto "sabibi/internal/modules/completion/dto"
	"sabibi/internal/ui/theme"
)

const (
	DefaultDays = 14
	MinDays     = 1
	MaxDays     = 90
)

// ─── port ────────────────────────────────────────────────────────────────────

type StatsPort interface {
	Stats(ctx context.Context, days int) (completiondto.StatsOutput, error)
	Watch(ctx context.Context) (<-chan struct{}, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StatsLoadedMsg struct {
	Days  int
	Stats completiondto.StatsOutput
	Err   error
}

type watchReadyMsg struct {
	changes <-chan struct{}
	err     error
}

type storeChangedMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	ctx     context.Context
	port    StatsPort
	days    int
	stats   completiondto.StatsOutput
	changes <-chan struct{}
	spinner spinner.Model
	loading bool
	err     error
	width   int
	height  int
}

func New(ctx context.Context, port StatsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{ctx: ctx, port: port, days: DefaultDays, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.watchCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StatsLoadedMsg:
		if msg.Days != m.days {
			// a newer window was requested meanwhile
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.stats = msg.Stats
		}

	case watchReadyMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.changes = msg.changes
		return m, m.waitCmd()

	case storeChangedMsg:
		return m, tea.Batch(m.Reload(), m.waitCmd())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "+", "=":
			return m.SetDays(m.days + 1)
		case "-", "_":
			return m.SetDays(m.days - 1)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading stats…")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Last %d days", m.days)) + "\n\n")
	if m.err != nil {
		sb.WriteString(theme.Alert.Render(m.err.Error()) + "\n\n")
	}
	sb.WriteString(RenderChart(m.stats.Days, max(m.width-8, 20)) + "\n")
	sb.WriteString(RenderSummary(m.stats) + "\n\n")
	sb.WriteString(theme.Muted.Render("+/-: window size"))

	return theme.Pane.
		Width(max(m.width-2, 10)).
		Height(max(m.height-2, 3)).
		Render(sb.String())
}

// Days is the current window size.
func (m Model) Days() int { return m.days }

// SetDays changes the window, clamped to [MinDays, MaxDays], and reloads.
func (m Model) SetDays(days int) (Model, tea.Cmd) {
	days = min(max(days, MinDays), MaxDays)
	if days == m.days && !m.loading {
		return m, nil
	}
	m.days = days
	return m, m.Reload()
}

func (m Model) Reload() tea.Cmd {
	days := m.days
	return func() tea.Msg {
		out, err := m.port.Stats(m.ctx, days)
		return StatsLoadedMsg{Days: days, Stats: out, Err: err}
	}
}

// RenderChart draws one horizontal bar per day, oldest first, scaled to the
// busiest day. The last row is today.
func RenderChart(days []completiondto.DayTotalOutput, width int) string {
	if len(days) == 0 {
		return theme.Muted.Render("no days in window")
	}
	peak := 0
	valueW := 0
	for _, d := range days {
		peak = max(peak, d.TotalMinutes)
		valueW = max(valueW, len(formatMinutes(d.TotalMinutes)))
	}
	const labelW = len("Mon 01-02")
	barW := max(width-labelW-valueW-4, 1)

	var sb strings.Builder
	for i, d := range days {
		n := 0
		if peak > 0 {
			n = d.TotalMinutes * barW / peak
			if d.TotalMinutes > 0 && n == 0 {
				n = 1
			}
		}
		style := theme.Bar
		if i == len(days)-1 {
			style = theme.BarToday
		}
		bar := style.Render(strings.Repeat("█", n)) + theme.BarEmpty.Render(strings.Repeat("·", barW-n))
		fmt.Fprintf(&sb, "%s │%s %*s\n", theme.Muted.Render(dayLabel(d.Date)), bar, valueW, formatMinutes(d.TotalMinutes))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func RenderSummary(s completiondto.StatsOutput) string {
	parts := []string{
		theme.Hot.Render(formatMinutes(s.TotalMinutes)) + theme.Muted.Render(" total"),
		fmt.Sprintf("%d", s.Sessions) + theme.Muted.Render(" sessions"),
		fmt.Sprintf("%d", s.ActiveDays) + theme.Muted.Render(" active days"),
		fmt.Sprintf("%d", s.Streak) + theme.Muted.Render(" day streak"),
	}
	if s.BestDay.TotalMinutes > 0 {
		parts = append(parts, theme.Muted.Render("best ")+dayLabel(s.BestDay.Date)+" ("+formatMinutes(s.BestDay.TotalMinutes)+")")
	}
	return strings.Join(parts, theme.Muted.Render("  ·  "))
}

// ─── private ─────────────────────────────────────────────────────────────────

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

func dayLabel(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("Mon 01-02")
}

func (m Model) watchCmd() tea.Cmd {
	return func() tea.Msg {
		changes, err := m.port.Watch(m.ctx)
		return watchReadyMsg{changes: changes, err: err}
	}
}

func (m Model) waitCmd() tea.Cmd {
	changes := m.changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}
