package timer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	presetdto "sabibi/internal/modules/preset/dto"
	timerdto "sabibi/internal/modules/timer/dto"
	"sabibi/internal/ui/theme"
)

const tickInterval = time.Second

// ─── ports ───────────────────────────────────────────────────────────────────

type TimerPort interface {
	Start(ctx context.Context, preset string) (timerdto.TickOutput, error)
	Tick(ctx context.Context) (timerdto.TickOutput, error)
	Pause(ctx context.Context) (timerdto.TickOutput, error)
	Resume(ctx context.Context) (timerdto.TickOutput, error)
	Reset(ctx context.Context) (timerdto.TickOutput, error)
	State(ctx context.Context) (timerdto.TickOutput, error)
}

type PresetPort interface {
	List(ctx context.Context) (presetdto.ListOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type PresetsLoadedMsg struct {
	Presets []presetdto.PresetOutput
	Source  string
	Err     error
}

// StateMsg carries the timer state after an action or a tick.
type StateMsg struct {
	State  timerdto.TickOutput
	Action string
	Err    error
}

// StudyRecordedMsg reports study intervals that ended during a tick, and
// whether saving them failed. The app uses it for the status bar and to
// refresh stats.
type StudyRecordedMsg struct {
	Minutes []int
	Err     error
}

type tickMsg struct {
	loop int
}

// ─── list item ───────────────────────────────────────────────────────────────

type presetItem struct {
	preset presetdto.PresetOutput
}

func (i presetItem) Title() string { return i.preset.Label }
func (i presetItem) Description() string {
	return fmt.Sprintf("%d min study · %d min break", i.preset.StudyMinutes, i.preset.BreakMinutes)
}
func (i presetItem) FilterValue() string { return i.preset.Label }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    TimerPort
	presets PresetPort
	list    list.Model
	bar     progress.Model
	spinner spinner.Model
	state   timerdto.TickOutput
	labels  []string
	source  string
	loading bool
	loop    int
	ticking bool
	err     error
	width   int
	height  int
}

func New(port TimerPort, presets PresetPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Peach).BorderForeground(theme.Peach)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Peach)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Presets"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	bar := progress.New(progress.WithGradient(string(theme.Lavender), string(theme.Peach)), progress.WithoutPercentage())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		presets: presets,
		list:    l,
		bar:     bar,
		spinner: sp,
		state:   timerdto.TickOutput{Phase: "idle"},
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadPresetsCmd(), m.loadStateCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case PresetsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.source = msg.Source
		m.labels = m.labels[:0]
		items := make([]list.Item, len(msg.Presets))
		for i, p := range msg.Presets {
			items[i] = presetItem{preset: p}
			m.labels = append(m.labels, p.Label)
		}
		cmds = append(cmds, m.list.SetItems(items))

	case StateMsg:
		if msg.Err != nil && msg.Action != "tick" {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.state = msg.State
		if msg.Action == "tick" && (len(msg.State.StudyCompleted) > 0 || msg.Err != nil) {
			recorded := StudyRecordedMsg{Minutes: msg.State.StudyCompleted, Err: msg.Err}
			cmds = append(cmds, func() tea.Msg { return recorded })
		}
		if running(m.state) && !m.ticking {
			m.ticking = true
			m.loop++
			cmds = append(cmds, m.scheduleTick())
		}
		if !running(m.state) {
			m.ticking = false
		}

	case tickMsg:
		if msg.loop != m.loop || !m.ticking {
			return m, nil
		}
		cmds = append(cmds, m.tickCmd(), m.scheduleTick())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(presetItem); ok {
				cmds = append(cmds, m.StartPreset(item.preset.Label))
			}
			return m, tea.Batch(cmds...)
		case " ":
			cmds = append(cmds, m.TogglePause())
			return m, tea.Batch(cmds...)
		case "r":
			cmds = append(cmds, m.Reset())
			return m, tea.Batch(cmds...)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading presets…")
	}

	listW := m.width * 35 / 100
	clockW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	clockPane := theme.Pane.
		Width(max(clockW-2, 10)).
		Height(max(m.height-2, 3)).
		Render(m.renderClock())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, clockPane)
}

// PresetLabels returns the loaded preset labels in display order.
func (m Model) PresetLabels() []string {
	return append([]string(nil), m.labels...)
}

// Running reports whether a study or break phase is in progress.
func (m Model) Running() bool { return running(m.state) }

func (m Model) StartPreset(label string) tea.Cmd {
	return func() tea.Msg {
		state, err := m.port.Start(context.Background(), label)
		return StateMsg{State: state, Action: "start", Err: err}
	}
}

func (m Model) TogglePause() tea.Cmd {
	if m.state.Paused {
		return m.Resume()
	}
	return m.Pause()
}

func (m Model) Pause() tea.Cmd {
	return func() tea.Msg {
		state, err := m.port.Pause(context.Background())
		return StateMsg{State: state, Action: "pause", Err: err}
	}
}

func (m Model) Resume() tea.Cmd {
	return func() tea.Msg {
		state, err := m.port.Resume(context.Background())
		return StateMsg{State: state, Action: "resume", Err: err}
	}
}

func (m Model) Reset() tea.Cmd {
	return func() tea.Msg {
		state, err := m.port.Reset(context.Background())
		return StateMsg{State: state, Action: "reset", Err: err}
	}
}

// FormatRemaining renders d as mm:ss, rounding partial seconds up so the
// display reaches 00:00 only when the phase is over.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// ─── private ─────────────────────────────────────────────────────────────────

func running(state timerdto.TickOutput) bool {
	return state.Phase == "study" || state.Phase == "break"
}

func (m *Model) resize() {
	listW := m.width * 35 / 100
	m.list.SetSize(listW, m.height)
	m.bar.Width = max(m.width-listW-10, 10)
}

func (m Model) renderClock() string {
	s := m.state
	var sb strings.Builder

	switch s.Phase {
	case "study":
		sb.WriteString(theme.StudyBadge.Render("STUDY"))
	case "break":
		sb.WriteString(theme.BreakBadge.Render("BREAK"))
	case "finished":
		sb.WriteString(theme.BreakBadge.Render("DONE"))
	default:
		sb.WriteString(theme.IdleBadge.Render("IDLE"))
	}
	if s.Paused {
		sb.WriteString("  " + theme.Hot.Render("paused"))
	}
	sb.WriteString("\n")

	if s.Label != "" {
		sb.WriteString(theme.Title.Render(s.Label))
		if s.Cycles > 0 {
			sb.WriteString(theme.Muted.Render(fmt.Sprintf("  cycle %d/%d", s.Cycle, s.Cycles)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(theme.Clock.Render(FormatRemaining(s.Remaining)) + "\n")
	sb.WriteString(m.bar.ViewAs(s.Progress) + "\n\n")

	if m.err != nil {
		sb.WriteString(theme.Alert.Render(m.err.Error()) + "\n\n")
	}
	if m.source != "" {
		sb.WriteString(theme.Muted.Render("presets: "+m.source) + "\n")
	}
	sb.WriteString(theme.Muted.Render("enter: start  space: pause/resume  r: reset"))
	return sb.String()
}

func (m Model) scheduleTick() tea.Cmd {
	loop := m.loop
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{loop: loop} })
}

func (m Model) tickCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.port.Tick(context.Background())
		return StateMsg{State: state, Action: "tick", Err: err}
	}
}

func (m Model) loadStateCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.port.State(context.Background())
		return StateMsg{State: state, Action: "state", Err: err}
	}
}

func (m Model) loadPresetsCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.presets.List(context.Background())
		return PresetsLoadedMsg{Presets: out.Presets, Source: out.Source, Err: err}
	}
}
