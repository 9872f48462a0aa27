package stats_test

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	completiondto "sabibi/internal/modules/completion/dto"
	statsview "sabibi/internal/ui/views/stats"
)

type stubStats struct {
	requested []int
}

func (s *stubStats) Stats(_ context.Context, days int) (completiondto.StatsOutput, error) {
	s.requested = append(s.requested, days)
	return completiondto.StatsOutput{}, nil
}

func (s *stubStats) Watch(context.Context) (<-chan struct{}, error) { return nil, nil }

func TestRenderChartOneRowPerDay(t *testing.T) {
	t.Parallel()
	days := []completiondto.DayTotalOutput{
		{Date: "2026-03-01", TotalMinutes: 0},
		{Date: "2026-03-02", TotalMinutes: 25},
		{Date: "2026-03-03", TotalMinutes: 100},
	}
	out := statsview.RenderChart(days, 40)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Sun 03-01") || !strings.Contains(lines[2], "1h40m") {
		t.Fatalf("unexpected rows:\n%s", out)
	}
	if strings.Contains(lines[0], "█") {
		t.Fatalf("zero day must have no bar: %q", lines[0])
	}
	if strings.Count(lines[2], "█") <= strings.Count(lines[1], "█") {
		t.Fatalf("bars not scaled to totals:\n%s", out)
	}
	w := lipgloss.Width(lines[0])
	for _, line := range lines[1:] {
		if lipgloss.Width(line) != w {
			t.Fatalf("rows have uneven width:\n%s", out)
		}
	}
}

func TestRenderChartEmptyWindow(t *testing.T) {
	t.Parallel()
	if out := statsview.RenderChart(nil, 40); !strings.Contains(out, "no days") {
		t.Fatalf("unexpected empty chart: %q", out)
	}
}

func TestSetDaysClampsAndReloads(t *testing.T) {
	t.Parallel()
	port := &stubStats{}
	m := statsview.New(context.Background(), port)

	m, cmd := m.SetDays(500)
	if m.Days() != statsview.MaxDays || cmd == nil {
		t.Fatalf("expected clamp to %d with reload, got %d", statsview.MaxDays, m.Days())
	}
	msg := cmd().(statsview.StatsLoadedMsg)
	if msg.Days != statsview.MaxDays || port.requested[0] != statsview.MaxDays {
		t.Fatalf("reload requested wrong window: %+v %v", msg, port.requested)
	}

	m, _ = m.SetDays(0)
	if m.Days() != statsview.MinDays {
		t.Fatalf("expected clamp to %d, got %d", statsview.MinDays, m.Days())
	}
}

func TestStaleStatsAreIgnored(t *testing.T) {
	t.Parallel()
	m := statsview.New(context.Background(), &stubStats{})
	m, _ = m.SetDays(7)
	m, _ = m.Update(statsview.StatsLoadedMsg{Days: 14, Stats: completiondto.StatsOutput{TotalMinutes: 99}})
	if strings.Contains(m.View(), "1h39m") {
		t.Fatalf("stale result rendered")
	}
}
