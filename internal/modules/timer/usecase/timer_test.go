package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	completionout "sabibi/internal/modules/completion/adapter/out"
	completiondto "sabibi/internal/modules/completion/dto"
	completionin "sabibi/internal/modules/completion/port/in"
	completionservice "sabibi/internal/modules/completion/service"
	completionusecase "sabibi/internal/modules/completion/usecase"
	presetservice "sabibi/internal/modules/preset/service"
	presetusecase "sabibi/internal/modules/preset/usecase"
	timerout "sabibi/internal/modules/timer/adapter/out"
	"sabibi/internal/modules/timer/domain"
	"sabibi/internal/modules/timer/dto"
	timerin "sabibi/internal/modules/timer/port/in"
	timerport "sabibi/internal/modules/timer/port/out"
	"sabibi/internal/modules/timer/service"
	"sabibi/internal/modules/timer/usecase"
	apperrors "sabibi/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type sliceTicks struct {
	instants []time.Time
}

func (s sliceTicks) Ticks(context.Context) <-chan time.Time {
	ch := make(chan time.Time, len(s.instants))
	for _, at := range s.instants {
		ch <- at
	}
	close(ch)
	return ch
}

type silentTicks struct{}

func (silentTicks) Ticks(ctx context.Context) <-chan time.Time {
	ch := make(chan time.Time)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}

type failingRecorder struct {
	err   error
	calls int
}

func (f *failingRecorder) RecordStudy(context.Context, int) error {
	f.calls++
	return f.err
}

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newCompletions(clk *fakeClock) completionin.Usecase {
	store := completionout.NewMemoryKeyValueStore()
	return completionusecase.NewInteractor(completionservice.NewCompletionService(clk, store, nil), nil)
}

func newTimer(clk *fakeClock, recorder timerport.Recorder, ticks timerport.TickSource) timerin.Usecase {
	presets := presetusecase.NewInteractor(presetservice.NewPresetService(nil, nil))
	return usecase.NewInteractor(service.NewTimerService(clk, recorder, ticks, nil), presets)
}

func TestRunRecordsEachStudyInterval(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: t0}
	completions := newCompletions(clk)
	ticks := sliceTicks{instants: []time.Time{
		t0.Add(10 * time.Minute),
		t0.Add(25 * time.Minute),
		t0.Add(30 * time.Minute),
		t0.Add(55 * time.Minute),
		t0.Add(60 * time.Minute),
	}}
	uc := newTimer(clk, timerout.NewCompletionRecorder(completions), ticks)

	var reports []dto.TickOutput
	out, err := uc.Run(context.Background(), dto.RunInput{Preset: "light", Cycles: 2}, func(tick dto.TickOutput) {
		reports = append(reports, tick)
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Label != "Light" || out.CompletedCycles != 2 || out.Recorded != 2 || out.RecordedMinutes != 50 {
		t.Fatalf("unexpected run output: %+v", out)
	}
	if len(reports) != 5 || !reports[len(reports)-1].Finished {
		t.Fatalf("expected five progress reports ending finished, got %+v", reports)
	}
	history, err := completions.History(context.Background(), completiondto.HistoryInput{})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 || history[0].StudyMinutes != 25 || history[0].Date != "2026-03-02" {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestRunCatchesUpAfterLongGap(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: t0}
	recorder := &failingRecorder{}
	uc := newTimer(clk, recorder, sliceTicks{instants: []time.Time{t0.Add(3 * time.Hour)}})

	out, err := uc.Run(context.Background(), dto.RunInput{Preset: "Standard", Cycles: 2}, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if recorder.calls != 2 || out.CompletedCycles != 2 || out.RecordedMinutes != 100 {
		t.Fatalf("unexpected catch-up result: %+v calls=%d", out, recorder.calls)
	}
}

func TestRunAbortsWhenRecordFails(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: t0}
	recorder := &failingRecorder{err: errors.New("disk full")}
	uc := newTimer(clk, recorder, sliceTicks{instants: []time.Time{t0.Add(25 * time.Minute), t0.Add(30 * time.Minute)}})

	out, err := uc.Run(context.Background(), dto.RunInput{Preset: "Light", Cycles: 1}, nil)
	if err == nil || !errors.Is(err, recorder.err) {
		t.Fatalf("expected wrapped record error, got %v", err)
	}
	if out.Recorded != 0 || recorder.calls != 1 {
		t.Fatalf("run should stop at the failed record: %+v calls=%d", out, recorder.calls)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: t0}
	uc := newTimer(clk, &failingRecorder{}, silentTicks{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Run(ctx, dto.RunInput{Preset: "Light"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunUnknownPreset(t *testing.T) {
	t.Parallel()
	uc := newTimer(&fakeClock{now: t0}, &failingRecorder{}, silentTicks{})
	if _, err := uc.Run(context.Background(), dto.RunInput{Preset: "marathon"}, nil); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunWithoutTickSource(t *testing.T) {
	t.Parallel()
	presets := presetusecase.NewInteractor(presetservice.NewPresetService(nil, nil))
	uc := usecase.NewInteractor(service.NewTimerService(&fakeClock{now: t0}, &failingRecorder{}, nil, nil), presets)
	if _, err := uc.Run(context.Background(), dto.RunInput{Preset: "Light"}, nil); err == nil {
		t.Fatalf("expected error without tick source")
	}
}

func TestInteractiveTickRecordsCompletion(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: t0}
	completions := newCompletions(clk)
	uc := newTimer(clk, timerout.NewCompletionRecorder(completions), nil)
	ctx := context.Background()

	started, err := uc.Start(ctx, dto.StartInput{Preset: "standard"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.Phase != string(domain.PhaseStudy) || started.Remaining != 50*time.Minute {
		t.Fatalf("unexpected start state: %+v", started)
	}
	if _, err := uc.Start(ctx, dto.StartInput{Preset: "light"}); !errors.Is(err, apperrors.ErrTimerRunning) {
		t.Fatalf("expected ErrTimerRunning, got %v", err)
	}

	clk.now = t0.Add(50 * time.Minute)
	tick, err := uc.Tick(ctx)
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(tick.StudyCompleted) != 1 || tick.StudyCompleted[0] != 50 || tick.Phase != string(domain.PhaseBreak) {
		t.Fatalf("unexpected tick: %+v", tick)
	}

	clk.now = t0.Add(51 * time.Minute)
	again, err := uc.Tick(ctx)
	if err != nil {
		t.Fatalf("second tick: %v", err)
	}
	if len(again.StudyCompleted) != 0 {
		t.Fatalf("study completion must be reported once, got %+v", again)
	}

	history, _ := completions.History(ctx, completiondto.HistoryInput{})
	if len(history) != 1 || history[0].StudyMinutes != 50 {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestInteractiveTickSurfacesRecordFailure(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: t0}
	recorder := &failingRecorder{err: errors.New("read-only filesystem")}
	uc := newTimer(clk, recorder, nil)
	ctx := context.Background()

	if _, err := uc.Start(ctx, dto.StartInput{Preset: "light"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.now = t0.Add(26 * time.Minute)
	tick, err := uc.Tick(ctx)
	if !errors.Is(err, recorder.err) {
		t.Fatalf("expected record error, got %v", err)
	}
	if tick.Phase != string(domain.PhaseBreak) {
		t.Fatalf("state must still advance, got %+v", tick)
	}
}

func TestPauseFreezesRemaining(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: t0}
	uc := newTimer(clk, &failingRecorder{}, nil)
	ctx := context.Background()

	if _, err := uc.Pause(ctx); !errors.Is(err, apperrors.ErrTimerNotRunning) {
		t.Fatalf("expected ErrTimerNotRunning, got %v", err)
	}
	if _, err := uc.Start(ctx, dto.StartInput{Preset: "light"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	clk.now = t0.Add(10 * time.Minute)
	if _, err := uc.Pause(ctx); err != nil {
		t.Fatalf("pause: %v", err)
	}
	clk.now = t0.Add(40 * time.Minute)
	state, _ := uc.State(ctx)
	if !state.Paused || state.Remaining != 15*time.Minute {
		t.Fatalf("unexpected paused state: %+v", state)
	}
	resumed, err := uc.Resume(ctx)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.Paused || resumed.Remaining != 15*time.Minute {
		t.Fatalf("unexpected resumed state: %+v", resumed)
	}
	reset, _ := uc.Reset(ctx)
	if reset.Phase != string(domain.PhaseIdle) {
		t.Fatalf("expected idle after reset, got %+v", reset)
	}
}
