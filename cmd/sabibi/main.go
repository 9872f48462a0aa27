package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"sabibi/internal/bootstrap"
	timerdto "sabibi/internal/modules/timer/dto"
	"sabibi/internal/platform/config"
	"sabibi/internal/platform/logging"
	"sabibi/internal/ui/router"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(".env"); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir   string
	store     string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "sabibi",
		Short:         "Pomodoro study timer with local history",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "data directory (default: user config dir/sabibi-timer)")
	root.PersistentFlags().StringVar(&opts.store, "store", "", "completion store: file|sqlite|memory")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: text|json")

	root.AddCommand(newRecordCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newPresetsCmd(opts))
	root.AddCommand(newTimerCmd(opts))
	root.AddCommand(newTUICmd(opts))
	return root
}

func loadConfig(opts *rootOptions) (config.Config, error) {
	return config.New(config.Options{
		DataDir:   opts.dataDir,
		Store:     opts.store,
		LogLevel:  opts.logLevel,
		LogFormat: opts.logFormat,
	})
}

// loadApp wires the application with logs going to w.
func loadApp(opts *rootOptions, w io.Writer) (*bootstrap.App, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(w, cfg.LogLevel, cfg.LogFormat))
}

func newRecordCmd(opts *rootOptions) *cobra.Command {
	var minutes int
	cmd := &cobra.Command{
		Use:   "record --minutes <n>",
		Short: "Record a finished study session for today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.CompletionCLI.Record(cmd.Context(), minutes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %d min on %s (%d total)\n", out.StudyMinutes, out.Date, out.Count)
			return nil
		},
	}
	cmd.Flags().IntVar(&minutes, "minutes", 0, "study minutes")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded study sessions, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			items, err := app.CompletionCLI.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, item := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d min\n", item.Date, item.StudyMinutes)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "show only the most recent n sessions (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var days int
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show study minutes per day for a trailing window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.CompletionCLI.Stats(cmd.Context(), days)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, d := range out.Days {
				_, _ = fmt.Fprintf(tw, "%s\t%d min\t%s\n", d.Date, d.TotalMinutes, strings.Repeat("#", (d.TotalMinutes+4)/5))
			}
			_ = tw.Flush()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total %d min in %d sessions, %d active days, streak %d\n",
				out.TotalMinutes, out.Sessions, out.ActiveDays, out.Streak)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 14, "window size in days")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newPresetsCmd(opts *rootOptions) *cobra.Command {
	presets := &cobra.Command{Use: "presets", Short: "Timer presets"}
	presets.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.PresetCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range out.Presets {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d/%d\n", p.Label, p.StudyMinutes, p.BreakMinutes)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "(source: %s)\n", out.Source)
			return nil
		},
	})
	return presets
}

func newTimerCmd(opts *rootOptions) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Run the pomodoro timer headless"}

	var preset string
	var cycles int
	run := &cobra.Command{
		Use:   "run --preset <label>",
		Short: "Run study/break cycles and record each finished study interval",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			out := cmd.OutOrStdout()
			result, err := app.TimerCLI.Run(cmd.Context(), preset, cycles, func(tick timerdto.TickOutput) {
				_, _ = fmt.Fprintf(out, "\r%-8s %d/%d  %s ", tick.Phase, tick.Cycle, tick.Cycles, formatRemaining(tick.Remaining))
			})
			_, _ = fmt.Fprintln(out)
			if err != nil && cmd.Context().Err() == nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "%s: %d cycles, recorded %d min in %d sessions\n",
				result.Label, result.CompletedCycles, result.RecordedMinutes, result.Recorded)
			return nil
		},
	}
	run.Flags().StringVar(&preset, "preset", "Light", "preset label")
	run.Flags().IntVar(&cycles, "cycles", 1, "study/break cycles")
	timer.AddCommand(run)
	return timer
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	var route string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := router.Resolve(route); err != nil {
				return err
			}
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			// The terminal belongs to the renderer, so logs go to a file.
			logFile, err := logging.OpenFile(cfg.LogPath)
			if err != nil {
				return err
			}
			defer logFile.Close()
			logger := logging.New(logFile, cfg.LogLevel, cfg.LogFormat)

			app, err := bootstrap.New(cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()
			logger.Info("tui started", logging.Route(route), logging.Store(cfg.Store))
			return bootstrap.RunTUI(cmd.Context(), app, route)
		},
	}
	cmd.Flags().StringVar(&route, "route", router.PathRoot, "initial view path: / | /stats | /home")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatRemaining(d time.Duration) string {
	secs := int((max(d, 0) + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
