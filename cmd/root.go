// Package cmd provides the CLI surface for pomo.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/pomo/internal/notify"
	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
	"github.com/sadopc/pomo/internal/tui"
	"github.com/spf13/cobra"
)

var (
	focusMin     int
	breakMin     int
	cycleCount   int
	longBreakMin int
	projectName  string
	dbPath       string
)

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "A terminal pomodoro timer with per-project time tracking",
	Long: `Pomo runs focus/break/long-break cycles in a fullscreen terminal UI
and accrues elapsed time against a named project. Duration flags override
the persisted config for this run and are saved back.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command. Unrecoverable errors (storage init,
// terminal) exit non-zero; a clean quit exits 0.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&focusMin, "focus", "f", 0, "Focus time in minutes")
	rootCmd.Flags().IntVarP(&breakMin, "break-time", "b", 0, "Break time in minutes")
	rootCmd.Flags().IntVarP(&cycleCount, "cycles", "c", 0, "Number of cycles before long break")
	rootCmd.Flags().IntVarP(&longBreakMin, "long-break", "l", 0, "Long break time in minutes")
	rootCmd.Flags().StringVarP(&projectName, "project", "p", store.DefaultProject, "Project to accrue time against")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "Path to the database file (default: ~/.config/pomo/pomo.db)")
}

func run(cmd *cobra.Command, args []string) error {
	var err error
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve db path: %w", err)
		}
	}

	s, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	cfg, err := s.Config()
	if err != nil {
		return err
	}

	cfg, changed, err := applyOverrides(cmd, cfg)
	if err != nil {
		return err
	}
	if changed {
		if err := s.SaveConfig(cfg); err != nil {
			return err
		}
	}

	project, err := s.GetOrCreateProject(projectName)
	if err != nil {
		return err
	}

	notifier := notify.New(soundPath())
	var sess *session.Session
	sess = session.New(cfg, project, func() {
		notifier.PhaseComplete(sess.Phase.String())
	})

	// Flush the working copy back to the ledger on every exit path, not
	// just a clean quit.
	defer func() {
		if err := s.SaveProject(project); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: save project: %v\n", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(tui.NewApp(s, sess), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil // interrupted; the deferred flush still runs
		}
		return fmt.Errorf("run timer: %w", err)
	}
	return nil
}

// applyOverrides merges duration/cycle flags into the persisted config.
// The returned bool reports whether anything was supplied and should be
// saved back.
func applyOverrides(cmd *cobra.Command, cfg store.Config) (store.Config, bool, error) {
	changed := false
	set := func(flag string, dst *int, val int) error {
		if !cmd.Flags().Changed(flag) {
			return nil
		}
		if val <= 0 {
			return fmt.Errorf("--%s must be a positive integer, got %d", flag, val)
		}
		*dst = val
		changed = true
		return nil
	}

	if err := set("focus", &cfg.Focus, focusMin); err != nil {
		return cfg, false, err
	}
	if err := set("break-time", &cfg.Break, breakMin); err != nil {
		return cfg, false, err
	}
	if err := set("long-break", &cfg.LongBreak, longBreakMin); err != nil {
		return cfg, false, err
	}
	if err := set("cycles", &cfg.Cycles, cycleCount); err != nil {
		return cfg, false, err
	}
	return cfg, changed, nil
}

// soundPath prefers the cue next to the database, falling back to the
// working directory.
func soundPath() string {
	if cfgDir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(cfgDir, "pomo", notify.SoundFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return notify.SoundFile
}
