package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/studytimer/internal/app"
	"github.com/alexanderramin/studytimer/internal/config"
	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/alexanderramin/studytimer/internal/service"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("the timer UI needs a terminal; use `studytimer run` for headless mode")

// App holds the services and settings shared by every command.
type App struct {
	Subjects service.SubjectService
	Reviews  service.ReviewService
	Logger   *slog.Logger
	Clock    app.Clock

	// ConfigPath is bound to --config.
	ConfigPath string
	Config     config.Config
	// LoadConfig defaults to config.Load.
	LoadConfig func(path string) (config.Config, error)

	// Open wires storage and services once the configuration is known.
	// It may be nil when Subjects and Reviews are already set.
	Open func(a *App) (closeFn func() error, err error)

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// RunnerOptions are passed to every headless runner.
	RunnerOptions []app.RunnerOption

	closeFn func() error
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func (a *App) clock() app.Clock {
	if a.Clock == nil {
		return app.SystemClock{}
	}
	return a.Clock
}

// newController builds a controller for one session and runs the startup
// review scan.
func (a *App) newController(ctx context.Context, d domain.Durations) (*app.Controller, error) {
	ctrl := app.NewController(a.Subjects, a.Reviews, d,
		app.WithClock(a.clock()),
		app.WithLogger(a.logger()),
	)
	if err := ctrl.Load(ctx); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func (a *App) setup() error {
	load := a.LoadConfig
	if load == nil {
		load = config.Load
	}
	cfg, err := load(a.ConfigPath)
	if err != nil {
		return err
	}
	a.Config = cfg

	if a.Open != nil && a.Subjects == nil {
		closeFn, err := a.Open(a)
		if err != nil {
			return err
		}
		a.closeFn = closeFn
	}
	if a.Subjects == nil || a.Reviews == nil {
		return fmt.Errorf("services are not configured")
	}
	return nil
}

func (a *App) teardown() error {
	if a.closeFn == nil {
		return nil
	}
	err := a.closeFn()
	a.closeFn = nil
	return err
}

// NewRootCmd creates the top-level "studytimer" command. Without a
// subcommand it opens the timer UI.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studytimer",
		Short:         "Pomodoro timer with spaced-repetition review reminders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), a)
		},
	}
	root.PersistentFlags().StringVar(&a.ConfigPath, "config", "", "Path to a YAML config file (default ~/.studytimer/config.yaml)")

	root.AddCommand(
		newTUICmd(a),
		newRunCmd(a),
		newIntervalsCmd(a),
		newConfigCmd(a),
	)

	return root
}

func newTUICmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), a)
		},
	}
}

func newConfigCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.Config.YAML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}
