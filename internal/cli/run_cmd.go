package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/alexanderramin/studytimer/internal/app"
	"github.com/alexanderramin/studytimer/internal/cli/formatter"
	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/alexanderramin/studytimer/internal/timer"
	"github.com/spf13/cobra"
)

type runOptions struct {
	subjects     []subjectSpec
	studyMin     int
	breakMin     int
	longBreakMin int
	cycles       int
}

func newRunCmd(a *App) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the timer headless, printing progress to stdout",
		Long: "Run the study/break cycle without the UI. The first --subject is\n" +
			"selected and gets a review recorded at the end of every study period.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.Config.Timer
			if cmd.Flags().Changed("study") {
				d.StudyMin = opts.studyMin
			}
			if cmd.Flags().Changed("break") {
				d.BreakMin = opts.breakMin
			}
			if cmd.Flags().Changed("long-break") {
				d.LongBreakMin = opts.longBreakMin
			}
			if err := d.Validate(); err != nil {
				return err
			}
			if opts.cycles < 0 {
				return fmt.Errorf("--cycles must be zero or positive, got %d", opts.cycles)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runHeadless(ctx, a, d, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Var(&subjectsValue{specs: &opts.subjects}, "subject", "Subject as name[:difficulty]; repeatable")
	cmd.Flags().IntVar(&opts.studyMin, "study", 0, "Study period in minutes (1-60)")
	cmd.Flags().IntVar(&opts.breakMin, "break", 0, "Break in minutes (1-30)")
	cmd.Flags().IntVar(&opts.longBreakMin, "long-break", 0, "Long break in minutes (5-60)")
	cmd.Flags().IntVar(&opts.cycles, "cycles", 0, "Stop after this many study periods (0 runs until interrupted)")

	return cmd
}

func runHeadless(ctx context.Context, a *App, d domain.Durations, opts runOptions, out io.Writer) error {
	ctrl, err := a.newController(ctx, d)
	if err != nil {
		return err
	}

	for i, spec := range opts.subjects {
		s, err := ctrl.AddSubject(ctx, spec.Name, spec.Difficulty)
		if err != nil {
			return fmt.Errorf("adding subject %q: %w", spec.Name, err)
		}
		if i == 0 && s != nil {
			if err := ctrl.SelectSubject(ctx, s.ID); err != nil {
				return err
			}
		}
	}
	ctrl.Start()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runner := app.NewRunner(ctrl, a.Config.ReviewPoll(), append([]app.RunnerOption{app.WithRunnerLogger(a.logger())}, a.RunnerOptions...)...)
	p := &progressPrinter{out: out}
	runner.OnTransition = func(tr timer.Transition) {
		p.transition(tr, ctrl.Snapshot().CurrentSubjectName())
		if opts.cycles > 0 && tr.CompletedStudy() && tr.Cycles >= opts.cycles {
			cancel()
		}
	}
	runner.OnChange = p.change

	fmt.Fprintf(out, "%s %s\n", formatter.Bold("Started."), formatter.FormatDurations(d))
	err = runner.Run(ctx)
	fmt.Fprintf(out, "Stopped after %d completed study cycle(s).\n", ctrl.Snapshot().Cycles)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// progressPrinter writes a clock line once a minute and announces review
// notifications as they appear.
type progressPrinter struct {
	out      io.Writer
	lastMode domain.Mode
	notified map[string]bool
}

func (p *progressPrinter) transition(tr timer.Transition, subject string) {
	fmt.Fprintln(p.out, formatter.FormatTransition(tr, subject))
}

func (p *progressPrinter) change(s app.Snapshot) {
	if s.Active && (s.TimeLeft%60 == 0 || s.Mode != p.lastMode) {
		fmt.Fprintf(p.out, "[%s] %s\n", s.Mode.Label(), s.Clock)
	}
	p.lastMode = s.Mode

	current := make(map[string]bool, len(s.Notifications))
	var fresh []string
	for _, n := range s.Notifications {
		current[n.SubjectID] = true
		if !p.notified[n.SubjectID] {
			fresh = append(fresh, formatter.NeedsReview(n.Name))
		}
	}
	p.notified = current
	if len(fresh) > 0 {
		fmt.Fprintln(p.out, strings.Join(fresh, "\n"))
	}
}
