package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/studytimer/internal/app"
	"github.com/alexanderramin/studytimer/internal/cli"
	"github.com/alexanderramin/studytimer/internal/db"
	"github.com/alexanderramin/studytimer/internal/repository"
	"github.com/alexanderramin/studytimer/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	a := &cli.App{
		Clock: app.SystemClock{},
		Open:  open,
	}

	// Detect interactive terminal for the timer UI.
	a.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	if err := cli.NewRootCmd(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// open wires logging, the in-memory store and the services once the
// configuration has been loaded.
func open(a *cli.App) (func() error, error) {
	logOut := io.Discard
	var logFile *os.File
	if path := a.Config.Log.File; path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		logFile, logOut = f, f
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: a.Config.LogLevel()}))
	a.Logger = logger

	database, err := db.OpenDB()
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Wire repositories and unit of work
	subjectRepo := repository.NewSQLiteSubjectRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewSlogUseCaseObserver(logger)
	a.Subjects = service.NewSubjectService(subjectRepo, uow, observer)
	a.Reviews = service.NewReviewService(subjectRepo, observer)

	logger.Info("studytimer_started",
		"study_min", a.Config.Timer.StudyMin,
		"break_min", a.Config.Timer.BreakMin,
		"long_break_min", a.Config.Timer.LongBreakMin,
		"review_poll", a.Config.ReviewPoll().String())

	return func() error {
		err := database.Close()
		if logFile != nil {
			if cerr := logFile.Close(); err == nil {
				err = cerr
			}
		}
		return err
	}, nil
}
