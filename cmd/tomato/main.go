package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/tomato/internal/cli"
	"github.com/alexanderramin/tomato/internal/config"
	"github.com/alexanderramin/tomato/internal/db"
	"github.com/alexanderramin/tomato/internal/repository"
	"github.com/alexanderramin/tomato/internal/service"
	"github.com/alexanderramin/tomato/internal/timer"
	"github.com/alexanderramin/tomato/internal/tone"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// --db and --log-level must be known before the database is opened.
	// Cobra parses the same flags again and reports any errors.
	flags := pflag.NewFlagSet("tomato", pflag.ContinueOnError)
	flags.ParseErrorsAllowlist.UnknownFlags = true
	flags.SetOutput(io.Discard)
	cfg.BindFlags(flags)
	_ = flags.Parse(os.Args[1:])

	// Logs go to a file so they never tear the TUI.
	logFile, err := openLogFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	kvRepo := repository.NewSQLiteKVRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	intervalTimer := timer.New(timer.Options{
		Durations: cfg.Durations(),
		Notifier:  tone.NewPlayer(cfg.Player, os.Stderr),
		Store:     timer.NewKVStatsStore(kvRepo),
		Logger:    logger.With("component", "timer"),
	})
	defer intervalTimer.Close()

	observer := service.NewLogUseCaseObserver(logger)
	app := &cli.App{
		Tasks:      service.NewTaskService(taskRepo, uow, observer),
		Checklists: service.NewChecklistService(kvRepo, observer),
		Timer:      intervalTimer,
		Flags:      flags,
	}

	// Detect interactive terminal for confirmation prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger.Debug("starting", "db", cfg.DBPath, "work_seconds", cfg.WorkSeconds, "break_seconds", cfg.BreakSeconds)
	return cli.NewRootCmd(app).Execute()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
