package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/tabkit/internal/config"
	"github.com/jask/tabkit/internal/database"
	"github.com/jask/tabkit/internal/database/repository"
	"github.com/jask/tabkit/internal/service"
	"github.com/jask/tabkit/internal/tui"
)

// env is everything a command needs once config and storage are up.
type env struct {
	cfg      config.Config
	db       *sql.DB
	log      *slog.Logger
	services tui.Services
	closeLog func() error
}

func (e *env) Close() {
	_ = e.db.Close()
	_ = e.closeLog()
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger, closeLog, err := openLog(cfg.Log)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("open db: %w", err)
	}
	return &env{
		cfg: cfg,
		db:  db,
		log: logger,
		services: tui.Services{
			Selections:  &service.SelectionService{Selections: repository.NewSelectionRepo(db)},
			Maintenance: &service.MaintenanceService{DB: db},
		},
		closeLog: closeLog,
	}, nil
}

// openLog writes to the configured file since the program owns the terminal.
// An empty file discards logs.
func openLog(lc config.LogConfig) (*slog.Logger, func() error, error) {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = io.Discard
	closer := func() error { return nil }
	if lc.File != "" {
		if err := os.MkdirAll(filepath.Dir(lc.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
		}
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		w, closer = f, f.Close
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}

var runProgram = func(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func runDemo(cmd *cobra.Command, _ []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := tui.New(ctx, e.cfg, e.services, e.log)
	if err != nil {
		return err
	}
	e.log.Info("demo starting", "db", e.cfg.Database.Path)
	return runProgram(app)
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "tabkit",
		Short:         "Accessible tabs and alert dialogs for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDemo,
	}
	root.AddCommand(
		&cobra.Command{Use: "demo", Short: "Run the interactive demo", RunE: runDemo},
		SelectionsCmd(),
		ConfigCmd(),
	)
	return root
}
