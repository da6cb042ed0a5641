package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/store"
	"github.com/lox/blackjack-cli/internal/tui"
)

type PlayCmd struct {
	Config string `kong:"default='blackjack.hcl',help='Path to HCL config file'"`
	Save   string `kong:"default='',help='Save file location (overrides config)'"`
	Seed   int64  `kong:"default='0',help='RNG seed for deterministic shuffles (0 = time-derived)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	savePath := cfg.SaveFile
	if c.Save != "" {
		savePath = c.Save
	}

	// Log to a file so the TUI owns the terminal
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	logger.Info("Starting blackjack", "save", savePath)

	clock := quartz.NewReal()
	gateway := store.NewFileStore(savePath, clock, logger)

	opts := []game.SessionOption{
		game.WithRules(game.Rules{
			StartingStake: cfg.Rules.StartingStake,
			ChipDenoms:    cfg.Rules.ChipDenoms,
			TopUpDenoms:   cfg.Rules.TopUpDenoms,
		}),
	}
	if c.Seed != 0 {
		opts = append(opts, game.WithSeed(c.Seed))
	}
	session := game.NewSession(gateway, clock, logger, opts...)

	model := tui.New(session, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return model.Err()
}
