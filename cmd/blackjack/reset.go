package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/store"
)

type ResetCmd struct {
	Config string `kong:"default='blackjack.hcl',help='Path to HCL config file'"`
	Save   string `kong:"default='',help='Save file location (overrides config)'"`
	Force  bool   `kong:"help='Reset without confirmation'"`
}

func (c *ResetCmd) Run() error {
	if !c.Force {
		return fmt.Errorf("this discards your balance and wallpapers; re-run with --force to confirm")
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	savePath := cfg.SaveFile
	if c.Save != "" {
		savePath = c.Save
	}

	gateway := store.NewFileStore(savePath, quartz.NewReal(), log.New(io.Discard))
	snap := store.DefaultSnapshot()
	snap.Balance = cfg.Rules.StartingStake
	if err := gateway.Save(snap); err != nil {
		return fmt.Errorf("failed to reset save file: %w", err)
	}

	fmt.Printf("Save file reset, balance $%d\n", snap.Balance)
	return nil
}
