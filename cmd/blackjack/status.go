package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/shop"
	"github.com/lox/blackjack-cli/internal/store"
)

type StatusCmd struct {
	Config string `kong:"default='blackjack.hcl',help='Path to HCL config file'"`
	Save   string `kong:"default='',help='Save file location (overrides config)'"`
}

func (c *StatusCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	savePath := cfg.SaveFile
	if c.Save != "" {
		savePath = c.Save
	}

	gateway := store.NewFileStore(savePath, quartz.NewReal(), log.New(io.Discard))
	snap := gateway.Load()

	names := make([]string, 0, len(snap.OwnedWallpapers))
	for _, id := range snap.OwnedWallpapers {
		if item, ok := shop.ItemByID(id); ok {
			names = append(names, item.Name)
		} else {
			names = append(names, id)
		}
	}

	fmt.Printf("Balance:    $%d\n", snap.Balance)
	fmt.Printf("Wallpapers: %s\n", strings.Join(names, ", "))
	fmt.Printf("Active:     %s\n", snap.CurrentWallpaper)
	if !snap.SavedAt.IsZero() {
		fmt.Printf("Saved:      %s\n", snap.SavedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
