package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/srikar0313/TechPulse/internal/ai"
	"github.com/srikar0313/TechPulse/internal/bookmarks"
	"github.com/srikar0313/TechPulse/internal/config"
	"github.com/srikar0313/TechPulse/internal/store"
	"github.com/srikar0313/TechPulse/internal/tui"
)

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	gen, err := ai.New(cfg)
	if err != nil {
		return err
	}

	db, err := store.Open(config.StorePath())
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	marks := bookmarks.Load(db)

	// Last persisted batch keeps the dashboard populated until the
	// first refresh lands.
	articles, err := db.Articles()
	if err != nil {
		log.Printf("[warn] loading cached batch: %v", err)
	}

	theme := cfg.Theme
	if saved, err := db.Meta("theme"); err == nil && saved != "" {
		theme = saved
	}

	return tui.Run(tui.RunOpts{
		Cfg:         cfg,
		DB:          db,
		Generator:   gen,
		Bookmarks:   marks,
		Articles:    articles,
		LastUpdated: db.LastRefresh(),
		Theme:       theme,
	})
}
