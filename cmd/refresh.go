package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/srikar0313/TechPulse/internal/ai"
	"github.com/srikar0313/TechPulse/internal/config"
	"github.com/srikar0313/TechPulse/internal/news"
	"github.com/srikar0313/TechPulse/internal/store"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Generate a fresh batch without launching the dashboard",
	Long:  "Fetch one AI-generated article batch, normalize it and persist it, so the next dashboard launch starts populated.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		gen, err := ai.New(cfg)
		if err != nil {
			return err
		}

		raws, err := gen.Generate(cmd.Context())
		if err != nil {
			return fmt.Errorf("generating articles: %w", err)
		}
		articles, err := news.Normalize(raws)
		if err != nil {
			return fmt.Errorf("normalizing batch: %w", err)
		}

		db, err := store.Open(config.StorePath())
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()

		if err := db.ReplaceArticles(articles); err != nil {
			return fmt.Errorf("persisting batch: %w", err)
		}
		if err := db.SetLastRefresh(time.Now()); err != nil {
			return fmt.Errorf("recording refresh time: %w", err)
		}

		fmt.Printf("Generated %d article(s).\n", len(articles))
		return nil
	},
}
