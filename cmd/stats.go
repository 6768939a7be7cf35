package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srikar0313/TechPulse/internal/bookmarks"
	"github.com/srikar0313/TechPulse/internal/config"
	"github.com/srikar0313/TechPulse/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show local store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.StorePath()
		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()

		count, err := db.Count()
		if err != nil {
			return fmt.Errorf("counting articles: %w", err)
		}
		size, err := db.Size(dbPath)
		if err != nil {
			return fmt.Errorf("reading size: %w", err)
		}
		marks := bookmarks.Load(db)

		fmt.Printf("Store: %s\n", dbPath)
		fmt.Printf("Cached batch: %d article(s)\n", count)
		fmt.Printf("Bookmarks: %d\n", len(marks.Set()))
		if last := db.LastRefresh(); !last.IsZero() {
			fmt.Printf("Last refresh: %s\n", last.Format("2006-01-02 15:04:05"))
		}
		fmt.Printf("Size: %s\n", formatBytes(size))
		return nil
	},
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
