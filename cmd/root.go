package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srikar0313/TechPulse/internal/update"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "techpulse",
	Short: "AI-generated tech news dashboard",
	Long:  "TechPulse is a terminal news dashboard. Every refresh asks a generative model for a fresh batch of mock tech articles, browsable by category, searchable and bookmarkable.",
	RunE:  runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("techpulse %s (commit: %s, built: %s)\n", version, commit, date)
		if r := update.Check(cmd.Context(), version); r != nil {
			fmt.Printf("A newer version is available: %s\n", r.LatestVersion)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
