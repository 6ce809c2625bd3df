package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "focusflow",
	Short: "Pomodoro study hub with an AI mentor",
	Long:  "FocusFlow is a terminal study hub: Pomodoro timer, AI-generated roadmaps, lessons, and a mentor chat per subject.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FOCUSFLOW_DB env var)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then FOCUSFLOW_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
