package cmd

import (
	"github.com/abhisek/lessonlint/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "lessonlint",
	Short:        "Lint and preview structured lesson documents",
	Long:         "Lessonlint checks lesson YAML documents for structural problems, hint ladder defects, rubric ordering, and worked examples whose math doesn't add up.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to catalog database file (overrides LESSONLINT_DB env var)")

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the catalog path using --db flag (highest
// priority), then LESSONLINT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the catalog database for a command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
