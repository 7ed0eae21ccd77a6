package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List lessons in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer s.Close()

		lessons, err := s.Lessons().List(cmd.Context())
		if err != nil {
			return err
		}

		if len(lessons) == 0 {
			fmt.Println("Catalog is empty. Add lessons with: lessonlint import <file>")
			return nil
		}

		fmt.Printf("%-30s  %-12s  %-8s  %-19s  %s\n", "Title", "Subject", "Format", "Imported", "Path")
		fmt.Println(strings.Repeat("─", 100))
		for _, l := range lessons {
			fmt.Printf("%-30s  %-12s  %-8s  %-19s  %s\n",
				truncate(l.Title, 30),
				truncate(l.Subject, 12),
				l.Format,
				l.ImportedAt.Local().Format("2006-01-02 15:04:05"),
				l.Path,
			)
		}
		return nil
	},
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
