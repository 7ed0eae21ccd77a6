package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/lessonlint/internal/lesson"
	"github.com/abhisek/lessonlint/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Add lesson documents to the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer s.Close()

		repo := s.Lessons()
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			l, err := lesson.Parse(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			err = repo.Import(cmd.Context(), &store.LessonRecord{
				Path:     path,
				Title:    l.Title,
				Subject:  l.Subject,
				Format:   l.Format,
				Document: data,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Printf("imported %s (%s)\n", path, l.Title)
		}
		return nil
	},
}
