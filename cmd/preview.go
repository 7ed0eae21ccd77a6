package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/lessonlint/internal/lesson"
	"github.com/abhisek/lessonlint/internal/mathcheck"
	"github.com/abhisek/lessonlint/internal/preview"
	"github.com/abhisek/lessonlint/internal/report"
	"github.com/abhisek/lessonlint/internal/validate"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Browse a lesson interactively with lint status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		l, err := lesson.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		rep := report.New(path, l, validate.Run(l), mathcheck.CheckLesson(l))
		return preview.Run(l, rep)
	},
}
