package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/lessonlint/internal/lesson"
	"github.com/abhisek/lessonlint/internal/mathcheck"
	"github.com/abhisek/lessonlint/internal/report"
	"github.com/abhisek/lessonlint/internal/store"
	"github.com/abhisek/lessonlint/internal/validate"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint <file>...",
	Short: "Check lesson documents and report every violation",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		save, _ := cmd.Flags().GetBool("save")

		var reports *store.Store
		if save {
			s, err := openStore(cmd)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer s.Close()
			reports = s
		}

		issues := 0
		for _, path := range args {
			rep, err := lintFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				issues++
				continue
			}

			if asJSON {
				data, err := rep.JSON()
				if err != nil {
					return err
				}
				fmt.Println(string(data))
			} else {
				fmt.Print(rep.Render())
			}

			if reports != nil {
				if err := saveReport(cmd.Context(), reports, rep); err != nil {
					fmt.Fprintf(os.Stderr, "warning: save report: %v\n", err)
				}
			}

			issues += rep.IssueCount()
		}

		if issues > 0 {
			return fmt.Errorf("%d issue(s) found", issues)
		}
		return nil
	},
}

// lintFile parses one document and runs every validator plus the math
// consistency check.
func lintFile(path string) (*report.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	l, err := lesson.Parse(data)
	if err != nil {
		return nil, err
	}

	violations := validate.Run(l)
	consistency := mathcheck.CheckLesson(l)
	return report.New(path, l, violations, consistency), nil
}

func saveReport(ctx context.Context, s *store.Store, rep *report.Report) error {
	body, err := rep.JSON()
	if err != nil {
		return err
	}
	return s.Reports().Append(ctx, store.ReportData{
		LessonPath:        rep.LessonPath,
		LessonTitle:       rep.Title,
		Clean:             rep.Clean(),
		ViolationCount:    len(rep.Violations),
		ConsistencyErrors: len(rep.Consistency),
		Body:              string(body),
	})
}

func init() {
	lintCmd.Flags().Bool("json", false, "Emit the report as JSON")
	lintCmd.Flags().Bool("save", false, "Record the report in the catalog")
}
