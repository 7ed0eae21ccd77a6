package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/lessonlint/internal/lesson"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>...",
	Short: "Rewrite lesson documents in canonical section order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		write, _ := cmd.Flags().GetBool("write")

		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			l, err := lesson.ParseLenient(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			out, err := lesson.Render(l)
			if err != nil {
				return fmt.Errorf("%s: render: %w", path, err)
			}

			if write {
				if err := os.WriteFile(path, out, 0o644); err != nil {
					return err
				}
				fmt.Println(path)
			} else {
				os.Stdout.Write(out)
			}
		}
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "Write the result back instead of printing it")
}
