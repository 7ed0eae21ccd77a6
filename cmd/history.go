package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/lessonlint/internal/llm"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent lint reports and draft requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		reports, err := s.Reports().Recent(ctx, limit)
		if err != nil {
			return err
		}
		events, err := s.LLMEvents().RecentLLMEvents(ctx, limit)
		if err != nil {
			return err
		}

		if len(reports) == 0 && len(events) == 0 {
			fmt.Println("No history yet.")
			return nil
		}

		// Interleave the two streams by the shared sequence number.
		type entry struct {
			seq  int64
			line string
		}
		var entries []entry

		for _, r := range reports {
			verdict := "clean"
			if !r.Clean {
				verdict = fmt.Sprintf("%d issue(s)", r.ViolationCount+r.ConsistencyErrors)
			}
			entries = append(entries, entry{r.Sequence, fmt.Sprintf(
				"%s  lint   %-40s  %s",
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(r.LessonPath, 40), verdict)})
		}

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			costNote := ""
			if c := llm.LookupCost(e.Model); c != nil {
				costNote = fmt.Sprintf("  %s", formatCost(c.Cost(e.InputTokens, e.OutputTokens)))
			}
			entries = append(entries, entry{e.Sequence, fmt.Sprintf(
				"%s  draft  %-40s  %s %d in / %d out / %dms%s",
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(e.Purpose+" ("+e.Model+")", 40),
				ok, e.InputTokens, e.OutputTokens, e.LatencyMs, costNote)})
		}

		sort.Slice(entries, func(i, j int) bool { return entries[i].seq > entries[j].seq })
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		fmt.Println(strings.Repeat("─", 100))
		for _, e := range entries {
			fmt.Println(e.line)
		}
		return nil
	},
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")
}
