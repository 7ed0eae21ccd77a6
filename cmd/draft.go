package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/lessonlint/internal/draft"
	"github.com/abhisek/lessonlint/internal/llm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Generate lesson content drafts with an LLM",
}

var draftHintsCmd = &cobra.Command{
	Use:   "hints",
	Short: "Draft a four-level hint ladder for a problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		problem, _ := cmd.Flags().GetString("problem")
		answer, _ := cmd.Flags().GetString("answer")
		if problem == "" || answer == "" {
			return fmt.Errorf("--problem and --answer are required")
		}

		d, cleanup, err := newDrafter(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ladder, err := d.DraftHintLadder(cmd.Context(), problem, answer)
		if err != nil {
			return err
		}

		return writeYAML(map[string]any{"hint_ladders": []any{ladder}})
	},
}

var draftStrategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Draft a misconception analysis for a wrong answer",
	RunE: func(cmd *cobra.Command, args []string) error {
		problem, _ := cmd.Flags().GetString("problem")
		wrong, _ := cmd.Flags().GetString("wrong")
		if problem == "" || wrong == "" {
			return fmt.Errorf("--problem and --wrong are required")
		}

		d, cleanup, err := newDrafter(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		m, err := d.DraftMisconception(cmd.Context(), problem, wrong)
		if err != nil {
			return err
		}

		return writeYAML(map[string]any{"misconceptions": []any{m}})
	},
}

// newDrafter opens the catalog (for event logging) and builds the
// provider from the environment.
func newDrafter(cmd *cobra.Command) (*draft.Drafter, func(), error) {
	s, err := openStore(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), s.LLMEvents())
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	return draft.New(provider, draft.DefaultConfig()), func() { s.Close() }, nil
}

// writeYAML prints a draft as a YAML snippet ready to paste into a
// lesson document.
func writeYAML(v any) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(v)
}

func init() {
	draftHintsCmd.Flags().String("problem", "", "The practice problem")
	draftHintsCmd.Flags().String("answer", "", "The final answer (used for the leak check, never printed in hints)")
	draftStrategyCmd.Flags().String("problem", "", "The practice problem")
	draftStrategyCmd.Flags().String("wrong", "", "The wrong answer a student gave")

	draftCmd.AddCommand(draftHintsCmd)
	draftCmd.AddCommand(draftStrategyCmd)
}
