// Package draft generates hint ladders and misconception analyses with
// a language model, then checks the output against the same invariants
// the linter enforces.
package draft

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/lessonlint/internal/lesson"
	"github.com/abhisek/lessonlint/internal/llm"
	"github.com/abhisek/lessonlint/internal/validate"
)

// Config bounds a single draft request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard drafting limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

// ErrAnswerLeak indicates a generated hint revealed the final answer.
// The draft is rejected rather than repaired.
type ErrAnswerLeak struct {
	Level int
	Hint  string
}

func (e *ErrAnswerLeak) Error() string {
	return fmt.Sprintf("draft rejected: hint level %d reveals the answer", e.Level+1)
}

// Drafter produces lesson content drafts via an LLM provider.
type Drafter struct {
	provider llm.Provider
	config   Config
}

// New creates a Drafter with the given provider and config.
func New(provider llm.Provider, cfg Config) *Drafter {
	return &Drafter{provider: provider, config: cfg}
}

// hintOutput is the raw LLM response before validation.
type hintOutput struct {
	Hints []string `json:"hints"`
}

// DraftHintLadder generates a four-level hint ladder for a problem.
// The result is checked for answer leakage before it is returned.
func (d *Drafter) DraftHintLadder(ctx context.Context, problem, answer string) (*lesson.HintLadder, error) {
	ctx = llm.WithPurpose(ctx, "draft-hints")

	req := llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildHintMessage(problem, answer)},
		},
		Schema:      HintLadderSchema,
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	}

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("hint ladder draft failed: %w", err)
	}

	var raw hintOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse hint ladder draft: %w", err)
	}
	if len(raw.Hints) != len(lesson.LadderKinds()) {
		return nil, fmt.Errorf("hint ladder draft has %d hints, want %d", len(raw.Hints), len(lesson.LadderKinds()))
	}

	ladder := &lesson.HintLadder{
		Problem: problem,
		Answer:  answer,
	}
	for i, kind := range lesson.LadderKinds() {
		if validate.LeaksAnswer(raw.Hints[i], answer) {
			return nil, &ErrAnswerLeak{Level: i, Hint: raw.Hints[i]}
		}
		ladder.Levels = append(ladder.Levels, lesson.HintLevel{
			Kind: kind,
			Text: raw.Hints[i],
		})
	}

	return ladder, nil
}

// strategyOutput is the raw LLM response before validation.
type strategyOutput struct {
	RootCause string `json:"root_cause"`
	Strategy  string `json:"strategy"`
}

// DraftMisconception generates a root cause and teaching strategy for a
// wrong answer to a problem.
func (d *Drafter) DraftMisconception(ctx context.Context, problem, wrongAnswer string) (*lesson.Misconception, error) {
	ctx = llm.WithPurpose(ctx, "draft-strategy")

	req := llm.Request{
		System: strategySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStrategyMessage(problem, wrongAnswer)},
		},
		Schema:      StrategySchema,
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	}

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("misconception draft failed: %w", err)
	}

	var raw strategyOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse misconception draft: %w", err)
	}
	if raw.RootCause == "" || raw.Strategy == "" {
		return nil, fmt.Errorf("misconception draft missing root cause or strategy")
	}

	return &lesson.Misconception{
		WrongAnswer: wrongAnswer,
		Problem:     problem,
		RootCause:   raw.RootCause,
		Strategy:    raw.Strategy,
	}, nil
}
