package draft

import "github.com/abhisek/lessonlint/internal/llm"

// HintLadderSchema defines the JSON schema for hint ladder drafts.
var HintLadderSchema = &llm.Schema{
	Name:        "hint-ladder-draft",
	Description: "Four escalating hints for one practice problem, never revealing the answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hints": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 hints, ordered strategic, conceptual, procedural, specific. None may state the final answer.",
			},
		},
		"required":             []any{"hints"},
		"additionalProperties": false,
	},
}

// StrategySchema defines the JSON schema for misconception analysis drafts.
var StrategySchema = &llm.Schema{
	Name:        "misconception-draft",
	Description: "Root cause analysis and teaching strategy for a wrong answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"root_cause": map[string]any{
				"type":        "string",
				"description": "The conceptual error that produced the wrong answer, one or two sentences",
			},
			"strategy": map[string]any{
				"type":        "string",
				"description": "A concrete teaching strategy to address the root cause, one or two sentences",
			},
		},
		"required":             []any{"root_cause", "strategy"},
		"additionalProperties": false,
	},
}
