package lesson

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the JSON Schema every lesson document must satisfy
// before decoding. It pins section shapes only; cardinality and content
// invariants (ladder length, rubric ordering, leak checks) are the
// schema validator's job so they surface as violations, not parse errors.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":   map[string]any{"type": "string"},
		"format":  map[string]any{"type": "string"},
		"subject": map[string]any{"type": "string"},
		"rules": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":    map[string]any{"type": "string"},
					"kind":    map[string]any{"type": "string", "enum": []any{"derivative", "product"}},
					"formula": map[string]any{"type": "string"},
					"example": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"input":    map[string]any{"type": "string"},
							"expected": map[string]any{"type": "string"},
						},
						"additionalProperties": false,
					},
				},
				"required":             []any{"name", "kind"},
				"additionalProperties": false,
			},
		},
		"misconceptions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"wrong_answer": map[string]any{"type": "string"},
					"problem":      map[string]any{"type": "string"},
					"root_cause":   map[string]any{"type": "string"},
					"strategy":     map[string]any{"type": "string"},
				},
				"additionalProperties": false,
			},
		},
		"hint_ladders": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"problem": map[string]any{"type": "string"},
					"answer":  map[string]any{"type": "string"},
					"levels": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"kind": map[string]any{"type": "string"},
								"text": map[string]any{"type": "string"},
							},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"problem", "answer"},
				"additionalProperties": false,
			},
		},
		"rubric": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"tiers": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name":      map[string]any{"type": "string"},
							"credit":    map[string]any{"type": "number"},
							"criterion": map[string]any{"type": "string"},
						},
						"additionalProperties": false,
					},
				},
			},
			"additionalProperties": false,
		},
		"practice": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt": map[string]any{"type": "string"},
				},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"title", "format", "rules", "misconceptions", "hint_ladders", "rubric", "practice"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledDocumentSchema compiles the document schema once and caches it.
func compiledDocumentSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Round-trip through encoding/json to get a clean one.
		raw, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal document schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse document schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://lesson-document.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
