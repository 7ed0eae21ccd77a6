package lesson

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// sectionOrder is the canonical top-level section order for a lesson
// document. subject is optional; everything else is required.
var sectionOrder = []string{
	"title",
	"format",
	"subject",
	"rules",
	"misconceptions",
	"hint_ladders",
	"rubric",
	"practice",
}

// optionalSections holds the sections a document may omit.
var optionalSections = map[string]bool{
	"subject": true,
}

// Parse reads a YAML lesson document and returns the Lesson, or a
// *MalformedError naming the missing, misordered, or unknown section.
// Pure transform: no side effects, never a partial Lesson.
func Parse(data []byte) (*Lesson, error) {
	return parse(data, true)
}

// ParseLenient parses like Parse but tolerates sections out of canonical
// order. Unknown, duplicate, and missing sections are still errors.
// Used by reformatting, which exists to fix the order.
func ParseLenient(data []byte) (*Lesson, error) {
	return parse(data, false)
}

func parse(data []byte, strictOrder bool) (*Lesson, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedError{Section: "document", Err: fmt.Errorf("invalid YAML: %w", err)}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &MalformedError{Section: "document", Err: fmt.Errorf("empty document")}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &MalformedError{Section: "document", Err: fmt.Errorf("top level must be a mapping")}
	}

	if err := checkSections(root, strictOrder); err != nil {
		return nil, err
	}

	if err := validateShape(root); err != nil {
		return nil, err
	}

	var lsn Lesson
	if err := root.Decode(&lsn); err != nil {
		return nil, &MalformedError{Section: "document", Err: fmt.Errorf("decode: %w", err)}
	}
	return &lsn, nil
}

// checkSections verifies that every required section is present and,
// when strictOrder is set, that sections appear in canonical order.
func checkSections(root *yaml.Node, strictOrder bool) error {
	pos := make(map[string]int, len(sectionOrder))
	for i, name := range sectionOrder {
		pos[name] = i
	}

	seen := make(map[string]bool, len(sectionOrder))
	prev := -1
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		idx, known := pos[key]
		if !known {
			return &MalformedError{Section: key, Err: fmt.Errorf("unknown section (line %d)", root.Content[i].Line)}
		}
		if seen[key] {
			return &MalformedError{Section: key, Err: fmt.Errorf("duplicate section (line %d)", root.Content[i].Line)}
		}
		seen[key] = true

		if strictOrder && idx < prev {
			return &MalformedError{Section: key, Err: fmt.Errorf("section out of order (line %d): expected before %q", root.Content[i].Line, sectionOrder[prev])}
		}
		if idx > prev {
			prev = idx
		}
	}

	for _, name := range sectionOrder {
		if !seen[name] && !optionalSections[name] {
			return &MalformedError{Section: name, Err: fmt.Errorf("required section is missing")}
		}
	}
	return nil
}

// validateShape checks the decoded document against the JSON Schema.
// Shape failures (wrong types, unknown fields) are parse errors; content
// invariants are left to the schema validator.
func validateShape(root *yaml.Node) error {
	var generic any
	if err := root.Decode(&generic); err != nil {
		return &MalformedError{Section: "document", Err: fmt.Errorf("decode: %w", err)}
	}

	// Round-trip through JSON so the schema library sees json types.
	raw, err := json.Marshal(generic)
	if err != nil {
		return &MalformedError{Section: "document", Err: fmt.Errorf("normalize: %w", err)}
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &MalformedError{Section: "document", Err: fmt.Errorf("normalize: %w", err)}
	}

	schema, err := compiledDocumentSchema()
	if err != nil {
		return fmt.Errorf("compile document schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return &MalformedError{Section: "document", Err: fmt.Errorf("schema: %w", err)}
	}
	return nil
}
