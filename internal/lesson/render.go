package lesson

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Render serializes a Lesson back to canonical YAML: sections in
// canonical order, two-space indent, optional sections omitted when
// empty. Parse(Render(l)) round-trips.
func Render(l *Lesson) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("encode lesson: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}
