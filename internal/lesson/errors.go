package lesson

import "fmt"

// MalformedError indicates a structural parse failure. Section names the
// missing or misordered document section. Terminal for the document;
// parsing never yields a partial Lesson.
type MalformedError struct {
	Section string
	Err     error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed lesson: section %q: %v", e.Section, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }
