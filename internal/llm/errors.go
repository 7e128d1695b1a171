package llm

import "fmt"

// ExtractionError reports a malformed backend response or a schema
// violation in the parsed record. It always triggers the fallback path and
// is never surfaced to the end user directly.
type ExtractionError struct {
	Field  string
	Reason string
}

func (e *ExtractionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("extraction failed: %s", e.Reason)
	}
	return fmt.Sprintf("extraction failed: field %q %s", e.Field, e.Reason)
}

func newExtractionError(reason string) error {
	return &ExtractionError{Reason: reason}
}

func newFieldError(field, reason string) error {
	return &ExtractionError{Field: field, Reason: reason}
}
