// Package parsererror defines the typed errors returned at the file-handling
// boundary of the tool. The ingestion pipeline itself reports problems as data
// inside its outcome; these types cover the surrounding operations (export
// writing, batch conversion) that do return errors.
package parsererror

import "fmt"

// ParseError represents a failure to interpret a specific field value.
type ParseError struct {
	Format string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Format, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input file rejected before parsing.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
