// Package aggregate folds per-line calibration results into a run summary.
package aggregate

import "fmt"

// SourceError represents an error opening or reading the calibration document
type SourceError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source error: %s %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("source error: %s %s", e.Message, e.Path)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}
