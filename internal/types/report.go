// Package types provides type definitions for structured data used throughout the calibration tool.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Occurrence locates a digit token within a line
type Occurrence struct {
	Digit  int `json:"digit" validate:"min=1,max=9"`
	Offset int `json:"offset" validate:"min=0"`
}

// LineResult is the calibration outcome of a single input line
type LineResult struct {
	Number int         `json:"number" validate:"min=1"` // 1-based line number
	Text   string      `json:"text"`
	Found  bool        `json:"found"`
	Value  *int        `json:"value,omitempty" validate:"omitempty,min=11,max=99"`
	First  *Occurrence `json:"first,omitempty"`
	Last   *Occurrence `json:"last,omitempty"`
}

// Report is the summary of a calibration run
type Report struct {
	RunID              uuid.UUID    `json:"run_id"`
	Source             string       `json:"source"`
	LinesProcessed     int          `json:"lines_processed" validate:"min=0"`
	LinesWithoutDigits int          `json:"lines_without_digits" validate:"min=0,ltefield=LinesProcessed"`
	Total              int          `json:"total" validate:"min=0"`
	Lines              []LineResult `json:"lines,omitempty" validate:"dive"`
}

// Validate validates the Report using the validator.
func (r *Report) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
