package aggregate

import (
	"github.com/google/uuid"
	"github.com/jonathan/trebuchet/internal/calibration"
	"github.com/jonathan/trebuchet/internal/types"
)

// Report converts the accumulated results into a serialisable run report.
// source names where the lines were read from.
func (a *Aggregator) Report(source string) *types.Report {
	report := &types.Report{
		RunID:              uuid.New(),
		Source:             source,
		LinesProcessed:     a.summary.Lines,
		LinesWithoutDigits: a.summary.WithoutDigits,
		Total:              a.summary.Total,
		Lines:              make([]types.LineResult, 0, len(a.results)),
	}

	for i, res := range a.results {
		lr := types.LineResult{
			Number: i + 1,
			Text:   a.lines[i],
			Found:  res.Found,
		}
		if v, ok := res.Value(); ok {
			lr.Value = &v
			lr.First = toOccurrence(res.First)
			lr.Last = toOccurrence(res.Last)
		}
		report.Lines = append(report.Lines, lr)
	}

	return report
}

func toOccurrence(o calibration.Occurrence) *types.Occurrence {
	return &types.Occurrence{Digit: o.Digit, Offset: o.Offset}
}
