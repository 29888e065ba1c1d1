package aggregate

import (
	"context"
	"fmt"

	"github.com/jonathan/trebuchet/internal/calibration"
	"golang.org/x/sync/errgroup"
)

// Summary holds the totals of a calibration run
type Summary struct {
	Lines         int // lines processed
	WithoutDigits int // lines whose result had no digits
	Total         int // sum of all valid calibration values
}

// String formats the summary as the two-line run report.
func (s Summary) String() string {
	return fmt.Sprintf("%d lines processed (%d without digits)\nTotal: %d", s.Lines, s.WithoutDigits, s.Total)
}

// Aggregator accumulates calibration results line by line.
// The zero value is ready to use. An Aggregator is not safe for concurrent use.
type Aggregator struct {
	summary Summary
	lines   []string
	results []calibration.Result
}

// Add calibrates line, folds it into the running summary and returns its result.
func (a *Aggregator) Add(line string) calibration.Result {
	res := calibration.Calibrate(line)
	a.record(line, res)
	return res
}

func (a *Aggregator) record(line string, res calibration.Result) {
	a.summary.Lines++
	a.lines = append(a.lines, line)
	a.results = append(a.results, res)
	if v, ok := res.Value(); ok {
		a.summary.Total += v
	} else {
		a.summary.WithoutDigits++
	}
}

// Summary returns the totals accumulated so far
func (a *Aggregator) Summary() Summary {
	return a.summary
}

// Results returns the per-line results in the order lines were added
func (a *Aggregator) Results() []calibration.Result {
	out := make([]calibration.Result, len(a.results))
	copy(out, a.results)
	return out
}

func newAggregator(n int) *Aggregator {
	return &Aggregator{
		lines:   make([]string, 0, n),
		results: make([]calibration.Result, 0, n),
	}
}

// Sum calibrates every line sequentially and returns the aggregator holding the results.
func Sum(lines []string) *Aggregator {
	a := newAggregator(len(lines))
	for _, line := range lines {
		a.Add(line)
	}
	return a
}

// SumParallel calibrates lines using up to workers goroutines.
// Results are folded in input order, so the outcome matches Sum.
// A workers value of 1 or less runs sequentially.
func SumParallel(ctx context.Context, lines []string, workers int) (*Aggregator, error) {
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Sum(lines), nil
	}

	results := make([]calibration.Result, len(lines))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, line := range lines {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			// Each goroutine owns a distinct slot.
			results[i] = calibration.Calibrate(line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("calibration aborted: %w", err)
	}

	a := newAggregator(len(lines))
	for i, res := range results {
		a.record(lines[i], res)
	}
	return a, nil
}
