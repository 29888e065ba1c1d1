// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/trebuchet/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxTextWidth is the widest line excerpt shown in the per-line table
	maxTextWidth = 28
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox frames title and the rows of content in a box boxWidth runes wide.
// Rows wider than the box are cut and marked with "...".
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)

	var sb strings.Builder
	row := func(text string) {
		sb.WriteString("│ ")
		sb.WriteString(fit(text, inner))
		sb.WriteString(" │\n")
	}

	sb.WriteString("┌" + border + "┐\n")
	row(title)
	sb.WriteString("├" + border + "┤\n")
	for _, line := range strings.Split(content, "\n") {
		row(line)
	}
	sb.WriteString("└" + border + "┘\n")

	_, _ = io.WriteString(p.out, sb.String())
}

// fit pads or truncates text to exactly width runes.
func fit(text string, width int) string {
	runes := []rune(text)
	if len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return text + strings.Repeat(" ", width-len(runes))
}

// PrintLineResults outputs one row per calibrated line showing where the
// first and last digits were found.
func (p *Printer) PrintLineResults(report *types.Report) {
	if report == nil || len(report.Lines) == 0 {
		return
	}

	var sb strings.Builder
	for i, line := range report.Lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%4d  %-*s ", line.Number, maxTextWidth, excerpt(line.Text)))
		if line.Value == nil {
			sb.WriteString("no digits")
			continue
		}
		sb.WriteString(fmt.Sprintf("%2d", *line.Value))
		if line.First != nil && line.Last != nil {
			sb.WriteString(fmt.Sprintf("  (%d@%d, %d@%d)", line.First.Digit, line.First.Offset, line.Last.Digit, line.Last.Offset))
		}
	}

	p.printBox("LINE RESULTS", sb.String())
}

// PrintSummary outputs the totals of a calibration run.
func (p *Printer) PrintSummary(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:      %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Source:   %s\n", report.Source))
	sb.WriteString(fmt.Sprintf("Lines:    %d\n", report.LinesProcessed))
	sb.WriteString(fmt.Sprintf("No digit: %d\n", report.LinesWithoutDigits))
	sb.WriteString(fmt.Sprintf("Total:    %d", report.Total))

	p.printBox("CALIBRATION SUMMARY", sb.String())
}

func excerpt(text string) string {
	if len(text) <= maxTextWidth {
		return text
	}
	return text[:maxTextWidth-3] + "..."
}
