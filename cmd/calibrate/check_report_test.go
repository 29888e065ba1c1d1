package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReportCommand_ValidReport(t *testing.T) {
	input := writeInput(t, "input.txt", exampleDocument)
	reportPath := filepath.Join(t.TempDir(), "report.json")

	_, _, err := runCLI(t, "sum", "--in", input, "--report", reportPath)
	require.NoError(t, err)

	stdout, _, err := runCLI(t, "check-report", reportPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Report valid")
}

func TestCheckReportCommand_InvalidReport(t *testing.T) {
	reportPath := writeInput(t, "report.json", `{"source": "input.txt", "total": -1}`)

	_, _, err := runCLI(t, "check-report", reportPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report is invalid")
}

func TestCheckReportCommand_MalformedReport(t *testing.T) {
	reportPath := writeInput(t, "report.json", `{ not json`)

	_, _, err := runCLI(t, "check-report", reportPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to validate report")
}

func TestCheckReportCommand_MissingFile(t *testing.T) {
	_, _, err := runCLI(t, "check-report", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report file not found")
}
