package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

const exampleDocument = "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n"

// runCLI executes the calibrate command tree in-process and returns stdout and stderr
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// writeInput writes content to a file in a fresh temp dir and returns its path
func writeInput(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
