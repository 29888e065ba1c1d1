package aggregate

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// ReadLines reads calibration lines from r.
// Each line is trimmed of surrounding whitespace. Reading stops at the first
// blank line or at EOF, whichever comes first. Lines may be of any length.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			break
		}
		lines = append(lines, line)

		if err != nil {
			break
		}
	}
	return lines, nil
}

// ReadFile reads calibration lines from the file at path
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{
			Path:    path,
			Message: "failed to open",
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, &SourceError{
			Path:    path,
			Message: "failed to read",
			Cause:   err,
		}
	}
	return lines, nil
}
