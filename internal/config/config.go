// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultInputName is the calibration document looked up next to the install directory.
	DefaultInputName = "input.txt"
	// InputEnvVar overrides the default input path when no flag or config value is set.
	InputEnvVar = "CALIBRATION_INPUT"
	// MaxWorkers bounds the number of calibration goroutines.
	MaxWorkers = 256
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Input is the path to the calibration document.
	Input string `json:"input,omitempty"`
	// Report is the path to write the JSON run report to.
	Report string `json:"report,omitempty"`
	// Workers is the number of calibration goroutines; 0 or 1 runs sequentially.
	// The upper bound is MaxWorkers, checked in Validate.
	Workers int `json:"workers,omitempty" validate:"min=0"`
	// Verbose prints per-line results.
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// The input file is not checked for existence here; a missing input is
// reported when the run opens it.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			if fe.Field() == "Workers" {
				return workersRangeError()
			}
			return fmt.Errorf("config error: invalid %s: failed %q", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	if c.Workers > MaxWorkers {
		return workersRangeError()
	}

	if c.Report != "" && c.Input != "" && filepath.Clean(c.Report) == filepath.Clean(c.Input) {
		return fmt.Errorf("config error: 'report' would overwrite 'input'")
	}

	return nil
}

func workersRangeError() error {
	return fmt.Errorf("config error: 'workers' must be between 0 and %d", MaxWorkers)
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Report == "" {
		result.Report = defaults.Report
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DefaultInputPath returns the input path used when none is configured:
// the value of CALIBRATION_INPUT if set, otherwise input.txt one directory
// above the directory holding the running executable.
func DefaultInputPath() (string, error) {
	if p := os.Getenv(InputEnvVar); p != "" {
		return p, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to determine executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return InputPathFor(exe), nil
}

// InputPathFor returns the default input path for an executable located at exe.
func InputPathFor(exe string) string {
	return filepath.Join(filepath.Dir(filepath.Dir(exe)), DefaultInputName)
}
