package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/trebuchet/internal/aggregate"
	"github.com/jonathan/trebuchet/internal/config"
	"github.com/jonathan/trebuchet/internal/observability"
	"github.com/jonathan/trebuchet/internal/schemas"
	"github.com/jonathan/trebuchet/internal/types"
	"github.com/spf13/cobra"
)

type sumOptions struct {
	configPath string
	input      string
	report     string
	workers    int
	verbose    bool
}

func newSumCmd() *cobra.Command {
	opts := &sumOptions{}
	cmd := &cobra.Command{
		Use:   "sum",
		Short: "Sum the calibration values of every line in a document",
		Long: `Reads the calibration document line by line, stopping at the first blank line, and prints
the number of lines processed, how many had no digits, and the total.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.
If no input is given, $CALIBRATION_INPUT is used, then input.txt one directory above the executable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSum(cmd, opts)
		},
	}
	addSumFlags(cmd, opts)
	return cmd
}

func addSumFlags(cmd *cobra.Command, opts *sumOptions) {
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVarP(&opts.input, "in", "i", "", "Path to calibration document (default: input.txt above the executable)")
	cmd.Flags().StringVarP(&opts.report, "report", "r", "", "Path to write the JSON run report (optional)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Number of calibration goroutines (0 or 1 runs sequentially)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print per-line results")
}

func runSum(cmd *cobra.Command, opts *sumOptions) error {
	out := cmd.OutOrStdout()

	// Step 1: Load config file if provided
	var cfg config.Config
	if opts.configPath != "" {
		loadedCfg, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("in") {
		cfg.Input = opts.input
	}
	if cmd.Flags().Changed("report") {
		cfg.Report = opts.report
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = opts.workers
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	// Step 3: Apply defaults for unset values
	if cfg.Input == "" {
		defaultInput, err := config.DefaultInputPath()
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(config.Config{Input: defaultInput})
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Verbose && opts.configPath != "" {
		_, _ = fmt.Fprintf(out, "Loaded config from: %s\n", opts.configPath)
	}

	// Step 4: Read and calibrate
	lines, err := aggregate.ReadFile(cfg.Input)
	if err != nil {
		var srcErr *aggregate.SourceError
		if errors.As(err, &srcErr) && errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("calibration document not found: %s", cfg.Input)
		}
		return fmt.Errorf("failed to read calibration document: %w", err)
	}

	agg, err := aggregate.SumParallel(cmd.Context(), lines, cfg.Workers)
	if err != nil {
		return err
	}

	report := agg.Report(cfg.Input)
	if err := report.Validate(); err != nil {
		return fmt.Errorf("inconsistent calibration report: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(out)
		printer.PrintLineResults(report)
		printer.PrintSummary(report)
	}

	// Step 5: Write the JSON report if requested
	if cfg.Report != "" {
		if err := writeReport(cmd, cfg.Report, report); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, agg.Summary().String())
	return nil
}

func writeReport(cmd *cobra.Command, path string, report *types.Report) error {
	// Validate against schema before writing (non-fatal)
	if schemaPath := schemas.ResolveSchemaPath(schemas.ReportSchema); schemaPath != "" {
		if err := schemas.ValidateValue(schemaPath, report); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Generated report does not validate against schema: %v\n", err)
			} else {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not validate report against schema: %v\n", err)
			}
		}
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}
