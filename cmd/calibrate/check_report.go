package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/trebuchet/internal/schemas"
	"github.com/spf13/cobra"
)

func newCheckReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-report REPORT.json",
		Short: "Validate a JSON run report against the report schema",
		Long:  "Validates a report previously written by \"calibrate sum --report\" against schemas/calibration_report.schema.json.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("report file not found: %s", path)
			}

			schemaPath := schemas.ResolveSchemaPath(schemas.ReportSchema)
			if schemaPath == "" {
				return fmt.Errorf("report schema not found: %s", schemas.ReportSchema)
			}

			if err := schemas.ValidateJSON(schemaPath, path); err != nil {
				var validationErr *schemas.ValidationError
				if errors.As(err, &validationErr) {
					return fmt.Errorf("report is invalid: %w", err)
				}
				return fmt.Errorf("failed to validate report: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report valid: %s\n", path)
			return nil
		},
	}
}
