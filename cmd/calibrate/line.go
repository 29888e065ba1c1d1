package main

import (
	"fmt"

	"github.com/jonathan/trebuchet/internal/calibration"
	"github.com/spf13/cobra"
)

func newLineCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "line TEXT...",
		Short: "Calibrate individual lines given as arguments",
		Long:  "Prints the calibration value of each argument, or \"no digits\" when it contains none.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, text := range args {
				res := calibration.Calibrate(text)
				v, ok := res.Value()
				switch {
				case !ok:
					_, _ = fmt.Fprintf(out, "%s: no digits\n", text)
				case verbose:
					_, _ = fmt.Fprintf(out, "%s: %d (first %d at %d, last %d at %d)\n",
						text, v, res.First.Digit, res.First.Offset, res.Last.Digit, res.Last.Offset)
				default:
					_, _ = fmt.Fprintf(out, "%s: %d\n", text, v)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show where the first and last digits were found")
	return cmd
}
