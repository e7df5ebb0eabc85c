package cmd

import (
	"fmt"
	"os"

	"github.com/rpgo/loan-calculator/internal/domain"
	"github.com/rpgo/loan-calculator/internal/output"
	"github.com/spf13/cobra"
)

var formatName string

var rootCmd = &cobra.Command{
	Use:   "loancalc",
	Short: "Annuity math toolkit for loan calculations",
	Long: `loancalc evaluates the standard time-value-of-money functions over
double-precision inputs: present value, payment, future value, the
interest/principal split of a payment, and the implied periodic rate
of an annuity.

Amounts follow the annuity sign convention: cash received is positive,
cash paid out is negative. A loan you take out is a positive pv for
you; the payments you make are negative.

Degenerate inputs (for example a zero rate passed to pmt) are not
validated away; they surface as NaN or infinity in the output.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "console",
		"Output format: console, csv, json")
}

// emit formats a batch result with the selected formatter and writes it to stdout.
func emit(results *domain.BatchResult) error {
	f := output.GetFormatterByName(formatName)
	if f == nil {
		return fmt.Errorf("unknown format %q (available: %v)", formatName, output.AvailableFormatterNames())
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
