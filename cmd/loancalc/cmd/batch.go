package cmd

import (
	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/config"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Evaluate a YAML batch of annuity calculations",
	Long: `Evaluate every calculation in a YAML batch file. Each entry names a
function and its inputs:

  calculations:
    - name: car-loan-rate
      function: rate
      nper: 24
      pmt: 4000
      pv: -90000
    - name: first-month-interest
      function: ipmt
      rate: 0.05
      period: 1
      nper: 24
      pv: -5000`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	cfg, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}
	results, err := calculation.NewEngine().RunBatch(cfg)
	if err != nil {
		return err
	}
	return emit(results)
}
