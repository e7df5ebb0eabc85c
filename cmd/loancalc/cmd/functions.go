package cmd

import (
	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/domain"
	"github.com/spf13/cobra"
)

// in collects the numeric inputs of the selected function subcommand. Only
// one subcommand runs per invocation, so the commands share it.
var in domain.Calculation

func runFunction(cmd *cobra.Command, _ []string) error {
	calc := in
	calc.Name = cmd.Name()
	calc.Function = domain.Function(cmd.Name())

	result, err := calculation.NewEngine().Evaluate(calc)
	if err != nil {
		return err
	}
	return emit(&domain.BatchResult{Results: []domain.Result{result}})
}

func rateFlag(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&in.Rate, "rate", 0, "Periodic interest rate as a decimal fraction (0.05 = 5%)")
}

func nperFlag(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&in.Nper, "nper", 0, "Number of periods")
}

func pvFlag(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&in.Pv, "pv", 0, "Present value (principal)")
}

func fvFlag(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&in.Fv, "fv", 0, "Future value")
}

func pmtFlag(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&in.Pmt, "pmt", 0, "Periodic payment amount")
}

func periodFlag(cmd *cobra.Command) {
	cmd.Flags().IntVar(&in.Period, "period", 1, "1-indexed period for the interest/principal split")
}

func timingFlag(cmd *cobra.Command) {
	cmd.Flags().IntVar(&in.Timing, "timing", 0, "Payment timing: 0 = end of period, 1 = beginning of period")
}

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Solve for the implied periodic interest rate of an annuity",
	RunE:  runFunction,
}

var pvCmd = &cobra.Command{
	Use:   "pv",
	Short: "Present value of a level-payment ordinary annuity",
	RunE:  runFunction,
}

var pmtCmd = &cobra.Command{
	Use:   "pmt",
	Short: "Level payment amortizing pv to fv over nper periods",
	RunE:  runFunction,
}

var fvCmd = &cobra.Command{
	Use:   "fv",
	Short: "Future value of level payments on a present value",
	RunE:  runFunction,
}

var ipmtCmd = &cobra.Command{
	Use:   "ipmt",
	Short: "Interest portion of the payment due at a period",
	RunE:  runFunction,
}

var ppmtCmd = &cobra.Command{
	Use:   "ppmt",
	Short: "Principal portion of the payment due at a period",
	RunE:  runFunction,
}

func init() {
	nperFlag(rateCmd)
	pmtFlag(rateCmd)
	pvFlag(rateCmd)
	fvFlag(rateCmd)
	timingFlag(rateCmd)

	rateFlag(pvCmd)
	nperFlag(pvCmd)
	pmtFlag(pvCmd)

	rateFlag(pmtCmd)
	nperFlag(pmtCmd)
	pvFlag(pmtCmd)
	fvFlag(pmtCmd)
	timingFlag(pmtCmd)

	rateFlag(fvCmd)
	nperFlag(fvCmd)
	pmtFlag(fvCmd)
	pvFlag(fvCmd)
	timingFlag(fvCmd)

	for _, c := range []*cobra.Command{ipmtCmd, ppmtCmd} {
		rateFlag(c)
		periodFlag(c)
		nperFlag(c)
		pvFlag(c)
		fvFlag(c)
		timingFlag(c)
	}

	rootCmd.AddCommand(rateCmd, pvCmd, pmtCmd, fvCmd, ipmtCmd, ppmtCmd)
}
