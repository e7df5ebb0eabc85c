package annuity

import "math"

const (
	// FinancialPrecision is both the secant-method convergence tolerance and
	// the threshold below which the balance function switches to its
	// linearized near-zero form. Changing it breaks parity with the
	// reference outputs.
	FinancialPrecision = 1e-8

	// FinancialMaxIterations caps the secant iteration. A non-converged
	// estimate after this many steps is returned as-is; there is no
	// failure signal.
	FinancialMaxIterations = 128

	initialRateGuess = 0.1
)

// Rate solves for the periodic interest rate of an annuity with nper periods,
// level payment pmt, present value pv, and future value fv. No closed form
// exists, so the root of the cash-flow balance equation
//
//	pv*(1+r)^nper + pmt*(1 + r*timing)*((1+r)^nper - 1)/r + fv = 0
//
// is found by the secant method, seeded at r=0 and r=0.1. Iteration stops
// when successive balance values agree within FinancialPrecision or after
// FinancialMaxIterations steps; the current estimate is returned either way.
// If the secant update ever divides by zero the NaN propagates through the
// remaining iterations and into the result, again for parity with the
// reference outputs.
func Rate(nper, pmt, pv, fv float64, timing PaymentTiming) float64 {
	due := float64(timing)
	rate := initialRateGuess
	y := balance(rate, nper, pmt, pv, fv, due)

	// Secant seeds: x0 = 0 with the balance evaluated in closed form at a
	// zero rate, x1 = the initial guess.
	y0 := pv + pmt*nper + fv
	y1 := y
	x0 := 0.0
	x1 := rate

	for i := 0; math.Abs(y0-y1) > FinancialPrecision && i < FinancialMaxIterations; i++ {
		rate = (y1*x0 - y0*x1) / (y1 - y0)
		x0 = x1
		x1 = rate
		y = balance(rate, nper, pmt, pv, fv, due)
		y0 = y1
		y1 = y
	}
	return rate
}

// balance evaluates the annuity cash-flow balance at the given rate. Within
// FinancialPrecision of zero the 1/rate term blows up, so a linearization
// around rate=0 is used instead.
func balance(rate, nper, pmt, pv, fv, due float64) float64 {
	if math.Abs(rate) < FinancialPrecision {
		return pv*(1+nper*rate) + pmt*(1+rate*due)*nper + fv
	}
	f := math.Exp(nper * math.Log(1+rate))
	return pv*f + pmt*(1/rate+due)*(f-1) + fv
}
