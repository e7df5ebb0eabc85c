package annuity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRateSpreadsheetScenario checks the solver against an externally
// verified spreadsheet computation: 24 payments of 4000 on a 90000 loan.
func TestRateSpreadsheetScenario(t *testing.T) {
	got := Rate(24, 4000, -90000, 0, EndOfPeriod)
	assert.InDelta(t, 0.005228827926420765, got, 1e-12)
}

func TestRateBeginningOfPeriod(t *testing.T) {
	got := Rate(24, 4000, -90000, 0, BeginningOfPeriod)
	assert.InDelta(t, 0.005695387409272953, got, 1e-12)
}

// TestRateBalanceResidual verifies the returned rate is a fixed point of the
// iteration: the cash-flow balance evaluated at it is essentially zero.
func TestRateBalanceResidual(t *testing.T) {
	tests := []struct {
		name   string
		nper   float64
		pmt    float64
		pv     float64
		fv     float64
		timing PaymentTiming
	}{
		{"car loan", 24, 4000, -90000, 0, EndOfPeriod},
		{"car loan annuity-due", 24, 4000, -90000, 0, BeginningOfPeriod},
		{"mortgage with balloon", 360, 1500, -250000, 10000, EndOfPeriod},
		{"short savings plan", 6, -200, 0, 1250, EndOfPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Rate(tt.nper, tt.pmt, tt.pv, tt.fv, tt.timing)
			residual := balance(r, tt.nper, tt.pmt, tt.pv, tt.fv, float64(tt.timing))
			assert.Less(t, math.Abs(residual), 1e-4,
				"rate %v leaves balance residual %v", r, residual)
		})
	}
}

// TestRateSolvesRoundTrip feeds a payment computed at a known rate back into
// the solver and expects the rate to be recovered.
func TestRateSolvesRoundTrip(t *testing.T) {
	const (
		rate = 0.0520 / 12
		nper = 24.0
		pv   = -88931.38
	)
	pmt := Pmt(rate, nper, pv, 0, EndOfPeriod)
	got := Rate(nper, pmt, pv, 0, EndOfPeriod)
	assert.InDelta(t, rate, got, 1e-10)
}

// TestRateZeroRateSolution exercises the linearized near-zero branch of the
// balance function: payments that exactly repay the principal imply a zero
// periodic rate.
func TestRateZeroRateSolution(t *testing.T) {
	got := Rate(12, -100, 1200, 0, EndOfPeriod)
	assert.InDelta(t, 0, got, 1e-10)
}

// TestRateDegenerateCashFlowsReturnGuess documents the no-failure-signal
// contract: with all-zero cash flows the seed balances already agree, the
// loop never runs, and the initial guess comes back as-is.
func TestRateDegenerateCashFlowsReturnGuess(t *testing.T) {
	got := Rate(12, 0, 0, 0, EndOfPeriod)
	assert.Equal(t, 0.1, got)
}
