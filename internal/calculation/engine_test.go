package calculation

import (
	"testing"

	"github.com/rpgo/loan-calculator/internal/domain"
	"github.com/rpgo/loan-calculator/pkg/annuity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEngineEvaluateDispatch verifies each function name routes to the
// corresponding annuity library call.
func TestEngineEvaluateDispatch(t *testing.T) {
	tests := []struct {
		calc     domain.Calculation
		expected float64
	}{
		{
			calc:     domain.Calculation{Function: domain.FunctionRate, Nper: 24, Pmt: 4000, Pv: -90000},
			expected: annuity.Rate(24, 4000, -90000, 0, annuity.EndOfPeriod),
		},
		{
			calc:     domain.Calculation{Function: domain.FunctionPv, Rate: 0.05, Nper: 24, Pmt: -1000},
			expected: annuity.Pv(0.05, 24, -1000),
		},
		{
			calc:     domain.Calculation{Function: domain.FunctionPmt, Rate: 0.05, Nper: 24, Pv: -5000, Timing: 1},
			expected: annuity.Pmt(0.05, 24, -5000, 0, annuity.BeginningOfPeriod),
		},
		{
			calc:     domain.Calculation{Function: domain.FunctionFv, Rate: 0.05, Nper: 24, Pmt: -1000, Pv: 5000},
			expected: annuity.Fv(0.05, 24, -1000, 5000, annuity.EndOfPeriod),
		},
		{
			calc:     domain.Calculation{Function: domain.FunctionIpmt, Rate: 0.05, Period: 2, Nper: 24, Pv: -5000},
			expected: annuity.Ipmt(0.05, 2, 24, -5000, 0, annuity.EndOfPeriod),
		},
		{
			calc:     domain.Calculation{Function: domain.FunctionPpmt, Rate: 0.05, Period: 2, Nper: 24, Pv: -5000},
			expected: annuity.Ppmt(0.05, 2, 24, -5000, 0, annuity.EndOfPeriod),
		},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(string(tt.calc.Function), func(t *testing.T) {
			c := tt.calc
			c.Name = "dispatch"
			result, err := engine.Evaluate(c)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Value)
			assert.Equal(t, tt.calc.Function, result.Function)
			assert.Equal(t, "dispatch", result.Name)
		})
	}
}

func TestEngineEvaluateUnknownFunction(t *testing.T) {
	_, err := NewEngine().Evaluate(domain.Calculation{Name: "bad", Function: "irr"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown function")
}

// TestEngineEvaluateNonFiniteResult confirms degenerate inputs come back as
// non-finite results rather than errors.
func TestEngineEvaluateNonFiniteResult(t *testing.T) {
	result, err := NewEngine().Evaluate(domain.Calculation{
		Name:     "zero-rate-pmt",
		Function: domain.FunctionPmt,
		Rate:     0,
		Nper:     24,
		Pv:       -5000,
	})
	require.NoError(t, err)
	assert.False(t, result.Finite())
}

func TestEngineRunBatchPreservesOrder(t *testing.T) {
	cfg := &domain.BatchConfig{Calculations: []domain.Calculation{
		{Name: "first", Function: domain.FunctionPv, Rate: 0, Nper: 24, Pmt: -1000},
		{Name: "second", Function: domain.FunctionRate, Nper: 24, Pmt: 4000, Pv: -90000},
	}}

	results, err := NewEngine().RunBatch(cfg)
	require.NoError(t, err)
	require.Len(t, results.Results, 2)
	assert.Equal(t, "first", results.Results[0].Name)
	assert.Equal(t, 24000.0, results.Results[0].Value)
	assert.Equal(t, "second", results.Results[1].Name)
	assert.InDelta(t, 0.005228827926420765, results.Results[1].Value, 1e-12)
}

func TestEngineRunBatchStopsOnUnknownFunction(t *testing.T) {
	cfg := &domain.BatchConfig{Calculations: []domain.Calculation{
		{Name: "ok", Function: domain.FunctionPv, Rate: 0, Nper: 12, Pmt: -100},
		{Name: "broken", Function: "npv"},
	}}

	_, err := NewEngine().RunBatch(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
