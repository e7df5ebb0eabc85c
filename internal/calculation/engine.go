// Package calculation dispatches batch calculation requests onto the
// annuity library.
package calculation

import (
	"fmt"

	"github.com/rpgo/loan-calculator/internal/domain"
	"github.com/rpgo/loan-calculator/pkg/annuity"
)

// Engine evaluates calculation requests. It is stateless; a zero value is
// usable, and a single Engine may be shared across goroutines.
type Engine struct{}

// NewEngine creates a new calculation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs one calculation. It fails only on an unknown function name;
// numerically degenerate inputs produce non-finite values in the result, not
// errors, because the underlying library performs no validation.
func (e *Engine) Evaluate(c domain.Calculation) (domain.Result, error) {
	timing := annuity.PaymentTiming(c.Timing)

	var value float64
	switch c.Function {
	case domain.FunctionRate:
		value = annuity.Rate(c.Nper, c.Pmt, c.Pv, c.Fv, timing)
	case domain.FunctionPv:
		value = annuity.Pv(c.Rate, c.Nper, c.Pmt)
	case domain.FunctionPmt:
		value = annuity.Pmt(c.Rate, c.Nper, c.Pv, c.Fv, timing)
	case domain.FunctionFv:
		value = annuity.Fv(c.Rate, c.Nper, c.Pmt, c.Pv, timing)
	case domain.FunctionIpmt:
		value = annuity.Ipmt(c.Rate, c.Period, c.Nper, c.Pv, c.Fv, timing)
	case domain.FunctionPpmt:
		value = annuity.Ppmt(c.Rate, c.Period, c.Nper, c.Pv, c.Fv, timing)
	default:
		return domain.Result{}, fmt.Errorf("unknown function %q", c.Function)
	}

	return domain.Result{Name: c.Name, Function: c.Function, Value: value}, nil
}

// RunBatch evaluates every calculation in the config, preserving order.
func (e *Engine) RunBatch(cfg *domain.BatchConfig) (*domain.BatchResult, error) {
	results := make([]domain.Result, 0, len(cfg.Calculations))
	for i, c := range cfg.Calculations {
		res, err := e.Evaluate(c)
		if err != nil {
			return nil, fmt.Errorf("calculation %d (%s): %w", i, c.Name, err)
		}
		results = append(results, res)
	}
	return &domain.BatchResult{Results: results}, nil
}
