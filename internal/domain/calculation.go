package domain

import "math"

// Function identifies one of the annuity math operations.
type Function string

const (
	FunctionRate Function = "rate"
	FunctionPv   Function = "pv"
	FunctionPmt  Function = "pmt"
	FunctionFv   Function = "fv"
	FunctionIpmt Function = "ipmt"
	FunctionPpmt Function = "ppmt"
)

// KnownFunctions lists every supported function name, in the order the
// toolkit documents them.
var KnownFunctions = []Function{
	FunctionRate, FunctionPv, FunctionPmt, FunctionFv, FunctionIpmt, FunctionPpmt,
}

// IsKnown reports whether f names a supported operation.
func (f Function) IsKnown() bool {
	for _, k := range KnownFunctions {
		if f == k {
			return true
		}
	}
	return false
}

// Calculation is a single batch entry: one annuity function applied to one
// set of scalar inputs. Fields not used by the selected function are ignored.
// Timing follows the annuity convention: 0 = end of period, 1 = beginning.
type Calculation struct {
	Name     string   `yaml:"name" json:"name"`
	Function Function `yaml:"function" json:"function"`
	Rate     float64  `yaml:"rate" json:"rate"`
	Period   int      `yaml:"period" json:"period,omitempty"`
	Nper     float64  `yaml:"nper" json:"nper"`
	Pv       float64  `yaml:"pv" json:"pv"`
	Fv       float64  `yaml:"fv" json:"fv"`
	Pmt      float64  `yaml:"pmt" json:"pmt"`
	Timing   int      `yaml:"timing" json:"timing"`
}

// BatchConfig is a parsed batch input file.
type BatchConfig struct {
	Calculations []Calculation `yaml:"calculations"`
}

// Result is the outcome of evaluating one Calculation.
type Result struct {
	Name     string   `json:"name"`
	Function Function `json:"function"`
	Value    float64  `json:"-"`
}

// Finite reports whether the computed value is an ordinary number. The
// library propagates IEEE infinities and NaN for degenerate inputs instead
// of signalling errors, so formatters and callers check here before
// rendering or rounding.
func (r Result) Finite() bool {
	return !math.IsNaN(r.Value) && !math.IsInf(r.Value, 0)
}

// BatchResult holds the results of a batch run in input order.
type BatchResult struct {
	Results []Result `json:"results"`
}
