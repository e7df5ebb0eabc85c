package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rpgo/loan-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// formatValue renders a result value for console/CSV output. Finite values
// go through decimal for stable fixed-point rendering; non-finite values
// cannot be represented as decimals and are printed as IEEE spellings
// ("NaN", "+Inf") instead.
func formatValue(r domain.Result) string {
	if !r.Finite() {
		return strconv.FormatFloat(r.Value, 'g', -1, 64)
	}
	return decimal.NewFromFloat(r.Value).StringFixed(9)
}

// ConsoleFormatter provides a concise console summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "ANNUITY CALCULATION RESULTS")
	fmt.Fprintln(&buf, "===========================")
	for _, r := range results.Results {
		fmt.Fprintf(&buf, "%s (%s) = %s\n", r.Name, r.Function, formatValue(r))
	}
	return buf.Bytes(), nil
}

// CSVFormatter implements the summary CSV output (one row per calculation).
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Name", "Function", "Value"}); err != nil {
		return nil, err
	}
	for _, r := range results.Results {
		if err := w.Write([]string{r.Name, string(r.Function), formatValue(r)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// JSONFormatter serializes the batch results as pretty-printed JSON.
// Non-finite values serialize as null because JSON has no NaN/Inf literals.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonResult struct {
	Name     string          `json:"name"`
	Function domain.Function `json:"function"`
	Value    *float64        `json:"value"`
}

func (j JSONFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	out := struct {
		Results []jsonResult `json:"results"`
	}{Results: make([]jsonResult, 0, len(results.Results))}

	for _, r := range results.Results {
		jr := jsonResult{Name: r.Name, Function: r.Function}
		if r.Finite() {
			v := r.Value
			jr.Value = &v
		}
		out.Results = append(out.Results, jr)
	}
	return json.MarshalIndent(out, "", "  ")
}
