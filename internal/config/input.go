package config

import (
	"fmt"
	"os"

	"github.com/rpgo/loan-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of batch input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a batch configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.BatchConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.BatchConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded batch configuration. Only the
// batch surface is checked here; the annuity library itself accepts any
// numeric input and lets IEEE special values propagate, so numeric
// degeneracies (a zero rate for pmt, say) are intentionally not rejected.
func (ip *InputParser) ValidateConfiguration(config *domain.BatchConfig) error {
	if len(config.Calculations) == 0 {
		return fmt.Errorf("no calculations provided")
	}

	for i, calc := range config.Calculations {
		if err := ip.validateCalculation(&calc); err != nil {
			return fmt.Errorf("calculation %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateCalculation validates a single batch entry
func (ip *InputParser) validateCalculation(calc *domain.Calculation) error {
	if calc.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !calc.Function.IsKnown() {
		return fmt.Errorf("unknown function %q (supported: %v)", calc.Function, domain.KnownFunctions)
	}
	if calc.Timing != 0 && calc.Timing != 1 {
		return fmt.Errorf("timing must be 0 (end of period) or 1 (beginning of period), got %d", calc.Timing)
	}
	if calc.Function == domain.FunctionIpmt || calc.Function == domain.FunctionPpmt {
		if calc.Period < 1 || float64(calc.Period) > calc.Nper {
			return fmt.Errorf("period must be in [1, nper], got period=%d nper=%v", calc.Period, calc.Nper)
		}
	}
	return nil
}
