package model

import (
	"fmt"
	"math"
)

// EvaluationInput maps indicator names to observed severities in [0,1].
// Boolean indicators use 0 or 1.
type EvaluationInput map[string]float64

// Severity returns the observed severity, treating absence as 0.
func (in EvaluationInput) Severity(name string) float64 {
	return in[name]
}

// Validate checks that every severity is a number in [0,1].
func (in EvaluationInput) Validate() error {
	for name, v := range in {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: indicator %q has severity %v", ErrSeverityOutOfRange, name, v)
		}
	}
	return nil
}

// Flag converts a boolean observation into a severity.
func Flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
