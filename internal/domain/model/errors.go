package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSeverityOutOfRange is returned when an observed severity is NaN or
// outside [0,1].
var ErrSeverityOutOfRange = errors.New("severity out of range")

// ErrUnknownCategory is returned when a request names a category the rule
// set does not define.
var ErrUnknownCategory = errors.New("unknown category")

// ConfigurationError reports a malformed rule definition. It is fatal at load time.
type ConfigurationError struct {
	Category  string
	Indicator string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("configuration error")
	if e.Category != "" {
		fmt.Fprintf(&b, ": category %q", e.Category)
	}
	if e.Indicator != "" {
		fmt.Fprintf(&b, ": indicator %q", e.Indicator)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// UnknownIndicatorError is returned in strict mode when the input names
// indicators the category does not define.
type UnknownIndicatorError struct {
	Category   string
	Indicators []string
}

func (e *UnknownIndicatorError) Error() string {
	return fmt.Sprintf("unknown indicator(s) for category %q: %s",
		e.Category, strings.Join(e.Indicators, ", "))
}
