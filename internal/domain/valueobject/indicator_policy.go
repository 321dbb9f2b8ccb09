package valueobject

import (
	"fmt"
	"strings"
)

// IndicatorPolicy decides what happens to input keys that a category does
// not define.
type IndicatorPolicy struct {
	value string
}

var (
	// IndicatorPolicyStrict rejects unknown indicator keys.
	IndicatorPolicyStrict = IndicatorPolicy{value: "strict"}
	// IndicatorPolicyLenient ignores unknown indicator keys.
	IndicatorPolicyLenient = IndicatorPolicy{value: "lenient"}
)

// IndicatorPolicyFromString parses "strict" or "lenient" (case-insensitive).
// An empty string yields the strict policy.
func IndicatorPolicyFromString(s string) (IndicatorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return IndicatorPolicyStrict, nil
	case "lenient":
		return IndicatorPolicyLenient, nil
	default:
		return IndicatorPolicy{}, fmt.Errorf("invalid indicator policy: %q", s)
	}
}

// String returns the string representation.
func (p IndicatorPolicy) String() string {
	if p.value == "" {
		return IndicatorPolicyStrict.value
	}
	return p.value
}

// IsLenient reports whether unknown indicators are ignored. The zero value is strict.
func (p IndicatorPolicy) IsLenient() bool {
	return p.value == IndicatorPolicyLenient.value
}
