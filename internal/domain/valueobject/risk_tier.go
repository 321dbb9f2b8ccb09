package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RiskTier is an immutable value object representing the risk classification
// produced by an evaluation.
type RiskTier struct {
	value string
}

var (
	RiskTierLow    = RiskTier{value: "low"}
	RiskTierMedium = RiskTier{value: "medium"}
	RiskTierHigh   = RiskTier{value: "high"}
)

// Band thresholds on the normalized score.
var (
	HighTierThreshold   = decimal.RequireFromString("0.7")
	MediumTierThreshold = decimal.RequireFromString("0.4")
)

// RiskTierFromString reconstructs a RiskTier from its string representation.
func RiskTierFromString(s string) (RiskTier, error) {
	switch s {
	case "low":
		return RiskTierLow, nil
	case "medium":
		return RiskTierMedium, nil
	case "high":
		return RiskTierHigh, nil
	default:
		return RiskTier{}, fmt.Errorf("invalid risk tier: %q", s)
	}
}

// RiskTierFromScore maps a normalized score in [0,1] to its band:
// high at or above 0.7, medium in [0.4, 0.7), low otherwise.
func RiskTierFromScore(normalized decimal.Decimal) RiskTier {
	switch {
	case normalized.GreaterThanOrEqual(HighTierThreshold):
		return RiskTierHigh
	case normalized.GreaterThanOrEqual(MediumTierThreshold):
		return RiskTierMedium
	default:
		return RiskTierLow
	}
}

// AllRiskTiers returns every tier, lowest first.
func AllRiskTiers() []RiskTier {
	return []RiskTier{RiskTierLow, RiskTierMedium, RiskTierHigh}
}

// String returns the string representation.
func (r RiskTier) String() string {
	return r.value
}

// IsZero returns true if the RiskTier has not been set.
func (r RiskTier) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another RiskTier.
func (r RiskTier) Equal(other RiskTier) bool {
	return r.value == other.value
}

// MarshalText encodes the tier as "low", "medium" or "high".
func (r RiskTier) MarshalText() ([]byte, error) {
	if r.IsZero() {
		return nil, fmt.Errorf("risk tier is not set")
	}
	return []byte(r.value), nil
}

// UnmarshalText decodes a tier produced by MarshalText.
func (r *RiskTier) UnmarshalText(text []byte) error {
	tier, err := RiskTierFromString(string(text))
	if err != nil {
		return err
	}
	*r = tier
	return nil
}
