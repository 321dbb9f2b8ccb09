package valueobject_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
)

func TestRiskTier_String(t *testing.T) {
	assert.Equal(t, "low", valueobject.RiskTierLow.String())
	assert.Equal(t, "medium", valueobject.RiskTierMedium.String())
	assert.Equal(t, "high", valueobject.RiskTierHigh.String())
}

func TestRiskTier_FromString(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.RiskTier
		wantErr  bool
	}{
		{"low", valueobject.RiskTierLow, false},
		{"medium", valueobject.RiskTierMedium, false},
		{"high", valueobject.RiskTierHigh, false},
		{"HIGH", valueobject.RiskTier{}, true},
		{"critical", valueobject.RiskTier{}, true},
		{"", valueobject.RiskTier{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := valueobject.RiskTierFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result))
		})
	}
}

func TestRiskTier_FromScore(t *testing.T) {
	tests := []struct {
		score    string
		expected valueobject.RiskTier
	}{
		{"0", valueobject.RiskTierLow},
		{"0.3999999", valueobject.RiskTierLow},
		{"0.4", valueobject.RiskTierMedium},
		{"0.55", valueobject.RiskTierMedium},
		{"0.6999999", valueobject.RiskTierMedium},
		{"0.7", valueobject.RiskTierHigh},
		{"1", valueobject.RiskTierHigh},
	}

	for _, tt := range tests {
		t.Run("score "+tt.score, func(t *testing.T) {
			result := valueobject.RiskTierFromScore(decimal.RequireFromString(tt.score))
			assert.True(t, tt.expected.Equal(result),
				"expected %s for score %s, got %s", tt.expected, tt.score, result)
		})
	}
}

func TestRiskTier_JSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Tier valueobject.RiskTier `json:"tier"`
	}{Tier: valueobject.RiskTierMedium})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"medium"}`, string(payload))

	var decoded struct {
		Tier valueobject.RiskTier `json:"tier"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tier":"high"}`), &decoded))
	assert.True(t, valueobject.RiskTierHigh.Equal(decoded.Tier))

	require.Error(t, json.Unmarshal([]byte(`{"tier":"severe"}`), &decoded))
}

func TestRiskTier_ZeroValueDoesNotMarshal(t *testing.T) {
	var zero valueobject.RiskTier
	assert.True(t, zero.IsZero())
	_, err := zero.MarshalText()
	require.Error(t, err)
}

func TestAllRiskTiers(t *testing.T) {
	assert.Equal(t,
		[]valueobject.RiskTier{valueobject.RiskTierLow, valueobject.RiskTierMedium, valueobject.RiskTierHigh},
		valueobject.AllRiskTiers())
}

func TestIndicatorPolicy_FromString(t *testing.T) {
	strict, err := valueobject.IndicatorPolicyFromString("")
	require.NoError(t, err)
	assert.False(t, strict.IsLenient())
	assert.Equal(t, "strict", strict.String())

	lenient, err := valueobject.IndicatorPolicyFromString(" Lenient ")
	require.NoError(t, err)
	assert.True(t, lenient.IsLenient())

	_, err = valueobject.IndicatorPolicyFromString("relaxed")
	require.Error(t, err)

	var zero valueobject.IndicatorPolicy
	assert.False(t, zero.IsLenient())
	assert.Equal(t, "strict", zero.String())
}
