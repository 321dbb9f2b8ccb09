package model_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
)

func advisorDefinitions() []model.IndicatorDefinition {
	return []model.IndicatorDefinition{
		{Name: "sebi_registration_check", Weight: 0.4, Critical: true},
		{Name: "contact_verification", Weight: 0.2},
		{Name: "fee_collection_method", Weight: 0.2, Critical: true},
		{Name: "communication_pattern", Weight: 0.2},
	}
}

func TestNewCategory(t *testing.T) {
	c, err := model.NewCategory(" advisor_verification ", advisorDefinitions())
	require.NoError(t, err)

	assert.Equal(t, "advisor_verification", c.Name())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, "1", c.WeightTotal().String())

	def, ok := c.Indicator("fee_collection_method")
	require.True(t, ok)
	assert.True(t, def.Critical)
	assert.Equal(t, 0.2, def.Weight)

	_, ok = c.Indicator("unknown")
	assert.False(t, ok)

	weights := c.Weights()
	require.Len(t, weights, 4)
	assert.Equal(t, "0.4", weights[0].String())
}

func TestNewCategory_CopiesDefinitions(t *testing.T) {
	defs := advisorDefinitions()
	c, err := model.NewCategory("advisor_verification", defs)
	require.NoError(t, err)

	defs[0].Weight = 0.9
	out := c.Indicators()
	assert.Equal(t, 0.4, out[0].Weight)

	out[1].Name = "changed"
	assert.Equal(t, "contact_verification", c.Indicators()[1].Name)
}

func TestNewCategory_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		category string
		defs     []model.IndicatorDefinition
		reason   string
	}{
		{name: "empty name", category: " ", defs: advisorDefinitions(), reason: "category name is required"},
		{name: "no indicators", category: "c", defs: nil, reason: "at least one indicator"},
		{name: "blank indicator name", category: "c", defs: []model.IndicatorDefinition{{Name: "", Weight: 1}}, reason: "indicator name is required"},
		{
			name:     "duplicate indicator",
			category: "c",
			defs:     []model.IndicatorDefinition{{Name: "a", Weight: 0.5}, {Name: "a", Weight: 0.5}},
			reason:   "duplicate indicator",
		},
		{name: "zero weight", category: "c", defs: []model.IndicatorDefinition{{Name: "a", Weight: 0}}, reason: "weight must be in (0,1]"},
		{name: "negative weight", category: "c", defs: []model.IndicatorDefinition{{Name: "a", Weight: -0.1}}, reason: "weight must be in (0,1]"},
		{name: "weight above one", category: "c", defs: []model.IndicatorDefinition{{Name: "a", Weight: 1.01}}, reason: "weight must be in (0,1]"},
		{name: "NaN weight", category: "c", defs: []model.IndicatorDefinition{{Name: "a", Weight: math.NaN()}}, reason: "weight must be in (0,1]"},
		{name: "infinite weight", category: "c", defs: []model.IndicatorDefinition{{Name: "a", Weight: math.Inf(1)}}, reason: "weight must be in (0,1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.NewCategory(tt.category, tt.defs)
			require.Error(t, err)

			var cfgErr *model.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Contains(t, cfgErr.Reason, tt.reason)
		})
	}
}

func TestCategory_MissingAndUnknown(t *testing.T) {
	c, err := model.NewCategory("advisor_verification", advisorDefinitions())
	require.NoError(t, err)

	input := model.EvaluationInput{
		"fee_collection_method": 1,
		"zeta":                  1,
		"alpha":                 0,
	}

	assert.Equal(t, []string{"sebi_registration_check", "contact_verification", "communication_pattern"}, c.Missing(input))
	assert.Equal(t, []string{"alpha", "zeta"}, c.Unknown(input))
	assert.Empty(t, c.Unknown(model.EvaluationInput{}))
}

func TestEvaluationInput_Validate(t *testing.T) {
	assert.NoError(t, model.EvaluationInput{"a": 0, "b": 0.5, "c": 1}.Validate())
	assert.NoError(t, model.EvaluationInput{}.Validate())

	for _, v := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := model.EvaluationInput{"a": v}.Validate()
		assert.ErrorIs(t, err, model.ErrSeverityOutOfRange, "value %v", v)
	}
}

func TestEvaluationInput_Severity(t *testing.T) {
	in := model.EvaluationInput{"a": 0.7}
	assert.Equal(t, 0.7, in.Severity("a"))
	assert.Equal(t, 0.0, in.Severity("missing"))
	assert.Equal(t, 1.0, model.Flag(true))
	assert.Equal(t, 0.0, model.Flag(false))
}

func TestErrorMessages(t *testing.T) {
	err := &model.ConfigurationError{Category: "c", Indicator: "i", Reason: "weight must be in (0,1]"}
	assert.Equal(t, `configuration error: category "c": indicator "i": weight must be in (0,1]`, err.Error())

	bare := &model.ConfigurationError{Reason: "rules document is empty"}
	assert.Equal(t, "configuration error: rules document is empty", bare.Error())

	unknown := &model.UnknownIndicatorError{Category: "c", Indicators: []string{"a", "b"}}
	assert.Equal(t, `unknown indicator(s) for category "c": a, b`, unknown.Error())
}
