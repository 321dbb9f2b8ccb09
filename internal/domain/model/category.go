package model

import (
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// IndicatorDefinition is a single weighted signal within a category.
type IndicatorDefinition struct {
	Name string
	// Threshold is the human-readable trigger description from the rules document.
	Threshold string
	Weight    float64
	Critical  bool
}

// Category is an immutable, ordered group of indicator definitions.
type Category struct {
	index       map[string]int
	name        string
	indicators  []IndicatorDefinition
	weights     []decimal.Decimal
	weightTotal decimal.Decimal
}

// NewCategory validates the definitions and builds a Category. Weights must be
// finite and in (0,1]; names must be non-empty and unique. The definitions are
// copied, so later changes to the argument do not affect the category.
func NewCategory(name string, indicators []IndicatorDefinition) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ConfigurationError{Reason: "category name is required"}
	}
	if len(indicators) == 0 {
		return nil, &ConfigurationError{Category: name, Reason: "at least one indicator is required"}
	}

	c := &Category{
		name:        name,
		indicators:  make([]IndicatorDefinition, 0, len(indicators)),
		weights:     make([]decimal.Decimal, 0, len(indicators)),
		index:       make(map[string]int, len(indicators)),
		weightTotal: decimal.Zero,
	}

	for _, def := range indicators {
		def.Name = strings.TrimSpace(def.Name)
		if def.Name == "" {
			return nil, &ConfigurationError{Category: name, Reason: "indicator name is required"}
		}
		if _, dup := c.index[def.Name]; dup {
			return nil, &ConfigurationError{Category: name, Indicator: def.Name, Reason: "duplicate indicator"}
		}
		if math.IsNaN(def.Weight) || math.IsInf(def.Weight, 0) || def.Weight <= 0 || def.Weight > 1 {
			return nil, &ConfigurationError{Category: name, Indicator: def.Name, Reason: "weight must be in (0,1]"}
		}

		w := decimal.NewFromFloat(def.Weight)
		c.index[def.Name] = len(c.indicators)
		c.indicators = append(c.indicators, def)
		c.weights = append(c.weights, w)
		c.weightTotal = c.weightTotal.Add(w)
	}

	return c, nil
}

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Len returns the number of indicators.
func (c *Category) Len() int { return len(c.indicators) }

// Indicators returns a copy of the definitions in declaration order.
func (c *Category) Indicators() []IndicatorDefinition {
	return slices.Clone(c.indicators)
}

// Indicator looks up a definition by name.
func (c *Category) Indicator(name string) (IndicatorDefinition, bool) {
	i, ok := c.index[name]
	if !ok {
		return IndicatorDefinition{}, false
	}
	return c.indicators[i], true
}

// WeightTotal returns the exact sum of all weights.
func (c *Category) WeightTotal() decimal.Decimal { return c.weightTotal }

// Weights returns the exact weights in declaration order.
func (c *Category) Weights() []decimal.Decimal {
	return slices.Clone(c.weights)
}

// Missing lists the category's indicators absent from the input, in declaration order.
func (c *Category) Missing(input EvaluationInput) []string {
	var missing []string
	for _, def := range c.indicators {
		if _, ok := input[def.Name]; !ok {
			missing = append(missing, def.Name)
		}
	}
	return missing
}

// Unknown lists input keys the category does not define, sorted.
func (c *Category) Unknown(input EvaluationInput) []string {
	var unknown []string
	for key := range input {
		if _, ok := c.index[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	return unknown
}
