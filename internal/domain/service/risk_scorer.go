package service

import (
	"github.com/shopspring/decimal"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
)

// CriticalSeverityThreshold is the severity a critical indicator must exceed
// to force the high tier.
const CriticalSeverityThreshold = 0.5

var one = decimal.NewFromInt(1)

// RiskScorer is a domain service that turns weighted indicator severities into
// a normalized score, a risk tier and the tier's response actions.
//
// It holds only immutable configuration and is safe for concurrent use.
type RiskScorer struct {
	actions model.ActionTable
	policy  valueobject.IndicatorPolicy
}

// NewRiskScorer creates a RiskScorer. The indicator policy decides whether
// unknown input keys are rejected (strict) or ignored (lenient).
func NewRiskScorer(actions model.ActionTable, policy valueobject.IndicatorPolicy) *RiskScorer {
	return &RiskScorer{
		actions: actions,
		policy:  policy,
	}
}

// Policy returns the scorer's indicator policy.
func (s *RiskScorer) Policy() valueobject.IndicatorPolicy {
	return s.policy
}

// Evaluate scores the input against the category.
//
// Indicators missing from the input count as severity 0. Weights and
// severities are accumulated in decimal so that band boundaries are exact.
// A critical indicator with severity above CriticalSeverityThreshold forces
// the high tier regardless of the weighted score.
func (s *RiskScorer) Evaluate(category *model.Category, input model.EvaluationInput) (model.ScoreResult, error) {
	if category == nil || category.Len() == 0 {
		return model.ScoreResult{}, &model.ConfigurationError{Reason: "category has no indicators"}
	}
	if s.actions.IsZero() {
		return model.ScoreResult{}, &model.ConfigurationError{Category: category.Name(), Reason: "response action table is empty"}
	}
	if err := input.Validate(); err != nil {
		return model.ScoreResult{}, err
	}
	if !s.policy.IsLenient() {
		if unknown := category.Unknown(input); len(unknown) > 0 {
			return model.ScoreResult{}, &model.UnknownIndicatorError{Category: category.Name(), Indicators: unknown}
		}
	}

	total := category.WeightTotal()
	if !total.IsPositive() {
		return model.ScoreResult{}, &model.ConfigurationError{Category: category.Name(), Reason: "indicator weights sum to zero"}
	}

	raw := decimal.Zero
	triggered := false
	weights := category.Weights()
	for i, def := range category.Indicators() {
		severity := input.Severity(def.Name)
		raw = raw.Add(weights[i].Mul(decimal.NewFromFloat(severity)))
		if def.Critical && severity > CriticalSeverityThreshold {
			triggered = true
		}
	}

	normalized := raw.Div(total)
	if normalized.GreaterThan(one) {
		normalized = one
	}

	tier := valueobject.RiskTierFromScore(normalized)
	if triggered {
		tier = valueobject.RiskTierHigh
	}

	return model.ScoreResult{
		RawScore:          raw.InexactFloat64(),
		NormalizedScore:   normalized.InexactFloat64(),
		Tier:              tier,
		TriggeredCritical: triggered,
		Actions:           s.actions.Actions(tier),
	}, nil
}
