package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/pkg/events"
)

const (
	// EventTypeRiskAssessed is emitted for every completed evaluation.
	EventTypeRiskAssessed = "fraudguard.risk.assessed"

	// EventTypeAlertRaised is emitted when an evaluation lands in a tier
	// that the alert settings flag.
	EventTypeAlertRaised = "fraudguard.alert.raised"

	aggregateType = "RiskEvaluation"
)

// RiskAssessed records the outcome of one category evaluation.
type RiskAssessed struct {
	events.BaseEvent
	Category          string   `json:"category"`
	Tier              string   `json:"tier"`
	Actions           []string `json:"actions"`
	MissingIndicators []string `json:"missing_indicators,omitempty"`
	RawScore          float64  `json:"raw_score"`
	NormalizedScore   float64  `json:"normalized_score"`
	TriggeredCritical bool     `json:"triggered_critical"`
}

// NewRiskAssessed creates a RiskAssessed event for the evaluation.
func NewRiskAssessed(
	evaluationID uuid.UUID,
	category, tier string,
	rawScore, normalizedScore float64,
	triggeredCritical bool,
	actions, missing []string,
	at time.Time,
) RiskAssessed {
	return RiskAssessed{
		BaseEvent:         events.NewBaseEvent(EventTypeRiskAssessed, evaluationID, aggregateType, at),
		Category:          category,
		Tier:              tier,
		RawScore:          rawScore,
		NormalizedScore:   normalizedScore,
		TriggeredCritical: triggeredCritical,
		Actions:           actions,
		MissingIndicators: missing,
	}
}

// AlertRaised is published so downstream notification channels can act on
// the response actions (alert, block, regulatory notification).
type AlertRaised struct {
	events.BaseEvent
	Category          string   `json:"category"`
	Tier              string   `json:"tier"`
	Actions           []string `json:"actions"`
	NormalizedScore   float64  `json:"normalized_score"`
	TriggeredCritical bool     `json:"triggered_critical"`
}

// NewAlertRaised creates an AlertRaised event for the evaluation.
func NewAlertRaised(
	evaluationID uuid.UUID,
	category, tier string,
	normalizedScore float64,
	triggeredCritical bool,
	actions []string,
	at time.Time,
) AlertRaised {
	return AlertRaised{
		BaseEvent:         events.NewBaseEvent(EventTypeAlertRaised, evaluationID, aggregateType, at),
		Category:          category,
		Tier:              tier,
		NormalizedScore:   normalizedScore,
		TriggeredCritical: triggeredCritical,
		Actions:           actions,
	}
}
