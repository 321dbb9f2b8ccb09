package model

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/event"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/pkg/events"
)

// RiskEvaluation is the aggregate recording one scored evaluation and the
// events it produced.
type RiskEvaluation struct {
	assessedAt time.Time
	category   string
	missing    []string
	result     ScoreResult
	events.EventCollector
	id uuid.UUID
}

// NewRiskEvaluation wraps a score result and records a RiskAssessed event.
func NewRiskEvaluation(category string, result ScoreResult, missing []string, assessedAt time.Time) *RiskEvaluation {
	e := &RiskEvaluation{
		id:         uuid.New(),
		category:   category,
		result:     result,
		missing:    slices.Clone(missing),
		assessedAt: assessedAt.UTC(),
	}

	e.Record(event.NewRiskAssessed(
		e.id, e.category, e.result.Tier.String(),
		e.result.RawScore, e.result.NormalizedScore, e.result.TriggeredCritical,
		slices.Clone(e.result.Actions), slices.Clone(e.missing),
		e.assessedAt,
	))

	return e
}

// RaiseAlert records an AlertRaised event when the settings flag the
// evaluation's tier. It reports whether an alert was raised.
func (e *RiskEvaluation) RaiseAlert(settings valueobject.AlertSettings) bool {
	if !settings.ShouldAlert(e.result.Tier) {
		return false
	}
	e.Record(event.NewAlertRaised(
		e.id, e.category, e.result.Tier.String(),
		e.result.NormalizedScore, e.result.TriggeredCritical,
		slices.Clone(e.result.Actions),
		e.assessedAt,
	))
	return true
}

// --- Accessors ---

func (e *RiskEvaluation) ID() uuid.UUID               { return e.id }
func (e *RiskEvaluation) Category() string            { return e.category }
func (e *RiskEvaluation) MissingIndicators() []string { return slices.Clone(e.missing) }
func (e *RiskEvaluation) AssessedAt() time.Time       { return e.assessedAt }

// Result returns the score result; the actions slice is a copy.
func (e *RiskEvaluation) Result() ScoreResult {
	r := e.result
	r.Actions = slices.Clone(r.Actions)
	return r
}
