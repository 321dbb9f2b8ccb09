package model

import (
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
)

// ScoreResult is the outcome of evaluating one category.
type ScoreResult struct {
	Tier              valueobject.RiskTier `json:"tier"`
	Actions           []string             `json:"actions"`
	RawScore          float64              `json:"raw_score"`
	NormalizedScore   float64              `json:"normalized_score"`
	TriggeredCritical bool                 `json:"triggered_critical"`
}
