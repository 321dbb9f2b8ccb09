package service

import "github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"

// Evaluator defines the interface for category risk evaluation.
// RiskScorer is the production implementation.
type Evaluator interface {
	Evaluate(category *model.Category, input model.EvaluationInput) (model.ScoreResult, error)
}
