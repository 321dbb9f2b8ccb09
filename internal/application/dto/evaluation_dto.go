package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/signal"
)

// EvaluateRiskRequest is the input DTO for the EvaluateRisk use case.
// Exactly one evidence source is used: explicit indicator severities, or one
// of the advisor, social, media, announcement or app blocks. Category may be
// omitted when an evidence block implies it.
type EvaluateRiskRequest struct {
	Indicators   map[string]float64     `json:"indicators,omitempty"`
	Advisor      *signal.AdvisorProfile `json:"advisor,omitempty"`
	Social       *signal.SocialActivity `json:"social,omitempty"`
	Media        *signal.MediaAnalysis  `json:"media,omitempty"`
	Announcement *signal.Announcement   `json:"announcement,omitempty"`
	App          *signal.AppListing     `json:"app,omitempty"`
	// RequestID is an optional caller correlation ID, echoed back.
	RequestID string `json:"request_id,omitempty"`
	Category  string `json:"category,omitempty"`
}

// EvaluationResponse is the output DTO returned after an evaluation.
type EvaluationResponse struct {
	AssessedAt        time.Time `json:"assessed_at"`
	Actions           []string  `json:"actions"`
	MissingIndicators []string  `json:"missing_indicators,omitempty"`
	RiskFactors       []string  `json:"risk_factors,omitempty"`
	Recommendations   []string  `json:"recommendations,omitempty"`
	ID                uuid.UUID `json:"id"`
	RequestID         string    `json:"request_id,omitempty"`
	Category          string    `json:"category"`
	Tier              string    `json:"tier"`
	RawScore          float64   `json:"raw_score"`
	NormalizedScore   float64   `json:"normalized_score"`
	TriggeredCritical bool      `json:"triggered_critical"`
	AlertRaised       bool      `json:"alert_raised"`
}

// ErrorResponse is written in place of an EvaluationResponse when a request fails.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty"`
	// EvaluationID is set when the request was scored but a later step failed.
	EvaluationID string `json:"evaluation_id,omitempty"`
	// Line is the 1-based input line, when the request came from a stream.
	Line     int    `json:"line,omitempty"`
	Category string `json:"category,omitempty"`
	Reason   string `json:"reason"`
	Error    string `json:"error"`
}

// FromModel maps a domain model to the response DTO.
func FromModel(e *model.RiskEvaluation) EvaluationResponse {
	result := e.Result()
	return EvaluationResponse{
		ID:                e.ID(),
		Category:          e.Category(),
		Tier:              result.Tier.String(),
		Actions:           result.Actions,
		RawScore:          result.RawScore,
		NormalizedScore:   result.NormalizedScore,
		TriggeredCritical: result.TriggeredCritical,
		MissingIndicators: e.MissingIndicators(),
		AssessedAt:        e.AssessedAt(),
	}
}
