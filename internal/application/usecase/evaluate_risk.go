package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/application/dto"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/port"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/service"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/signal"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
)

// ErrInvalidRequest is returned when a request carries no usable evidence or
// contradicts itself.
var ErrInvalidRequest = errors.New("invalid evaluation request")

// PublishError is returned when an evaluation was scored but its events could
// not be published.
type PublishError struct {
	EvaluationID uuid.UUID
	Err          error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to publish events for evaluation %s: %v", e.EvaluationID, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }

// Error reasons used for metrics labels and error records.
const (
	ReasonInvalidRequest     = "invalid_request"
	ReasonUnknownCategory    = "unknown_category"
	ReasonUnknownIndicator   = "unknown_indicator"
	ReasonSeverityOutOfRange = "severity_out_of_range"
	ReasonConfiguration      = "configuration"
	ReasonPublish            = "publish"
	ReasonInternal           = "internal"
)

// EvaluateRisk is the use case for scoring one category evaluation and
// publishing its events.
type EvaluateRisk struct {
	rules     *model.RuleSet
	scorer    service.Evaluator
	publisher port.EventPublisher
	metrics   port.MetricsRecorder
	logger    *slog.Logger
	now       func() time.Time
	alerts    valueobject.AlertSettings
}

// NewEvaluateRisk creates a new EvaluateRisk use case.
func NewEvaluateRisk(
	rules *model.RuleSet,
	scorer service.Evaluator,
	publisher port.EventPublisher,
	metrics port.MetricsRecorder,
	alerts valueobject.AlertSettings,
	logger *slog.Logger,
) *EvaluateRisk {
	return &EvaluateRisk{
		rules:     rules,
		scorer:    scorer,
		publisher: publisher,
		metrics:   metrics,
		alerts:    alerts,
		logger:    logger,
		now:       time.Now,
	}
}

// Execute resolves the category and evidence, scores it, records metrics and
// publishes the resulting domain events.
func (uc *EvaluateRisk) Execute(ctx context.Context, req dto.EvaluateRiskRequest) (dto.EvaluationResponse, error) {
	// 1. Work out which category is being scored and with what severities.
	ev, err := resolveEvidence(req)
	if err != nil {
		uc.metrics.RecordError(req.Category, ReasonInvalidRequest)
		return dto.EvaluationResponse{}, err
	}

	name, input := ev.category, ev.input
	category, ok := uc.rules.Category(name)
	if !ok {
		uc.metrics.RecordError(name, ReasonUnknownCategory)
		return dto.EvaluationResponse{}, fmt.Errorf("%w: %q", model.ErrUnknownCategory, name)
	}

	// 2. Score.
	result, err := uc.scorer.Evaluate(category, input)
	if err != nil {
		uc.metrics.RecordError(name, ErrorReason(err))
		uc.logger.WarnContext(ctx, "evaluation rejected",
			slog.String("category", name),
			slog.String("request_id", req.RequestID),
			slog.String("error", err.Error()),
		)
		return dto.EvaluationResponse{}, fmt.Errorf("failed to evaluate %s: %w", name, err)
	}

	// 3. Build the aggregate; it records its own events.
	evaluation := model.NewRiskEvaluation(name, result, category.Missing(input), uc.now())
	alerted := evaluation.RaiseAlert(uc.alerts)

	uc.metrics.RecordEvaluation(name, result)

	uc.logger.InfoContext(ctx, "risk evaluated",
		slog.String("evaluation_id", evaluation.ID().String()),
		slog.String("request_id", req.RequestID),
		slog.String("category", name),
		slog.String("tier", result.Tier.String()),
		slog.Float64("normalized_score", result.NormalizedScore),
		slog.Bool("triggered_critical", result.TriggeredCritical),
		slog.Bool("alert_raised", alerted),
		slog.Int("events", evaluation.PendingEvents()),
	)

	// 4. Publish domain events.
	if evts := evaluation.ClearEvents(); len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, evts...); err != nil {
			uc.metrics.RecordError(name, ReasonPublish)
			return dto.EvaluationResponse{}, &PublishError{EvaluationID: evaluation.ID(), Err: err}
		}
	}

	resp := dto.FromModel(evaluation)
	resp.RequestID = req.RequestID
	resp.RiskFactors = ev.factors
	resp.AlertRaised = alerted
	if ev.advise != nil {
		resp.Recommendations = ev.advise(result.Tier, ev.factors)
	}
	return resp, nil
}

// ErrorReason maps an evaluation error to a short, bounded reason label.
func ErrorReason(err error) string {
	var unknown *model.UnknownIndicatorError
	var cfg *model.ConfigurationError
	var pub *PublishError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &pub):
		return ReasonPublish
	case errors.Is(err, ErrInvalidRequest):
		return ReasonInvalidRequest
	case errors.Is(err, model.ErrUnknownCategory):
		return ReasonUnknownCategory
	case errors.Is(err, model.ErrSeverityOutOfRange):
		return ReasonSeverityOutOfRange
	case errors.As(err, &unknown):
		return ReasonUnknownIndicator
	case errors.As(err, &cfg):
		return ReasonConfiguration
	default:
		return ReasonInternal
	}
}

// evidence is a request resolved to a category and its severities.
type evidence struct {
	category string
	input    model.EvaluationInput
	factors  []string
	advise   func(valueobject.RiskTier, []string) []string
}

// resolveEvidence picks the single evidence source on the request and turns
// it into indicator severities. Evidence blocks imply their category.
func resolveEvidence(req dto.EvaluateRiskRequest) (evidence, error) {
	var (
		ev      evidence
		implied string
		sources int
		err     error
	)

	if req.Indicators != nil {
		sources++
		ev.input = model.EvaluationInput(maps.Clone(req.Indicators))
	}
	if req.Advisor != nil {
		sources++
		implied = signal.CategoryAdvisorVerification
		ev.input = signal.AdvisorIndicators(*req.Advisor)
		ev.factors = signal.AdvisorRiskFactors(*req.Advisor)
		ev.advise = signal.AdvisorRecommendations
	}
	if req.Social != nil {
		sources++
		implied = signal.CategorySocialMediaMonitoring
		ev.input = signal.SocialIndicators(*req.Social)
	}
	if req.Media != nil {
		sources++
		implied = signal.CategoryDeepfakeDetection
		ev.input = signal.MediaIndicators(*req.Media)
	}
	if req.Announcement != nil {
		sources++
		implied = signal.CategoryAnnouncementVerification
		err = req.Announcement.Validate()
		ev.input = signal.AnnouncementIndicators(*req.Announcement)
		ev.factors = signal.AnnouncementRiskFactors(*req.Announcement)
	}
	if req.App != nil {
		sources++
		implied = signal.CategoryAppDetection
		err = req.App.Validate()
		ev.input = signal.AppIndicators(*req.App)
		ev.factors = signal.AppRiskFactors(*req.App)
	}

	switch {
	case sources == 0:
		return evidence{}, fmt.Errorf("%w: no indicators or evidence supplied", ErrInvalidRequest)
	case sources > 1:
		return evidence{}, fmt.Errorf("%w: supply exactly one of indicators, advisor, social, media, announcement or app", ErrInvalidRequest)
	case err != nil:
		return evidence{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	name := strings.TrimSpace(req.Category)
	switch {
	case name == "" && implied == "":
		return evidence{}, fmt.Errorf("%w: category is required with explicit indicators", ErrInvalidRequest)
	case name == "":
		name = implied
	case implied != "" && implied != name:
		return evidence{}, fmt.Errorf("%w: %s evidence cannot be scored as %q", ErrInvalidRequest, implied, name)
	}

	ev.category = name
	return ev, nil
}
