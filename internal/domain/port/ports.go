package port

import (
	"context"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/pkg/events"
)

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, events ...events.DomainEvent) error
}

// MetricsRecorder defines the port for evaluation metrics.
type MetricsRecorder interface {
	// RecordEvaluation counts a completed evaluation.
	RecordEvaluation(category string, result model.ScoreResult)

	// RecordError counts a failed evaluation. Reason is a short, bounded label
	// such as "unknown_indicator".
	RecordError(category, reason string)
}
