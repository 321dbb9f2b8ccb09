package signal

import (
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
)

// Indicator names for social_media_monitoring.
const (
	IndicatorMessageFrequencySpike = "message_frequency_spike"
	IndicatorCoordinationPattern   = "coordination_pattern"
	IndicatorBotDetection          = "bot_detection"
	IndicatorSentimentManipulation = "sentiment_manipulation"
)

const (
	// spikeIncreasePct is the 24h mention growth treated as a full spike.
	spikeIncreasePct = 500.0
	// coordinatedAccounts is the number of accounts posting similar content
	// treated as full coordination.
	coordinatedAccounts = 5.0
)

// SocialActivity summarises chatter about a security over the last 24 hours.
type SocialActivity struct {
	Symbol string `json:"symbol"`
	// BaselineMentions and CurrentMentions are mention counts for the previous
	// and the current 24h window.
	BaselineMentions int `json:"baseline_mentions"`
	CurrentMentions  int `json:"current_mentions"`
	// SimilarContentAccounts counts accounts posting near-identical promotions.
	SimilarContentAccounts int `json:"similar_content_accounts"`
	// BotShare is the fraction of participating accounts classified as automated.
	BotShare float64 `json:"bot_share"`
	// SentimentSurge is the jump in positive sentiment, in [0,1].
	SentimentSurge float64 `json:"sentiment_surge"`
}

// MentionIncreasePct returns the percentage growth in mentions. A zero
// baseline with any current activity counts as a full spike.
func (a SocialActivity) MentionIncreasePct() float64 {
	if a.BaselineMentions <= 0 {
		if a.CurrentMentions > 0 {
			return spikeIncreasePct
		}
		return 0
	}
	return float64(a.CurrentMentions-a.BaselineMentions) / float64(a.BaselineMentions) * 100
}

// SocialIndicators maps activity to social_media_monitoring severities.
func SocialIndicators(a SocialActivity) model.EvaluationInput {
	return model.EvaluationInput{
		IndicatorMessageFrequencySpike: clamp01(a.MentionIncreasePct() / spikeIncreasePct),
		IndicatorCoordinationPattern:   clamp01(float64(a.SimilarContentAccounts) / coordinatedAccounts),
		IndicatorBotDetection:          clamp01(a.BotShare),
		IndicatorSentimentManipulation: clamp01(a.SentimentSurge),
	}
}
