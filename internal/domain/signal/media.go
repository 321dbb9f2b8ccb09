package signal

import (
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
)

// Indicator names for deepfake_detection.
const (
	IndicatorFacialInconsistencies = "facial_inconsistencies"
	IndicatorAudioQuality          = "audio_quality_analysis"
	IndicatorMetadataVerification  = "metadata_verification"
	IndicatorBehavioralPatterns    = "behavioral_patterns"
)

// MediaAnalysis holds per-factor authenticity scores in [0,1] (1 = genuine)
// from upstream media forensics. Nil means the factor was not measured,
// e.g. facial analysis on an audio-only file.
type MediaAnalysis struct {
	FacialConsistency     *float64 `json:"facial_consistency,omitempty"`
	AudioAuthenticity     *float64 `json:"audio_authenticity,omitempty"`
	MetadataConsistency   *float64 `json:"metadata_consistency,omitempty"`
	BehavioralConsistency *float64 `json:"behavioral_consistency,omitempty"`
}

// MediaIndicators maps authenticity scores to deepfake_detection severities
// (severity = 1 - authenticity). Unmeasured factors are left out and count
// as missing.
func MediaIndicators(m MediaAnalysis) model.EvaluationInput {
	input := make(model.EvaluationInput, 4)
	set := func(name string, authenticity *float64) {
		if authenticity != nil {
			input[name] = clamp01(1 - clamp01(*authenticity))
		}
	}
	set(IndicatorFacialInconsistencies, m.FacialConsistency)
	set(IndicatorAudioQuality, m.AudioAuthenticity)
	set(IndicatorMetadataVerification, m.MetadataConsistency)
	set(IndicatorBehavioralPatterns, m.BehavioralConsistency)
	return input
}
