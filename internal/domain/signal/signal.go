// Package signal derives indicator severities from observed evidence for
// the built-in scoring categories.
package signal

import (
	"errors"
	"math"
)

// Built-in category names.
const (
	CategoryAdvisorVerification      = "advisor_verification"
	CategorySocialMediaMonitoring    = "social_media_monitoring"
	CategoryDeepfakeDetection        = "deepfake_detection"
	CategoryAnnouncementVerification = "announcement_verification"
	CategoryAppDetection             = "app_detection"
)

// ErrIncompleteEvidence is returned when an evidence block lacks the fields
// its checks need.
var ErrIncompleteEvidence = errors.New("incomplete evidence")

// clamp01 bounds v to [0,1]; NaN maps to 0.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
