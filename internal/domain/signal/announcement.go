package signal

import (
	"fmt"
	"strings"
	"time"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
)

// Indicator names for announcement_verification.
const (
	IndicatorSourceVerification  = "source_verification"
	IndicatorPromotionalLanguage = "promotional_language"
	IndicatorCompanyCredibility  = "company_credibility"
	IndicatorContentQuality      = "content_quality"
	IndicatorReleaseTiming       = "release_timing"
	IndicatorCrossVerification   = "cross_verification"
)

const (
	briefContentChars    = 100
	detailedContentChars = 500
	longTitleChars       = 100
)

// Business hours are 09:00 to 17:59 in the announcement's own time zone.
const (
	businessOpenHour  = 9
	businessCloseHour = 17
)

var (
	officialAnnouncementSources = []string{"bse.com", "nseindia.com", "sebi.gov.in", "official", "exchange"}

	suspiciousAnnouncementTerms = []string{
		"guaranteed returns", "exclusive offer", "limited time", "act now",
		"get rich quick", "double your money", "risk-free", "insider information",
	}

	suspiciousCompanyTerms = []string{"quick profit", "easy money", "instant wealth", "guaranteed"}
)

// Announcement is a corporate announcement an investor wants checked.
type Announcement struct {
	Company string `json:"company"`
	Title   string `json:"title"`
	Text    string `json:"text"`
	Source  string `json:"source"`
	// ReleasedAt is when the announcement was published. Nil skips the
	// timing check.
	ReleasedAt *time.Time `json:"released_at,omitempty"`
	// CrossVerified reports whether an external source confirmed the
	// announcement. Nil means no cross-check was made.
	CrossVerified *bool `json:"cross_verified,omitempty"`
}

// Validate reports whether the announcement names a company and a title.
func (a Announcement) Validate() error {
	if strings.TrimSpace(a.Company) == "" || strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: announcement needs a company and a title", ErrIncompleteEvidence)
	}
	return nil
}

// AnnouncementIndicators maps an announcement to announcement_verification
// severities. Timing and cross-verification are left out when not supplied.
func AnnouncementIndicators(a Announcement) model.EvaluationInput {
	input := model.EvaluationInput{
		IndicatorSourceVerification:  announcementSourceSeverity(a.Source),
		IndicatorPromotionalLanguage: clamp01(float64(len(promotionalMatches(a))) / 2),
		IndicatorCompanyCredibility:  model.Flag(containsAny(a.Company, suspiciousCompanyTerms)),
		IndicatorContentQuality:      contentSeverity(a),
	}
	if a.ReleasedAt != nil {
		input[IndicatorReleaseTiming] = timingSeverity(*a.ReleasedAt)
	}
	if a.CrossVerified != nil {
		input[IndicatorCrossVerification] = model.Flag(!*a.CrossVerified)
	}
	return input
}

// AnnouncementRiskFactors lists the issues found in an announcement.
func AnnouncementRiskFactors(a Announcement) []string {
	var factors []string
	switch announcementSourceSeverity(a.Source) {
	case 1:
		factors = append(factors, "No source information provided")
	case 0.5:
		factors = append(factors, "Source is not an official exchange or regulatory platform")
	}
	if matches := promotionalMatches(a); len(matches) > 0 {
		factors = append(factors, "Suspicious promotional language detected: "+strings.Join(matches, ", "))
	}
	if containsAny(a.Company, suspiciousCompanyTerms) {
		factors = append(factors, "Company name contains suspicious promotional terms")
	}
	if len(strings.TrimSpace(a.Text)) < briefContentChars {
		factors = append(factors, "Announcement content is unusually brief and lacks detail")
	}
	if len(strings.TrimSpace(a.Title)) > longTitleChars {
		factors = append(factors, "Unusually long announcement title")
	}
	if a.ReleasedAt != nil {
		switch timingSeverity(*a.ReleasedAt) {
		case 1:
			factors = append(factors, "Announcement released on a weekend")
		case 0.5:
			factors = append(factors, "Announcement released outside business hours")
		}
	}
	if a.CrossVerified != nil && !*a.CrossVerified {
		factors = append(factors, "Could not cross-verify announcement with external sources")
	}
	return factors
}

// announcementSourceSeverity is 0 for an official source, 0.5 for any other
// named source and 1 when there is none.
func announcementSourceSeverity(source string) float64 {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return 1
	case containsAny(source, officialAnnouncementSources):
		return 0
	default:
		return 0.5
	}
}

func promotionalMatches(a Announcement) []string {
	content := strings.ToLower(a.Text + " " + a.Title)
	var matches []string
	for _, term := range suspiciousAnnouncementTerms {
		if strings.Contains(content, term) {
			matches = append(matches, term)
		}
	}
	return matches
}

// contentSeverity weighs a thin body more heavily than a long title. A
// detailed body offsets a long title.
func contentSeverity(a Announcement) float64 {
	text := len(strings.TrimSpace(a.Text))
	var s float64
	if text < briefContentChars {
		s += 0.7
	}
	if len(strings.TrimSpace(a.Title)) > longTitleChars {
		s += 0.3
	}
	if text > detailedContentChars {
		s -= 0.3
	}
	return clamp01(s)
}

func timingSeverity(t time.Time) float64 {
	switch {
	case t.Weekday() == time.Saturday || t.Weekday() == time.Sunday:
		return 1
	case t.Hour() < businessOpenHour || t.Hour() > businessCloseHour:
		return 0.5
	default:
		return 0
	}
}

func containsAny(s string, terms []string) bool {
	s = strings.ToLower(s)
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
