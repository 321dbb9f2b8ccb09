package valueobject

// AlertSettings selects which tiers raise an alert in addition to the
// regular assessment record. Low risk never alerts.
type AlertSettings struct {
	HighRisk   bool
	MediumRisk bool
}

// DefaultAlertSettings alerts on high and medium risk.
func DefaultAlertSettings() AlertSettings {
	return AlertSettings{HighRisk: true, MediumRisk: true}
}

// ShouldAlert reports whether an evaluation in the given tier raises an alert.
func (s AlertSettings) ShouldAlert(tier RiskTier) bool {
	switch {
	case tier.Equal(RiskTierHigh):
		return s.HighRisk
	case tier.Equal(RiskTierMedium):
		return s.MediumRisk
	default:
		return false
	}
}
