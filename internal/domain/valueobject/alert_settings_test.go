package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
)

func TestAlertSettings_ShouldAlert(t *testing.T) {
	tests := []struct {
		name     string
		settings valueobject.AlertSettings
		tier     valueobject.RiskTier
		expected bool
	}{
		{"default alerts on high", valueobject.DefaultAlertSettings(), valueobject.RiskTierHigh, true},
		{"default alerts on medium", valueobject.DefaultAlertSettings(), valueobject.RiskTierMedium, true},
		{"default never alerts on low", valueobject.DefaultAlertSettings(), valueobject.RiskTierLow, false},
		{"high disabled", valueobject.AlertSettings{MediumRisk: true}, valueobject.RiskTierHigh, false},
		{"medium disabled", valueobject.AlertSettings{HighRisk: true}, valueobject.RiskTierMedium, false},
		{"zero tier", valueobject.DefaultAlertSettings(), valueobject.RiskTier{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.settings.ShouldAlert(tt.tier))
		})
	}
}
