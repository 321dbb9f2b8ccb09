package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/signal"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
)

func legitimateAdvisor() signal.AdvisorProfile {
	return signal.AdvisorProfile{
		Name:               "Asha Menon",
		RegistrationNumber: "INA000012345",
		Contact:            "asha@menonadvisory.in",
		Company:            "Menon Advisory LLP",
		FeeCollection:      "CeFCoM",
	}
}

func TestValidRegistrationNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"INA000012345", true},
		{"ina000012345", true},
		{" INA000012345 ", true},
		{"INA00001234", false},
		{"INH000012345", false},
		{"INA0000123456", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, signal.ValidRegistrationNumber(tt.input))
		})
	}
}

func TestAdvisorIndicators_Legitimate(t *testing.T) {
	input := signal.AdvisorIndicators(legitimateAdvisor())

	assert.Equal(t, model.EvaluationInput{
		signal.IndicatorSEBIRegistration:     0,
		signal.IndicatorContactVerification:  0,
		signal.IndicatorFeeCollectionMethod:  0,
		signal.IndicatorCommunicationPattern: 0,
	}, input)
	assert.Empty(t, signal.AdvisorRiskFactors(legitimateAdvisor()))
}

func TestAdvisorIndicators_RedFlags(t *testing.T) {
	p := signal.AdvisorProfile{
		Name:               "Quick Profit Guru",
		RegistrationNumber: "REG-123",
		Contact:            "telegram group",
		FeeCollection:      "personal account",
		UnsolicitedContact: true,
	}

	input := signal.AdvisorIndicators(p)

	assert.Equal(t, 1.0, input[signal.IndicatorSEBIRegistration])
	assert.Equal(t, 0.5, input[signal.IndicatorContactVerification])
	assert.Equal(t, 1.0, input[signal.IndicatorFeeCollectionMethod])
	assert.Equal(t, 1.0, input[signal.IndicatorCommunicationPattern])

	factors := signal.AdvisorRiskFactors(p)
	assert.Contains(t, factors, "Invalid or suspicious registration number format")
	assert.Contains(t, factors, "Incomplete or invalid contact information")
	assert.Contains(t, factors, "Fees collected outside regulated channels")
	assert.Contains(t, factors, "Promotional terms promising easy or guaranteed returns")
	assert.Contains(t, factors, "Cold call or unsolicited message")
	assert.Contains(t, factors, "No associated company or firm mentioned")
}

func TestAdvisorIndicators_MissingDetails(t *testing.T) {
	p := signal.AdvisorProfile{Name: "R. Sharma", Company: "Sharma Capital"}

	input := signal.AdvisorIndicators(p)

	assert.Equal(t, 1.0, input[signal.IndicatorSEBIRegistration])
	assert.Equal(t, 1.0, input[signal.IndicatorContactVerification])
	assert.Equal(t, 0.5, input[signal.IndicatorFeeCollectionMethod], "unknown fee channel")
	assert.Equal(t, 0.0, input[signal.IndicatorCommunicationPattern])

	factors := signal.AdvisorRiskFactors(p)
	assert.Contains(t, factors, "No SEBI registration number provided")
	assert.Contains(t, factors, "No contact information provided")
}

func TestAdvisorIndicators_PhoneContactAccepted(t *testing.T) {
	p := legitimateAdvisor()
	p.Contact = "+91 9876543210"

	assert.Equal(t, 0.0, signal.AdvisorIndicators(p)[signal.IndicatorContactVerification])
}

func TestAdvisorIndicators_PitchTerms(t *testing.T) {
	p := legitimateAdvisor()
	p.Pitch = "Guaranteed 30% monthly returns"

	assert.Equal(t, 1.0, signal.AdvisorIndicators(p)[signal.IndicatorCommunicationPattern])
}

func TestAdvisorIndicators_NoCompany(t *testing.T) {
	p := legitimateAdvisor()
	p.Company = ""

	assert.Equal(t, 0.25, signal.AdvisorIndicators(p)[signal.IndicatorCommunicationPattern])
}

func TestAdvisorRecommendations(t *testing.T) {
	tests := []struct {
		name     string
		tier     valueobject.RiskTier
		factors  []string
		first    string
		priority []string
	}{
		{
			name:  "high risk with registration and contact problems",
			tier:  valueobject.RiskTierHigh,
			first: "HIGH RISK: Do not engage with this advisor",
			factors: []string{
				"No SEBI registration number provided",
				"Incomplete or invalid contact information",
			},
			priority: []string{
				"Priority: check the registration number in the SEBI intermediary database",
				"Priority: obtain and verify official contact details",
			},
		},
		{
			name:     "medium risk with fee problem only",
			tier:     valueobject.RiskTierMedium,
			first:    "PROCEED WITH CAUTION: Additional verification required",
			factors:  []string{"Fees collected outside regulated channels"},
			priority: nil,
		},
		{
			name:  "low risk",
			tier:  valueobject.RiskTierLow,
			first: "Advisor appears legitimate based on the available information",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := signal.AdvisorRecommendations(tt.tier, tt.factors)

			require.Len(t, recs, 4+len(tt.priority))
			assert.Equal(t, tt.first, recs[0])
			assert.Equal(t, tt.priority, nilIfEmpty(recs[4:]))
		})
	}
}

func TestAdvisorRecommendations_FromProfile(t *testing.T) {
	p := legitimateAdvisor()
	p.RegistrationNumber = "12345"

	recs := signal.AdvisorRecommendations(valueobject.RiskTierHigh, signal.AdvisorRiskFactors(p))

	assert.Contains(t, recs, "Priority: check the registration number in the SEBI intermediary database")
	assert.NotContains(t, recs, "Priority: obtain and verify official contact details")
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
