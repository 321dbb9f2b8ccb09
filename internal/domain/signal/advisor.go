package signal

import (
	"regexp"
	"strings"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
)

// Indicator names for advisor_verification.
const (
	IndicatorSEBIRegistration     = "sebi_registration_check"
	IndicatorContactVerification  = "contact_verification"
	IndicatorFeeCollectionMethod  = "fee_collection_method"
	IndicatorCommunicationPattern = "communication_pattern"
)

// Fee collection channels.
const (
	FeeChannelCeFCoM          = "cefcom"
	FeeChannelValidatedUPI    = "validated_upi"
	FeeChannelBankTransfer    = "registered_bank_account"
	FeeChannelPersonalAccount = "personal_account"
	FeeChannelCash            = "cash"
	FeeChannelCrypto          = "crypto"
	FeeChannelGiftCard        = "gift_card"
)

var (
	// SEBI investment adviser numbers are "INA" followed by nine digits.
	registrationPattern = regexp.MustCompile(`(?i)^INA\d{9}$`)
	phonePattern        = regexp.MustCompile(`\d{10}`)

	promotionalTerms = []string{"quick", "instant", "guaranteed", "easy money", "assured returns", "double your"}

	cleanFeeChannels = map[string]bool{
		FeeChannelCeFCoM:       true,
		FeeChannelValidatedUPI: true,
		FeeChannelBankTransfer: true,
	}
	redFlagFeeChannels = map[string]bool{
		FeeChannelPersonalAccount: true,
		FeeChannelCash:            true,
		FeeChannelCrypto:          true,
		FeeChannelGiftCard:        true,
	}
)

// AdvisorProfile is what an investor knows about someone offering advice.
type AdvisorProfile struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registration_number"`
	Contact            string `json:"contact"`
	Company            string `json:"company"`
	FeeCollection      string `json:"fee_collection"`
	Pitch              string `json:"pitch"`
	UnsolicitedContact bool   `json:"unsolicited_contact"`
}

// ValidRegistrationNumber reports whether s has the SEBI investment adviser format.
func ValidRegistrationNumber(s string) bool {
	return registrationPattern.MatchString(strings.TrimSpace(s))
}

// AdvisorIndicators maps a profile to advisor_verification severities.
//
//   - sebi_registration_check: 1 when the number is missing or malformed.
//   - contact_verification: 1 when no contact is given, 0.5 when it carries
//     neither an email address nor a 10-digit phone number.
//   - fee_collection_method: 0 for CeFCoM, validated UPI or a registered bank
//     account; 1 for personal accounts, cash, crypto or gift cards; 0.5 when
//     unknown (not enough to trip the critical threshold on its own).
//   - communication_pattern: 1 for promotional terms in the name or pitch or
//     for unsolicited contact; 0.25 when no firm is named.
func AdvisorIndicators(p AdvisorProfile) model.EvaluationInput {
	return model.EvaluationInput{
		IndicatorSEBIRegistration:     model.Flag(!ValidRegistrationNumber(p.RegistrationNumber)),
		IndicatorContactVerification:  contactSeverity(p.Contact),
		IndicatorFeeCollectionMethod:  feeSeverity(p.FeeCollection),
		IndicatorCommunicationPattern: communicationSeverity(p),
	}
}

// AdvisorRiskFactors lists human-readable reasons behind the severities.
func AdvisorRiskFactors(p AdvisorProfile) []string {
	var factors []string
	switch reg := strings.TrimSpace(p.RegistrationNumber); {
	case reg == "":
		factors = append(factors, "No SEBI registration number provided")
	case !ValidRegistrationNumber(reg):
		factors = append(factors, "Invalid or suspicious registration number format")
	}
	switch contactSeverity(p.Contact) {
	case 1:
		factors = append(factors, "No contact information provided")
	case 0.5:
		factors = append(factors, "Incomplete or invalid contact information")
	}
	if redFlagFeeChannels[normalizeChannel(p.FeeCollection)] {
		factors = append(factors, "Fees collected outside regulated channels")
	}
	if hasPromotionalTerms(p.Name) || hasPromotionalTerms(p.Pitch) {
		factors = append(factors, "Promotional terms promising easy or guaranteed returns")
	}
	if p.UnsolicitedContact {
		factors = append(factors, "Cold call or unsolicited message")
	}
	if strings.TrimSpace(p.Company) == "" {
		factors = append(factors, "No associated company or firm mentioned")
	}
	return factors
}

// AdvisorRecommendations returns investor guidance for an advisor check: a
// tier-level block followed by priorities for registration or contact
// problems among factors.
func AdvisorRecommendations(tier valueobject.RiskTier, factors []string) []string {
	var recs []string
	switch {
	case tier.Equal(valueobject.RiskTierHigh):
		recs = append(recs,
			"HIGH RISK: Do not engage with this advisor",
			"Report the advisor to SEBI through the SCORES complaints system",
			"Verify all claims independently through official channels",
			"Do not make any payments or share personal information",
		)
	case tier.Equal(valueobject.RiskTierMedium):
		recs = append(recs,
			"PROCEED WITH CAUTION: Additional verification required",
			"Verify SEBI registration on the official website",
			"Request proper documentation and a Letter of Engagement",
			"Check the fee structure and payment methods carefully",
		)
	default:
		recs = append(recs,
			"Advisor appears legitimate based on the available information",
			"Still verify SEBI registration independently",
			"Sign a Letter of Engagement before receiving services",
			"Keep records of all interactions",
		)
	}
	if anyFactorMentions(factors, "registration") {
		recs = append(recs, "Priority: check the registration number in the SEBI intermediary database")
	}
	if anyFactorMentions(factors, "contact") {
		recs = append(recs, "Priority: obtain and verify official contact details")
	}
	return recs
}

func anyFactorMentions(factors []string, term string) bool {
	for _, f := range factors {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func contactSeverity(contact string) float64 {
	contact = strings.TrimSpace(contact)
	switch {
	case contact == "":
		return 1
	case strings.Contains(contact, "@") || phonePattern.MatchString(contact):
		return 0
	default:
		return 0.5
	}
}

func feeSeverity(channel string) float64 {
	c := normalizeChannel(channel)
	switch {
	case cleanFeeChannels[c]:
		return 0
	case redFlagFeeChannels[c]:
		return 1
	default:
		return 0.5
	}
}

func communicationSeverity(p AdvisorProfile) float64 {
	if p.UnsolicitedContact || hasPromotionalTerms(p.Name) || hasPromotionalTerms(p.Pitch) {
		return 1
	}
	if strings.TrimSpace(p.Company) == "" {
		return 0.25
	}
	return 0
}

func hasPromotionalTerms(s string) bool {
	return containsAny(s, promotionalTerms)
}

func normalizeChannel(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
