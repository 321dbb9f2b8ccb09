package signal

import (
	"fmt"
	"strings"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
)

// Indicator names for app_detection.
const (
	IndicatorDownloadSource        = "download_source"
	IndicatorDeveloperVerification = "developer_verification"
	IndicatorAppNameAnalysis       = "app_name_analysis"
	IndicatorDownloadURL           = "download_url"
	IndicatorDigitalSignature      = "digital_signature"
	IndicatorPermissions           = "permission_requests"
)

// Download sources.
const (
	AppSourceGooglePlay = "google-play"
	AppSourceAppStore   = "app-store"
	AppSourceThirdParty = "third-party"
)

// excessivePermissions is the number of sensitive permissions treated as
// fully excessive for a trading app.
const excessivePermissions = 3.0

var (
	knownTradingDevelopers = []string{
		"zerodha", "upstox", "groww", "paytm money", "angel broking", "icicidirect",
		"hdfc securities", "5paisa", "kotak securities", "axis direct",
	}
	suspiciousDevelopers = []string{"quick trade", "fast money", "instant profit", "easy cash", "guaranteed returns"}

	suspiciousAppTerms = []string{
		"quick money", "instant profit", "guaranteed returns", "easy cash",
		"get rich", "double money", "fast trading", "sure profit",
	}

	officialStoreHosts = []string{"play.google.com", "apps.apple.com"}
	redirectHosts      = []string{"bit.ly", "tinyurl", ".tk"}

	sensitivePermissions = map[string]bool{
		"read_sms":                   true,
		"receive_sms":                true,
		"read_contacts":              true,
		"read_call_log":              true,
		"record_audio":               true,
		"system_alert_window":        true,
		"request_install_packages":   true,
		"bind_accessibility_service": true,
	}
)

// AppListing describes a trading app and where it was obtained.
type AppListing struct {
	Name      string `json:"name"`
	Developer string `json:"developer"`
	// Source is google-play, app-store, third-party or anything else for an
	// unknown origin.
	Source string `json:"source"`
	URL    string `json:"url,omitempty"`
	// ValidSignature reports the outcome of signature validation. Nil means
	// it was not checked.
	ValidSignature *bool `json:"valid_signature,omitempty"`
	// Permissions lists requested permissions as lower-case Android names
	// without the android.permission prefix. Nil means unknown.
	Permissions []string `json:"permissions,omitempty"`
}

// Validate reports whether the listing has a name, a developer and a source.
func (l AppListing) Validate() error {
	if strings.TrimSpace(l.Name) == "" || strings.TrimSpace(l.Developer) == "" || strings.TrimSpace(l.Source) == "" {
		return fmt.Errorf("%w: app listing needs a name, a developer and a source", ErrIncompleteEvidence)
	}
	return nil
}

// AppIndicators maps a listing to app_detection severities. The URL,
// signature and permission checks are left out when not supplied.
func AppIndicators(l AppListing) model.EvaluationInput {
	input := model.EvaluationInput{
		IndicatorDownloadSource:        appSourceSeverity(l.Source),
		IndicatorDeveloperVerification: developerSeverity(l.Developer),
		IndicatorAppNameAnalysis:       model.Flag(containsAny(l.Name, suspiciousAppTerms)),
	}
	if strings.TrimSpace(l.URL) != "" {
		input[IndicatorDownloadURL] = urlSeverity(l.URL)
	}
	if l.ValidSignature != nil {
		input[IndicatorDigitalSignature] = model.Flag(!*l.ValidSignature)
	}
	if l.Permissions != nil {
		input[IndicatorPermissions] = clamp01(float64(len(sensitivePermissionsIn(l.Permissions))) / excessivePermissions)
	}
	return input
}

// AppRiskFactors lists the issues found in a listing.
func AppRiskFactors(l AppListing) []string {
	var factors []string
	switch appSourceSeverity(l.Source) {
	case 1:
		factors = append(factors, "Downloaded from an unknown or unofficial source")
	case 0.5:
		factors = append(factors, "Downloaded from a third-party website")
	}
	switch developerSeverity(l.Developer) {
	case 1:
		factors = append(factors, "Developer name contains suspicious promotional terms")
	case 0.5:
		factors = append(factors, "Developer is not a recognized financial services provider")
	}
	if containsAny(l.Name, suspiciousAppTerms) {
		factors = append(factors, "App name contains promotional language typical of scam apps")
	}
	if strings.TrimSpace(l.URL) != "" {
		switch urlSeverity(l.URL) {
		case 1:
			factors = append(factors, "Download URL uses a shortened or suspicious domain")
		case 0.5:
			factors = append(factors, "Download URL is not served over HTTPS")
		}
	}
	if l.ValidSignature != nil && !*l.ValidSignature {
		factors = append(factors, "App lacks a valid digital signature")
	}
	if sensitive := sensitivePermissionsIn(l.Permissions); len(sensitive) > 0 {
		factors = append(factors, "Sensitive permissions requested: "+strings.Join(sensitive, ", "))
	}
	return factors
}

func appSourceSeverity(source string) float64 {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case AppSourceGooglePlay, AppSourceAppStore:
		return 0
	case AppSourceThirdParty:
		return 0.5
	default:
		return 1
	}
}

func developerSeverity(developer string) float64 {
	switch {
	case containsAny(developer, knownTradingDevelopers):
		return 0
	case containsAny(developer, suspiciousDevelopers):
		return 1
	default:
		return 0.5
	}
}

func urlSeverity(raw string) float64 {
	u := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case containsAny(u, officialStoreHosts):
		return 0
	case containsAny(u, redirectHosts):
		return 1
	case !strings.HasPrefix(u, "https://"):
		return 0.5
	default:
		return 0
	}
}

// sensitivePermissionsIn returns the distinct sensitive permissions in
// request order.
func sensitivePermissionsIn(perms []string) []string {
	var out []string
	seen := make(map[string]bool, len(perms))
	for _, p := range perms {
		p = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(p)), "android.permission.")
		if sensitivePermissions[p] && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
