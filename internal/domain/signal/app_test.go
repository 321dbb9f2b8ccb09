package signal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/signal"
)

func legitimateApp() signal.AppListing {
	return signal.AppListing{
		Name:           "Groww: Stocks, Mutual Fund",
		Developer:      "Groww",
		Source:         signal.AppSourceGooglePlay,
		URL:            "https://play.google.com/store/apps/details?id=com.nextbillion.groww",
		ValidSignature: boolPtr(true),
		Permissions:    []string{"internet", "use_biometric"},
	}
}

func TestAppIndicators_Legitimate(t *testing.T) {
	l := legitimateApp()

	assert.Equal(t, model.EvaluationInput{
		signal.IndicatorDownloadSource:        0,
		signal.IndicatorDeveloperVerification: 0,
		signal.IndicatorAppNameAnalysis:       0,
		signal.IndicatorDownloadURL:           0,
		signal.IndicatorDigitalSignature:      0,
		signal.IndicatorPermissions:           0,
	}, signal.AppIndicators(l))
	assert.Empty(t, signal.AppRiskFactors(l))
	assert.NoError(t, l.Validate())
}

func TestAppIndicators_RedFlags(t *testing.T) {
	l := signal.AppListing{
		Name:           "Sure Profit Trader",
		Developer:      "Instant Profit Labs",
		Source:         "apk-mirror",
		URL:            "http://bit.ly/sure-profit",
		ValidSignature: boolPtr(false),
		Permissions: []string{
			"android.permission.READ_SMS",
			"read_contacts",
			"bind_accessibility_service",
			"read_sms",
		},
	}

	input := signal.AppIndicators(l)

	assert.Equal(t, 1.0, input[signal.IndicatorDownloadSource])
	assert.Equal(t, 1.0, input[signal.IndicatorDeveloperVerification])
	assert.Equal(t, 1.0, input[signal.IndicatorAppNameAnalysis])
	assert.Equal(t, 1.0, input[signal.IndicatorDownloadURL])
	assert.Equal(t, 1.0, input[signal.IndicatorDigitalSignature])
	assert.Equal(t, 1.0, input[signal.IndicatorPermissions])

	factors := signal.AppRiskFactors(l)
	assert.Contains(t, factors, "Downloaded from an unknown or unofficial source")
	assert.Contains(t, factors, "Developer name contains suspicious promotional terms")
	assert.Contains(t, factors, "App name contains promotional language typical of scam apps")
	assert.Contains(t, factors, "Download URL uses a shortened or suspicious domain")
	assert.Contains(t, factors, "App lacks a valid digital signature")
	assert.Contains(t, factors, "Sensitive permissions requested: read_sms, read_contacts, bind_accessibility_service")
}

func TestAppIndicators_ThirdPartyUnknownDeveloper(t *testing.T) {
	l := signal.AppListing{
		Name:      "TradeMax",
		Developer: "TM Fintech",
		Source:    signal.AppSourceThirdParty,
		URL:       "http://trademax.example/download",
	}

	input := signal.AppIndicators(l)

	assert.Equal(t, 0.5, input[signal.IndicatorDownloadSource])
	assert.Equal(t, 0.5, input[signal.IndicatorDeveloperVerification])
	assert.Equal(t, 0.0, input[signal.IndicatorAppNameAnalysis])
	assert.Equal(t, 0.5, input[signal.IndicatorDownloadURL])
	assert.NotContains(t, input, signal.IndicatorDigitalSignature)
	assert.NotContains(t, input, signal.IndicatorPermissions)

	factors := signal.AppRiskFactors(l)
	assert.Equal(t, []string{
		"Downloaded from a third-party website",
		"Developer is not a recognized financial services provider",
		"Download URL is not served over HTTPS",
	}, factors)
}

func TestAppIndicators_PermissionScale(t *testing.T) {
	l := legitimateApp()
	l.Permissions = []string{"read_call_log"}

	assert.InDelta(t, 1.0/3, signal.AppIndicators(l)[signal.IndicatorPermissions], 1e-9)

	l.Permissions = []string{}
	assert.Equal(t, 0.0, signal.AppIndicators(l)[signal.IndicatorPermissions])
}

func TestAppIndicators_NoURL(t *testing.T) {
	l := legitimateApp()
	l.URL = ""

	assert.NotContains(t, signal.AppIndicators(l), signal.IndicatorDownloadURL)
}

func TestAppListing_Validate(t *testing.T) {
	err := signal.AppListing{Name: "Kite", Developer: "Zerodha"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, signal.ErrIncompleteEvidence))
}
