package model

import (
	"slices"
	"sort"
	"strings"
)

// FraudType describes one fraud scheme and how to recognise it.
type FraudType struct {
	Key              string
	Description      string
	Impact           string
	DetectionMethods []string
	RedFlags         []string
}

// DetectionTechnology describes a detection capability and where it applies.
type DetectionTechnology struct {
	Key          string
	Capabilities []string
	Applications []string
}

// RegulatoryArea groups named regulatory references, e.g. SEBI regulations
// or verification systems.
type RegulatoryArea struct {
	Key        string
	References map[string]string
}

// CatalogSummary counts the reference material loaded with the rules.
type CatalogSummary struct {
	FraudTypes            int `json:"fraud_types"`
	DetectionTechnologies int `json:"detection_technologies"`
	RegulatoryAreas       int `json:"regulatory_areas"`
	ScoringCategories     int `json:"scoring_categories"`
	RegulatoryReferences  int `json:"regulatory_references"`
	TotalDetectionMethods int `json:"total_detection_methods"`
	TotalRedFlags         int `json:"total_red_flags"`
}

// Catalog is the immutable reference material that accompanies the scoring
// rules: fraud types, detection technologies, regulatory framework and the
// human-readable risk band descriptions.
type Catalog struct {
	fraudTypes   map[string]FraudType
	technologies map[string]DetectionTechnology
	regulatory   map[string]RegulatoryArea
	riskBands    map[string]string
}

// NewCatalog builds a catalog. Entries are deep-copied.
func NewCatalog(
	fraudTypes []FraudType,
	technologies []DetectionTechnology,
	regulatory []RegulatoryArea,
	riskBands map[string]string,
) *Catalog {
	c := &Catalog{
		fraudTypes:   make(map[string]FraudType, len(fraudTypes)),
		technologies: make(map[string]DetectionTechnology, len(technologies)),
		regulatory:   make(map[string]RegulatoryArea, len(regulatory)),
		riskBands:    make(map[string]string, len(riskBands)),
	}
	for _, ft := range fraudTypes {
		c.fraudTypes[ft.Key] = cloneFraudType(ft)
	}
	for _, dt := range technologies {
		c.technologies[dt.Key] = cloneTechnology(dt)
	}
	for _, ra := range regulatory {
		c.regulatory[ra.Key] = cloneArea(ra)
	}
	for k, v := range riskBands {
		c.riskBands[k] = v
	}
	return c
}

// Summary counts the catalog contents; scoringCategories is supplied by the
// caller because the scoring rules live outside the catalog.
func (c *Catalog) Summary(scoringCategories int) CatalogSummary {
	s := CatalogSummary{
		FraudTypes:            len(c.fraudTypes),
		DetectionTechnologies: len(c.technologies),
		RegulatoryAreas:       len(c.regulatory),
		ScoringCategories:     scoringCategories,
	}
	for _, ft := range c.fraudTypes {
		s.TotalDetectionMethods += len(ft.DetectionMethods)
		s.TotalRedFlags += len(ft.RedFlags)
	}
	for _, ra := range c.regulatory {
		s.RegulatoryReferences += len(ra.References)
	}
	return s
}

// FraudTypeKeys returns the fraud type keys, sorted.
func (c *Catalog) FraudTypeKeys() []string {
	return sortedKeys(c.fraudTypes)
}

// FraudType looks up a fraud type by key.
func (c *Catalog) FraudType(key string) (FraudType, bool) {
	ft, ok := c.fraudTypes[key]
	if !ok {
		return FraudType{}, false
	}
	return cloneFraudType(ft), true
}

// Technology looks up a detection technology by key.
func (c *Catalog) Technology(key string) (DetectionTechnology, bool) {
	dt, ok := c.technologies[key]
	if !ok {
		return DetectionTechnology{}, false
	}
	return cloneTechnology(dt), true
}

// TechnologiesFor returns the keys of technologies whose applications mention
// the given application (case-insensitive substring), sorted.
func (c *Catalog) TechnologiesFor(application string) []string {
	needle := strings.ToLower(strings.TrimSpace(application))
	if needle == "" {
		return nil
	}
	var keys []string
	for key, dt := range c.technologies {
		for _, app := range dt.Applications {
			if strings.Contains(strings.ToLower(app), needle) {
				keys = append(keys, key)
				break
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// Regulation returns a single regulatory reference, e.g.
// Regulation("sebi_regulations", "investment_advisors").
func (c *Catalog) Regulation(area, key string) (string, bool) {
	ra, ok := c.regulatory[area]
	if !ok {
		return "", false
	}
	ref, ok := ra.References[key]
	return ref, ok
}

// RiskBand returns the description of a risk band such as "high_risk".
func (c *Catalog) RiskBand(key string) (string, bool) {
	v, ok := c.riskBands[key]
	return v, ok
}

// RiskBands returns a copy of all risk band descriptions.
func (c *Catalog) RiskBands() map[string]string {
	out := make(map[string]string, len(c.riskBands))
	for k, v := range c.riskBands {
		out[k] = v
	}
	return out
}

func cloneFraudType(ft FraudType) FraudType {
	ft.DetectionMethods = slices.Clone(ft.DetectionMethods)
	ft.RedFlags = slices.Clone(ft.RedFlags)
	return ft
}

func cloneTechnology(dt DetectionTechnology) DetectionTechnology {
	dt.Capabilities = slices.Clone(dt.Capabilities)
	dt.Applications = slices.Clone(dt.Applications)
	return dt
}

func cloneArea(ra RegulatoryArea) RegulatoryArea {
	refs := make(map[string]string, len(ra.References))
	for k, v := range ra.References {
		refs[k] = v
	}
	ra.References = refs
	return ra
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
