package dto

import (
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
)

// IndicatorResponse describes one configured indicator.
type IndicatorResponse struct {
	Name      string  `json:"name"`
	Threshold string  `json:"threshold,omitempty"`
	Weight    float64 `json:"weight"`
	Critical  bool    `json:"critical"`
}

// CategoryResponse describes one scoring category in declaration order.
type CategoryResponse struct {
	Name        string              `json:"name"`
	WeightTotal string              `json:"weight_total"`
	Indicators  []IndicatorResponse `json:"indicators"`
}

// CatalogResponse is the output DTO of the DescribeCatalog use case.
type CatalogResponse struct {
	Actions    map[string][]string  `json:"actions"`
	RiskBands  map[string]string    `json:"risk_bands,omitempty"`
	Categories []CategoryResponse   `json:"categories"`
	FraudTypes []string             `json:"fraud_types"`
	Summary    model.CatalogSummary `json:"summary"`
}

// FromCategory maps a scoring category to its DTO.
func FromCategory(c *model.Category) CategoryResponse {
	defs := c.Indicators()
	out := CategoryResponse{
		Name:        c.Name(),
		WeightTotal: c.WeightTotal().String(),
		Indicators:  make([]IndicatorResponse, 0, len(defs)),
	}
	for _, d := range defs {
		out.Indicators = append(out.Indicators, IndicatorResponse{
			Name:      d.Name,
			Threshold: d.Threshold,
			Weight:    d.Weight,
			Critical:  d.Critical,
		})
	}
	return out
}
