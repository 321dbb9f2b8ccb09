package usecase

import (
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/application/dto"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
)

// DescribeCatalog is the use case for reporting the loaded rules and
// reference catalog.
type DescribeCatalog struct {
	rules   *model.RuleSet
	catalog *model.Catalog
	actions model.ActionTable
}

// NewDescribeCatalog creates a new DescribeCatalog use case.
func NewDescribeCatalog(rules *model.RuleSet, catalog *model.Catalog, actions model.ActionTable) *DescribeCatalog {
	return &DescribeCatalog{
		rules:   rules,
		catalog: catalog,
		actions: actions,
	}
}

// Execute builds the catalog description. Categories keep declaration order.
func (uc *DescribeCatalog) Execute() dto.CatalogResponse {
	names := uc.rules.Names()
	resp := dto.CatalogResponse{
		Summary:    uc.catalog.Summary(len(names)),
		FraudTypes: uc.catalog.FraudTypeKeys(),
		RiskBands:  uc.catalog.RiskBands(),
		Categories: make([]dto.CategoryResponse, 0, len(names)),
		Actions:    make(map[string][]string, 3),
	}
	for _, name := range names {
		c, _ := uc.rules.Category(name)
		resp.Categories = append(resp.Categories, dto.FromCategory(c))
	}
	for _, tier := range valueobject.AllRiskTiers() {
		resp.Actions[tier.String()] = uc.actions.Actions(tier)
	}
	return resp
}
