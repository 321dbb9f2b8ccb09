package model

import (
	"slices"
	"strings"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
)

// ActionTable maps each risk tier to its ordered response actions.
// It is immutable once built.
type ActionTable struct {
	actions map[valueobject.RiskTier][]string
}

// NewActionTable validates that every tier has at least one non-empty action.
func NewActionTable(actions map[valueobject.RiskTier][]string) (ActionTable, error) {
	table := ActionTable{actions: make(map[valueobject.RiskTier][]string, len(actions))}
	for _, tier := range valueobject.AllRiskTiers() {
		list, ok := actions[tier]
		if !ok || len(list) == 0 {
			return ActionTable{}, &ConfigurationError{Reason: "response actions missing for tier " + tier.String()}
		}
		for _, a := range list {
			if strings.TrimSpace(a) == "" {
				return ActionTable{}, &ConfigurationError{Reason: "empty response action for tier " + tier.String()}
			}
		}
		table.actions[tier] = slices.Clone(list)
	}
	return table, nil
}

// DefaultActionTable returns the standard response actions.
func DefaultActionTable() ActionTable {
	table, _ := NewActionTable(map[valueobject.RiskTier][]string{
		valueobject.RiskTierHigh:   {"Immediate alert", "Transaction block", "Regulatory notification", "User warning"},
		valueobject.RiskTierMedium: {"Enhanced monitoring", "User notification", "Additional verification"},
		valueobject.RiskTierLow:    {"Log for analysis", "Periodic review"},
	})
	return table
}

// Actions returns a fresh copy of the actions for the tier.
func (t ActionTable) Actions(tier valueobject.RiskTier) []string {
	return slices.Clone(t.actions[tier])
}

// IsZero reports whether the table was never built.
func (t ActionTable) IsZero() bool {
	return len(t.actions) == 0
}
