package model

import "slices"

// RuleSet is the immutable collection of scoring categories loaded at startup.
type RuleSet struct {
	categories map[string]*Category
	order      []string
}

// NewRuleSet indexes categories by name, preserving their order.
func NewRuleSet(categories ...*Category) (*RuleSet, error) {
	rs := &RuleSet{
		categories: make(map[string]*Category, len(categories)),
		order:      make([]string, 0, len(categories)),
	}
	for _, c := range categories {
		if c == nil {
			return nil, &ConfigurationError{Reason: "nil category"}
		}
		if _, dup := rs.categories[c.Name()]; dup {
			return nil, &ConfigurationError{Category: c.Name(), Reason: "duplicate category"}
		}
		rs.categories[c.Name()] = c
		rs.order = append(rs.order, c.Name())
	}
	if len(rs.order) == 0 {
		return nil, &ConfigurationError{Reason: "at least one scoring category is required"}
	}
	return rs, nil
}

// Category looks up a category by name.
func (rs *RuleSet) Category(name string) (*Category, bool) {
	c, ok := rs.categories[name]
	return c, ok
}

// Names returns category names in declaration order.
func (rs *RuleSet) Names() []string {
	return slices.Clone(rs.order)
}

// Len returns the number of categories.
func (rs *RuleSet) Len() int {
	return len(rs.order)
}
