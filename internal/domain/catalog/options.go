package catalog

import "github.com/ib823/cockpit/internal/domain/model"

// Option applies a configuration option to the Catalog.
type Option func(*Catalog)

// WithItems seeds the catalog with scope items. Items without an L3 code are
// skipped; a repeated code overwrites the earlier entry.
func WithItems(items []model.ScopeItem) Option {
	return func(c *Catalog) {
		for _, item := range items {
			if item.L3Code == "" {
				continue
			}
			c.items[item.L3Code] = item
		}
	}
}

// WithProfiles seeds the catalog with named team profiles.
func WithProfiles(profiles []model.Profile) Option {
	return func(c *Catalog) {
		for _, p := range profiles {
			if p.Name == "" {
				continue
			}
			c.profiles[p.Name] = p
		}
	}
}
