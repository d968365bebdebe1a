// Package catalog holds the in-memory L3 scope-item catalog and named team
// profiles used to resolve estimate requests by code instead of inline
// records. The catalog is seeded once at startup and read-only afterwards.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/ib823/cockpit/internal/domain/model"
)

// Catalog maps L3 codes to scope items and profile names to profiles.
type Catalog struct {
	mu       sync.RWMutex
	items    map[string]model.ScopeItem
	profiles map[string]model.Profile
}

// New creates a Catalog seeded by options.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		items:    make(map[string]model.ScopeItem),
		profiles: make(map[string]model.Profile),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Item looks up a scope item by its L3 code.
func (c *Catalog) Item(ctx context.Context, code string) (model.ScopeItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[code]
	return item, ok
}

// Profile looks up a team profile by name.
func (c *Catalog) Profile(ctx context.Context, name string) (model.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.profiles[name]
	return p, ok
}

// ResolveItems maps L3 codes to their catalog entries, preserving order.
// An unknown code fails the whole resolution.
func (c *Catalog) ResolveItems(ctx context.Context, codes []string) ([]model.ScopeItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]model.ScopeItem, 0, len(codes))
	for _, code := range codes {
		item, ok := c.items[code]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownItem, code)
		}
		items = append(items, item)
	}
	return items, nil
}

// ResolveProfile maps a profile name to its catalog entry.
func (c *Catalog) ResolveProfile(ctx context.Context, name string) (model.Profile, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.profiles[name]
	if !ok {
		return model.Profile{}, fmt.Errorf("%w: %s", ErrUnknownProfile, name)
	}
	return p, nil
}

// ItemCount returns the number of catalog scope items.
func (c *Catalog) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// ProfileCount returns the number of named profiles.
func (c *Catalog) ProfileCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.profiles)
}
