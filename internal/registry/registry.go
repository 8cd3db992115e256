// Package registry holds the session's category set and resolves category
// names to display metadata.
package registry

import (
	"context"
	"log/slog"
	"sync"

	"spend/internal/core"
	"spend/internal/store"
)

// defaults is the single source for the fallback category table. It is
// substituted whenever the store's category endpoint cannot be used, so
// categorization keeps working even when that read path is down.
var defaults = []core.Category{
	{ID: 1, Name: "food", Color: "#ef4444"},
	{ID: 2, Name: "travel", Color: "#3b82f6"},
	{ID: 3, Name: "bills", Color: "#f59e0b"},
	{ID: 4, Name: "entertainment", Color: "#8b5cf6"},
	{ID: 5, Name: "shopping", Color: "#ec4899"},
	{ID: 6, Name: "health", Color: "#10b981"},
	{ID: 7, Name: "other", Color: "#6b7280"},
}

const fallbackColor = "#6b7280"

// Defaults returns a copy of the built-in category table.
func Defaults() []core.Category {
	return append([]core.Category(nil), defaults...)
}

// Registry resolves category names to display metadata. Lookups never fail:
// an unknown name silently resolves to the fallback category's color.
type Registry struct {
	source store.CategoryLister

	mu   sync.RWMutex
	cats []core.Category
}

// New creates a registry backed by source, pre-populated with the default
// set so it is usable before Load runs.
func New(source store.CategoryLister) *Registry {
	return &Registry{source: source, cats: Defaults()}
}

// Load replaces the in-memory set with the store's category list. On any
// transport or data failure it substitutes the default set instead of
// reporting an error; this is the one read path where usability wins over
// strict accuracy.
func (r *Registry) Load(ctx context.Context) {
	cats, err := r.source.ListCategories(ctx)
	if err != nil || len(cats) == 0 {
		slog.WarnContext(ctx, "Category load failed, using default set", "error", err)
		cats = Defaults()
	}
	r.mu.Lock()
	r.cats = cats
	r.mu.Unlock()
}

// Categories returns a copy of the current set.
func (r *Registry) Categories() []core.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]core.Category(nil), r.cats...)
}

// ResolveColor returns the color for name (case-sensitive), or the fallback
// category's color when the name is unknown. The name itself is never
// rewritten; only display falls back.
func (r *Registry) ResolveColor(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var fallback string
	for _, c := range r.cats {
		if c.Name == name {
			return c.Color
		}
		if c.Name == core.DefaultCategoryName {
			fallback = c.Color
		}
	}
	if fallback != "" {
		return fallback
	}
	return fallbackColor
}
