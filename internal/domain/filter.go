package domain

import (
	"slices"
	"strings"
)

// ItemFilter narrows a catalog's item list by free-text query and active
// category. Both predicates are conjunctive; the zero value passes every
// item.
type ItemFilter struct {
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
}

// IsZero reports whether the filter restricts nothing.
func (f ItemFilter) IsZero() bool {
	return f.Query == "" && f.Category == ""
}

// Matches reports whether a single item passes the filter. The query
// matches case-insensitively as a substring of the item name or
// description; the category matches exactly.
func (f ItemFilter) Matches(item CatalogItem) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) {
			return false
		}
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	return true
}

// FilterItems returns the items passing the filter, preserving catalog
// order. It is a pure pass over the input; an empty result is a valid
// terminal state, not an error.
func FilterItems(items []CatalogItem, f ItemFilter) []CatalogItem {
	if f.IsZero() {
		return slices.Clone(items)
	}
	filtered := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Categories derives the set of distinct non-empty category labels
// across the given items. Order follows first appearance; the result is
// recomputed only when the item collection changes (callers memoize).
func Categories(items []CatalogItem) []string {
	seen := make(map[string]bool, len(items))
	categories := make([]string, 0, len(items))
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}
