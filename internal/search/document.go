// Package search provides the public storefront directory using Bleve.
// Visitors can find catalogs by business name, description, item names,
// and category labels, with typo tolerance and category faceting.
package search

import (
	"github.com/showcaseapp/showcase-server/internal/domain"
)

// SearchDocument is the Bleve document for one catalog. Item names and
// categories are denormalized into the catalog document so a single
// query covers everything a visitor might remember about a shop.
type SearchDocument struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	BusinessName string   `json:"business_name"`
	Description  string   `json:"description,omitempty"`
	ItemNames    []string `json:"item_names,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	ItemCount    int      `json:"item_count"`

	// Timestamps for sorting. Unix millis.
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *SearchDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":            d.ID,
		"slug":          d.Slug,
		"business_name": d.BusinessName,
		"item_count":    d.ItemCount,
		"created_at":    d.CreatedAt,
		"updated_at":    d.UpdatedAt,
	}

	if d.Description != "" {
		m["description"] = d.Description
	}
	if len(d.ItemNames) > 0 {
		m["item_names"] = d.ItemNames
	}
	if len(d.Categories) > 0 {
		m["categories"] = d.Categories
	}

	return m
}

// CatalogToSearchDocument converts a catalog to its search document.
func CatalogToSearchDocument(c *domain.Catalog) *SearchDocument {
	itemNames := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		itemNames = append(itemNames, item.Name)
	}

	return &SearchDocument{
		ID:           c.ID,
		Slug:         c.Slug,
		BusinessName: c.BusinessName,
		Description:  c.Description,
		ItemNames:    itemNames,
		Categories:   domain.Categories(c.Items),
		ItemCount:    len(c.Items),
		CreatedAt:    c.CreatedAt.UnixMilli(),
		UpdatedAt:    c.UpdatedAt.UnixMilli(),
	}
}
