// Package domain contains the core business entities and domain logic for the Showcase storefront.
package domain

import (
	"fmt"
	"time"
)

// Catalog represents a merchant's published product or service listing,
// together with the theming and contact metadata that drives its public
// storefront page. The viewer treats a Catalog as read-only; only the
// authoring surface mutates it.
type Catalog struct {
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	ID             string        `json:"id"`
	OwnerID        string        `json:"owner_id"`
	Slug           string        `json:"slug"` // Unique human-readable lookup key
	BusinessName   string        `json:"business_name"`
	Description    string        `json:"description,omitempty"`
	LogoURL        string        `json:"logo_url,omitempty"`
	PhoneNumber    string        `json:"phone_number,omitempty"`
	WhatsAppNumber string        `json:"whatsapp_number,omitempty"`
	Address        string        `json:"address,omitempty"`
	Theme          Theme         `json:"theme"`
	Items          []CatalogItem `json:"items"`
}

// CatalogItem is a single product or service entry within a catalog.
type CatalogItem struct {
	ID          string  `json:"id"` // Unique within the catalog
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"` // Free-text label
	ImageURL    string  `json:"image_url,omitempty"`
}

// Validate checks the catalog invariants: item IDs unique within the
// catalog and no negative prices.
func (c *Catalog) Validate() error {
	if c.Slug == "" {
		return fmt.Errorf("catalog %s: slug is required", c.ID)
	}
	if c.BusinessName == "" {
		return fmt.Errorf("catalog %s: business name is required", c.ID)
	}

	seen := make(map[string]bool, len(c.Items))
	for _, item := range c.Items {
		if item.ID == "" {
			return fmt.Errorf("catalog %s: item %q has no id", c.ID, item.Name)
		}
		if seen[item.ID] {
			return fmt.Errorf("catalog %s: duplicate item id %s", c.ID, item.ID)
		}
		seen[item.ID] = true

		if item.Price < 0 {
			return fmt.Errorf("catalog %s: item %s has negative price", c.ID, item.ID)
		}
	}
	return nil
}

// Item returns the item with the given ID, or nil if absent.
func (c *Catalog) Item(itemID string) *CatalogItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// HasContact reports whether the catalog carries the contact field
// backing the given CTA kind. A CTA without its contact field is not
// rendered and cannot be dispatched.
func (c *Catalog) HasContact(kind EventKind) bool {
	switch kind {
	case KindCallClicks:
		return c.PhoneNumber != ""
	case KindWhatsAppClicks:
		return c.WhatsAppNumber != ""
	case KindDirectionClicks:
		return c.Address != ""
	default:
		return false
	}
}
