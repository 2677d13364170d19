package domain

import "github.com/showcaseapp/showcase-server/internal/color"

// CatalogView is the public view model for a storefront page: the
// merchant header, the fully-resolved theme, the category facets, and
// the rendering directives for every item passing the active filter.
// It is built by a pure function so the same catalog and filter always
// produce the same view.
type CatalogView struct {
	CatalogID    string `json:"catalog_id"`
	Slug         string `json:"slug"`
	BusinessName string `json:"business_name"`
	Description  string `json:"description,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
	// MonogramColor backs the initials tile shown when no logo is set.
	MonogramColor string        `json:"monogram_color,omitempty"`
	Theme         ResolvedTheme `json:"theme"`
	Categories    []string      `json:"categories"`
	Filter        ItemFilter    `json:"filter"`
	Tiles         []ItemTile    `json:"tiles"`
	CTAs          []EventKind   `json:"ctas"` // CTA kinds the catalog can serve
}

// BuildCatalogView projects a catalog through the filter and template
// resolver into its public view model.
func BuildCatalogView(c *Catalog, f ItemFilter) CatalogView {
	theme := c.Theme.Resolved()
	visible := FilterItems(c.Items, f)

	ctas := make([]EventKind, 0, 3)
	for _, kind := range []EventKind{KindCallClicks, KindWhatsAppClicks, KindDirectionClicks} {
		if c.HasContact(kind) {
			ctas = append(ctas, kind)
		}
	}

	monogram := ""
	if c.LogoURL == "" {
		monogram = color.ForBusiness(c.BusinessName)
	}

	return CatalogView{
		CatalogID:     c.ID,
		Slug:          c.Slug,
		BusinessName:  c.BusinessName,
		Description:   c.Description,
		LogoURL:       c.LogoURL,
		MonogramColor: monogram,
		Theme:         theme,
		Categories:    Categories(c.Items),
		Filter:        f,
		Tiles:         ResolveTiles(theme.Template, visible, theme),
		CTAs:          ctas,
	}
}
