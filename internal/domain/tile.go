package domain

// TileLayout identifies the layout shape a template produces for one item.
type TileLayout string

// Tile layouts.
const (
	// LayoutCard is a horizontal card with a fixed-size thumbnail.
	LayoutCard TileLayout = "card"
	// LayoutGridCard is a compact card placed in a two-column grid.
	LayoutGridCard TileLayout = "grid_card"
	// LayoutRow is a dense text row with no image.
	LayoutRow TileLayout = "row"
)

// ItemTile is the rendering directive for a single catalog item: which
// layout to use and which fields the layout shows. It is a pure
// projection of (template, item, theme) with no side effects, so
// identical inputs always produce identical tiles.
type ItemTile struct {
	ItemID           string     `json:"item_id"`
	Layout           TileLayout `json:"layout"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	DescriptionLines int        `json:"description_lines"` // max lines before truncation
	Price            float64    `json:"price"`
	PriceColor       string     `json:"price_color"`
	ShowImage        bool       `json:"show_image"`
	ImageURL         string     `json:"image_url,omitempty"`
	ImagePlaceholder bool       `json:"image_placeholder,omitempty"` // glyph shown instead of a missing image
	ShowChevron      bool       `json:"show_chevron,omitempty"`
}

// ResolveTile maps a catalog item onto its rendering directive for the
// given template. Unrecognized templates resolve to the DEFAULT layout,
// so the function is total over all template values.
func ResolveTile(template Template, item CatalogItem, theme ResolvedTheme) ItemTile {
	tile := ItemTile{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		PriceColor:  theme.PrimaryColor,
	}

	switch template.Resolve() {
	case TemplateMinimalist:
		// Dense row: never an image, even when the item has one.
		tile.Layout = LayoutRow
		tile.DescriptionLines = 1
		tile.ShowChevron = true

	case TemplateGallery:
		tile.Layout = LayoutGridCard
		tile.DescriptionLines = 2
		if item.ImageURL != "" {
			tile.ShowImage = true
			tile.ImageURL = item.ImageURL
		}

	default:
		tile.Layout = LayoutCard
		tile.DescriptionLines = 2
		tile.ShowImage = true
		if item.ImageURL != "" {
			tile.ImageURL = item.ImageURL
		} else {
			tile.ImagePlaceholder = true
		}
	}

	return tile
}

// ResolveTiles projects every item through ResolveTile, preserving order.
func ResolveTiles(template Template, items []CatalogItem, theme ResolvedTheme) []ItemTile {
	tiles := make([]ItemTile, len(items))
	for i, item := range items {
		tiles[i] = ResolveTile(template, item, theme)
	}
	return tiles
}
