package domain

// Template is the enumerated rendering strategy controlling item layout density.
type Template string

// Template variants.
const (
	// TemplateDefault renders horizontal cards with a fixed-size thumbnail.
	TemplateDefault Template = "DEFAULT"
	// TemplateGallery renders a two-column card grid.
	TemplateGallery Template = "GALLERY"
	// TemplateMinimalist renders dense text rows without images.
	TemplateMinimalist Template = "MINIMALIST"
)

// Resolve maps any stored template value onto a recognized variant.
// Unrecognized or missing values fall back to TemplateDefault; an
// unknown template is never an error.
func (t Template) Resolve() Template {
	switch t {
	case TemplateGallery, TemplateMinimalist:
		return t
	default:
		return TemplateDefault
	}
}

// LogoStyle controls how the merchant logo is cropped.
type LogoStyle string

// Logo styles.
const (
	LogoStyleCircle LogoStyle = "circle"
	LogoStyleSquare LogoStyle = "square"
)

// Fallback values applied when a theme field is unset.
const (
	DefaultPrimaryColor    = "#2563EB" // brand blue
	DefaultBackgroundColor = "#ffffff"
	DefaultTextColor       = "#0F172A" // near-black slate
	DefaultFontSizeHeading = "text-4xl"
	DefaultFontSizeBody    = "text-base"
)

// Theme holds a catalog's visual configuration. Every field is optional;
// ResolvedTheme applies the documented defaults.
type Theme struct {
	Template        Template  `json:"template,omitempty"`
	PrimaryColor    string    `json:"primary_color,omitempty"`
	BackgroundColor string    `json:"background_color,omitempty"`
	TextColor       string    `json:"text_color,omitempty"`
	Font            string    `json:"font,omitempty"`
	FontSizeHeading string    `json:"font_size_heading,omitempty"`
	FontSizeBody    string    `json:"font_size_body,omitempty"`
	LogoStyle       LogoStyle `json:"logo_style,omitempty"`
}

// ResolvedTheme is a Theme with every fallback applied. It is the form
// handed to rendering clients so they never deal with absent values.
type ResolvedTheme struct {
	Template        Template  `json:"template"`
	PrimaryColor    string    `json:"primary_color"`
	BackgroundColor string    `json:"background_color"`
	TextColor       string    `json:"text_color"`
	Font            string    `json:"font,omitempty"`
	FontSizeHeading string    `json:"font_size_heading"`
	FontSizeBody    string    `json:"font_size_body"`
	LogoStyle       LogoStyle `json:"logo_style"`
}

// Resolved applies the documented defaults to every unset field.
func (t Theme) Resolved() ResolvedTheme {
	r := ResolvedTheme{
		Template:        t.Template.Resolve(),
		PrimaryColor:    t.PrimaryColor,
		BackgroundColor: t.BackgroundColor,
		TextColor:       t.TextColor,
		Font:            t.Font,
		FontSizeHeading: t.FontSizeHeading,
		FontSizeBody:    t.FontSizeBody,
		LogoStyle:       t.LogoStyle,
	}
	if r.PrimaryColor == "" {
		r.PrimaryColor = DefaultPrimaryColor
	}
	if r.BackgroundColor == "" {
		r.BackgroundColor = DefaultBackgroundColor
	}
	if r.TextColor == "" {
		r.TextColor = DefaultTextColor
	}
	if r.FontSizeHeading == "" {
		r.FontSizeHeading = DefaultFontSizeHeading
	}
	if r.FontSizeBody == "" {
		r.FontSizeBody = DefaultFontSizeBody
	}
	if r.LogoStyle != LogoStyleCircle {
		r.LogoStyle = LogoStyleSquare
	}
	return r
}
