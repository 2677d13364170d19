package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate_Resolve_Fallback(t *testing.T) {
	tests := []struct {
		name  string
		input Template
		want  Template
	}{
		{"default stays default", TemplateDefault, TemplateDefault},
		{"gallery recognized", TemplateGallery, TemplateGallery},
		{"minimalist recognized", TemplateMinimalist, TemplateMinimalist},
		{"empty falls back", Template(""), TemplateDefault},
		{"unknown falls back", Template("BRUTALIST"), TemplateDefault},
		{"lowercase is not recognized", Template("gallery"), TemplateDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Resolve())
		})
	}
}

func TestTheme_Resolved_Defaults(t *testing.T) {
	r := Theme{}.Resolved()

	assert.Equal(t, TemplateDefault, r.Template)
	assert.Equal(t, DefaultPrimaryColor, r.PrimaryColor)
	assert.Equal(t, DefaultBackgroundColor, r.BackgroundColor)
	assert.Equal(t, DefaultTextColor, r.TextColor)
	assert.Equal(t, DefaultFontSizeHeading, r.FontSizeHeading)
	assert.Equal(t, DefaultFontSizeBody, r.FontSizeBody)
	assert.Equal(t, LogoStyleSquare, r.LogoStyle)
}

func TestTheme_Resolved_KeepsExplicitValues(t *testing.T) {
	theme := Theme{
		Template:        TemplateMinimalist,
		PrimaryColor:    "#FF0000",
		BackgroundColor: "#000000",
		TextColor:       "#EEEEEE",
		Font:            "font-serif",
		FontSizeHeading: "text-5xl",
		FontSizeBody:    "text-sm",
		LogoStyle:       LogoStyleCircle,
	}

	r := theme.Resolved()

	assert.Equal(t, TemplateMinimalist, r.Template)
	assert.Equal(t, "#FF0000", r.PrimaryColor)
	assert.Equal(t, "#000000", r.BackgroundColor)
	assert.Equal(t, "#EEEEEE", r.TextColor)
	assert.Equal(t, "font-serif", r.Font)
	assert.Equal(t, "text-5xl", r.FontSizeHeading)
	assert.Equal(t, "text-sm", r.FontSizeBody)
	assert.Equal(t, LogoStyleCircle, r.LogoStyle)
}

func TestTheme_Resolved_UnknownLogoStyleBecomesSquare(t *testing.T) {
	r := Theme{LogoStyle: LogoStyle("hexagon")}.Resolved()
	assert.Equal(t, LogoStyleSquare, r.LogoStyle)
}
