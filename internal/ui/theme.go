package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AirframeDeskTheme wraps the default Fyne theme with compact sizing for the
// long input forms. A fixed variant overrides the system light/dark choice.
type AirframeDeskTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	fixed   bool
}

// NewAirframeDeskTheme creates a theme following the system variant.
func NewAirframeDeskTheme() *AirframeDeskTheme {
	return &AirframeDeskTheme{base: theme.DefaultTheme()}
}

// NewAirframeDeskThemeWithVariant creates a theme with a fixed variant.
func NewAirframeDeskThemeWithVariant(variant fyne.ThemeVariant) *AirframeDeskTheme {
	return &AirframeDeskTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
		fixed:   true,
	}
}

// themeFor maps the config setting ("light", "dark", "system") to a theme.
func themeFor(name string) *AirframeDeskTheme {
	switch name {
	case "light":
		return NewAirframeDeskThemeWithVariant(theme.VariantLight)
	case "dark":
		return NewAirframeDeskThemeWithVariant(theme.VariantDark)
	default:
		return NewAirframeDeskTheme()
	}
}

func (t *AirframeDeskTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.fixed {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

func (t *AirframeDeskTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *AirframeDeskTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizes so that a component fits on one screen.
func (t *AirframeDeskTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 5
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
