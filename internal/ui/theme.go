package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Dark palette
var (
	colorBackground = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255}
	colorSurface    = color.RGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 255}
	colorForeground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorSuccess    = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	colorError      = color.RGBA{R: 183, G: 28, B: 28, A: 255}
)

// AccentTheme is the app's dark theme with a configurable accent used for
// primary actions and the progress bar.
type AccentTheme struct {
	accent color.Color
}

// NewAccentTheme creates the theme for an accent given as "#RRGGBB". An
// unparseable value falls back to the default accent.
func NewAccentTheme(hex string) fyne.Theme {
	accent, err := ParseHexColor(hex)
	if err != nil {
		accent, _ = ParseHexColor(defaultAccentHex)
	}
	return &AccentTheme{accent: accent}
}

// ParseHexColor parses a "#RRGGBB" string into an opaque color.
func ParseHexColor(hex string) (color.Color, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return nil, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// Color returns theme colors
func (t *AccentTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return t.accent
	case theme.ColorNameBackground:
		return colorBackground
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return colorSurface
	case theme.ColorNameForeground:
		return colorForeground
	case theme.ColorNameSuccess:
		return colorSuccess
	case theme.ColorNameError:
		return colorError
	}

	// Use default dark colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *AccentTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AccentTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *AccentTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
