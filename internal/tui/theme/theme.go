package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	dark       bool
	background color.Color
	foreground color.Color
	running    color.Color
}

// New returns the palette for the saved dark-mode preference.
func New(dark bool) Theme {
	if dark {
		return Theme{
			dark:       true,
			background: ColorBgDark,
			foreground: ColorWhite,
			running:    ColorTeal,
		}
	}
	return Theme{
		background: ColorBgLight,
		foreground: ColorFgDark,
		running:    ColorInkBlue,
	}
}

func (t Theme) Dark() bool {
	return t.dark
}

func (t Theme) Base() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.foreground)
}

func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

func (t Theme) Running() color.Color {
	return t.running
}

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Foreground() color.Color {
	return t.foreground
}
