package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/fitlife/internal/tui/theme"
)

var hintStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)
