package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorTeal    = lipgloss.Color("#00F19F") // running timer, confirmations
	ColorAmber   = lipgloss.Color("#FFDE00") // paused timer
	ColorRed     = lipgloss.Color("#FF0026") // failures
	ColorSlate   = lipgloss.Color("#7BA1BB") // idle timer, secondary text
	ColorInkBlue = lipgloss.Color("#0B3D91") // running timer on light backgrounds
)

var (
	ColorBgDark  = lipgloss.Color("#101518")
	ColorBgLight = lipgloss.Color("#F4F6F7")
	ColorFgDark  = lipgloss.Color("#1B1F22")
)
