package footer

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Footer renders key hints on the left and rightContent flush right.
type Footer struct {
	hints        []string
	rightContent string
	width        int
	padding      int
}

func New(hints []string, rightContent string, width int) Footer {
	return Footer{
		hints:        hints,
		rightContent: rightContent,
		width:        width,
		padding:      2,
	}
}

func (f Footer) Render() string {
	leftContent := f.leftContent()

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(f.rightContent)
	spacerWidth := max(f.width-leftWidth-rightWidth-(f.padding*2), 1)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		PaddingBottom(1).
		Render(leftContent + strings.Repeat(" ", spacerWidth) + f.rightContent)
}

func (f Footer) leftContent() string {
	return hintStyle.Render(strings.Join(f.hints, "  •  "))
}
