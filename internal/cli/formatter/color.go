package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/creative-copilot/backend/internal/models"
)

var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleDim     = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold    = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleHashtag = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleAgent   = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
)

var layoutColors = map[models.LayoutStyle]lipgloss.Color{
	models.LayoutMinimal:      ColorFg,
	models.LayoutBold:         ColorRed,
	models.LayoutLifestyle:    ColorPurple,
	models.LayoutProductFocus: ColorYellow,
	models.LayoutTestimonial:  ColorGreen,
}

// LayoutColor is the accent used for cards of a layout.
func LayoutColor(layout models.LayoutStyle) lipgloss.Color {
	if c, ok := layoutColors[layout]; ok {
		return c
	}
	return ColorDim
}

// Badge renders "[text]" in the given color.
func Badge(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render("[" + text + "]")
}

func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
