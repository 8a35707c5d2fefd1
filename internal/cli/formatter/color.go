package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/erickthegreen/crafttable/internal/domain"
)

// Base palette.
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

// Category accent colors, carried over from the desktop tab palette.
var (
	ColorEmergency   = lipgloss.Color("#F16060")
	ColorCommercial  = lipgloss.Color("#F0F880")
	ColorInformation = lipgloss.Color("#AEF3AE")
	ColorComplaint   = lipgloss.Color("#AFB5FF")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryColor returns the accent color of a history category.
func CategoryColor(c domain.Category) lipgloss.Color {
	switch c {
	case domain.CategoryEmergency:
		return ColorEmergency
	case domain.CategoryCommercial:
		return ColorCommercial
	case domain.CategoryInformation:
		return ColorInformation
	case domain.CategoryComplaint:
		return ColorComplaint
	default:
		return ColorDim
	}
}

// CategoryStyle returns a bold style in the category's accent color.
func CategoryStyle(c domain.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CategoryColor(c)).Bold(true)
}

// Header renders a section header with the accent style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
