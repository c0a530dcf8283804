package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwidmann/gatetrack/internal/domain"
)

// Gruvbox-inspired color palette.
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

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the lipgloss style for a gateway status.
func StatusStyle(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusGreen:
		return StyleGreen
	case domain.StatusYellow:
		return StyleYellow
	case domain.StatusRed:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored indicator string such as "● LATE".
func StatusIndicator(s domain.Status) string {
	switch s {
	case domain.StatusGreen:
		return StyleGreen.Render("● ON TIME")
	case domain.StatusYellow:
		return StyleYellow.Render("● AT RISK")
	case domain.StatusRed:
		return StyleRed.Render("● CRITICAL")
	default:
		return StyleDim.Render("○ PENDING")
	}
}

// StatusDot is the compact single-cell form used in the gateway matrix.
func StatusDot(s domain.Status) string {
	if s == domain.StatusGrey {
		return StyleDim.Render("○")
	}
	return StatusStyle(s).Render("●")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
