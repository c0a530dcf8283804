package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwidmann/gatetrack/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// DateCell renders a date for table output, dimming the absent case.
func DateCell(d domain.Date) string {
	if d.IsZero() {
		return StyleDim.Render("--")
	}
	return StyleFg.Render(d.String())
}

// TypeBadge returns a purple-styled project type label.
func TypeBadge(t domain.ProjectType) string {
	if t == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(string(t))
}

// SourceMark appends a marker to derived actual dates so readers can tell
// rolled-up values from direct entries.
func SourceMark(rec *domain.GatewayRecord) string {
	if rec.Actual.IsZero() || rec.Source != domain.SourceDerived {
		return DateCell(rec.Actual)
	}
	return StyleFg.Render(rec.Actual.String()) + StyleDim.Render("*")
}
