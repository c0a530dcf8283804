package formatter

import (
	"fmt"
	"strings"

	"github.com/mwidmann/gatetrack/internal/rollup"
	"github.com/mwidmann/gatetrack/internal/service"
)

// FormatDashboard renders the portfolio dashboard: the project status table,
// the color bucket counts, and the plan adherence rate.
func FormatDashboard(report *service.StatusReport) string {
	var b strings.Builder

	if len(report.Projects) == 0 {
		b.WriteString(Dim("No projects tracked.") + "\n")
	} else {
		b.WriteString(FormatProjectList(report.Projects))
	}

	stats := report.Stats
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s tracked, %s active\n",
		Bold(fmt.Sprintf("%d projects", stats.Total)),
		StyleBlue.Render(fmt.Sprintf("%d", stats.Active))))

	redPart := StyleRed.Render(fmt.Sprintf("%d Critical", stats.Red))
	yellowPart := StyleYellow.Render(fmt.Sprintf("%d At Risk", stats.Yellow))
	greenPart := StyleGreen.Render(fmt.Sprintf("%d On Time", stats.Green))
	b.WriteString(fmt.Sprintf("%s, %s, %s\n", redPart, yellowPart, greenPart))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Plan adherence: %s\n", adherenceStyled(report.Adherence)))

	return RenderBox("Dashboard", b.String())
}

func adherenceStyled(pct float64) string {
	text := fmt.Sprintf("%.1f%%", pct)
	switch {
	case pct >= 90:
		return StyleGreen.Render(text)
	case pct >= 70:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

// FormatBreakdown renders the per-project distribution of late and on-time
// module gateway completions.
func FormatBreakdown(rows []rollup.AdherenceBreakdown) string {
	headers := []string{"PROJECT", "ON TIME", "AT RISK", "CRITICAL", ""}
	table := make([][]string, 0, len(rows))

	for _, r := range rows {
		table = append(table, []string{
			Bold(r.Project),
			StyleGreen.Render(fmt.Sprintf("%d", r.Green)),
			StyleYellow.Render(fmt.Sprintf("%d", r.Yellow)),
			StyleRed.Render(fmt.Sprintf("%d", r.Red)),
			breakdownBar(r),
		})
	}

	return RenderBox("Adherence", RenderTable(headers, table))
}

// breakdownBar draws a proportional colored bar for one project's counts.
func breakdownBar(r rollup.AdherenceBreakdown) string {
	total := r.Green + r.Yellow + r.Red
	if total == 0 {
		return Dim("(no completed gateways)")
	}
	return StyleGreen.Render(strings.Repeat("█", r.Green)) +
		StyleYellow.Render(strings.Repeat("█", r.Yellow)) +
		StyleRed.Render(strings.Repeat("█", r.Red))
}
