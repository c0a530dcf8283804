package formatter

import (
	"fmt"
	"strings"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/rollup"
)

// FormatTimeline renders the gateway-to-gateway spans of one module. Each
// segment line shows the interval, its length in days, and the color of the
// closing gateway against the project plan.
func FormatTimeline(p *domain.Project, module string, segments []rollup.Segment) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s / %s", p.Name, module)))
	b.WriteString("\n")

	if start, end, ok := rollup.PlanSpan(p); ok {
		b.WriteString(fmt.Sprintf("Plan: %s to %s\n\n",
			StyleFg.Render(start.String()), StyleFg.Render(end.String())))
	}

	if len(segments) == 0 {
		b.WriteString(Dim("No completed gateway spans yet.") + "\n")
		return b.String()
	}

	headers := []string{"SPAN", "START", "END", "DAYS", "STATUS"}
	rows := make([][]string, 0, len(segments))
	for _, seg := range segments {
		days := seg.End.DaysSince(seg.Start)
		rows = append(rows, []string{
			Bold(fmt.Sprintf("%s → %s", seg.From, seg.To)),
			DateCell(seg.Start),
			DateCell(seg.End),
			StyleFg.Render(fmt.Sprintf("%d", days)),
			StatusIndicator(seg.Status),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return b.String()
}
