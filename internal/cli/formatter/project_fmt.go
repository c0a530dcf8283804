package formatter

import (
	"fmt"
	"strings"

	"github.com/mwidmann/gatetrack/internal/domain"
	"github.com/mwidmann/gatetrack/internal/rollup"
)

// FormatProjectList renders the project overview table: one row per project
// with its representative status and the five gateway dots.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"NAME", "TYPE", "D0", "D1", "D2", "D3", "D4", "STATUS"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		row := []string{Bold(p.Name), TypeBadge(p.Type)}
		for _, gw := range domain.GatewayOrder {
			row = append(row, StatusDot(rollup.ProjectGatewayStatus(p, gw)))
		}
		row = append(row, StatusIndicator(rollup.ProjectStatus(p)))
		rows = append(rows, row)
	}

	return RenderTable(headers, rows)
}

// FormatProjectInspect renders one project's full tree: the project gateway
// table followed by every module and sub-module. Derived actuals carry a
// trailing asterisk.
func FormatProjectInspect(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Type: %s\n\n", TypeBadge(p.Type)))

	b.WriteString(projectGatewayTable(p))

	for _, m := range p.Modules {
		b.WriteString("\n")
		b.WriteString(Bold(m.Name) + "\n")
		b.WriteString(childGatewayTable(p, "  ", m.Gateways))
		for _, sub := range m.SubModules {
			b.WriteString("\n")
			b.WriteString("  " + StyleFg.Render(sub.Name) + "\n")
			b.WriteString(childGatewayTable(p, "    ", sub.Gateways))
		}
	}

	if len(p.Modules) > 0 {
		b.WriteString("\n" + Dim("* derived from children") + "\n")
	}

	return b.String()
}

func projectGatewayTable(p *domain.Project) string {
	rows := make([][]string, 0, len(domain.GatewayOrder))
	for _, gw := range domain.GatewayOrder {
		rows = append(rows, gatewayRow(gw, p.Gateways[gw], rollup.ProjectGatewayStatus(p, gw)))
	}
	return RenderTable(gatewayHeaders, rows)
}

// childGatewayTable renders module and sub-module rows, whose statuses
// compare their actuals against the project plan.
func childGatewayTable(p *domain.Project, indent string, g domain.Gateways) string {
	rows := make([][]string, 0, len(domain.GatewayOrder))
	for _, gw := range domain.GatewayOrder {
		rows = append(rows, gatewayRow(gw, g[gw], rollup.ModuleGatewayStatus(p, g, gw)))
	}
	return indentLines(indent, RenderTable(gatewayHeaders, rows))
}

var gatewayHeaders = []string{"GATE", "PLAN", "ACTUAL", "ECN", "STATUS"}

func gatewayRow(gw domain.GatewayID, rec *domain.GatewayRecord, status domain.Status) []string {
	ecn := Dim("--")
	if rec.ChangeRef != "" {
		ecn = StyleBlue.Render(rec.ChangeRef)
	}
	return []string{
		StyleFg.Render(fmt.Sprintf("%s %s", gw, Dim(domain.GatewayLabels[gw]))),
		DateCell(rec.Plan),
		SourceMark(rec),
		ecn,
		StatusIndicator(status),
	}
}

func indentLines(indent, text string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		b.WriteString(indent + line + "\n")
	}
	return b.String()
}
