package rollup

import "github.com/mwidmann/gatetrack/internal/domain"

// Segment is one colored span of a module's timeline: the interval between
// two consecutive gateway actuals. Its status is the classification of the
// segment's end gateway against the project plan, so a segment ending in a
// late gateway is colored by that delay.
type Segment struct {
	From   domain.GatewayID
	To     domain.GatewayID
	Start  domain.Date
	End    domain.Date
	Status domain.Status
}

// ModuleSegments builds the timeline segments for one module. A segment
// exists only when both endpoint actuals are present; gaps produce no span.
func ModuleSegments(p *domain.Project, m *domain.Module) []Segment {
	var segments []Segment
	for i := 0; i < len(domain.GatewayOrder)-1; i++ {
		from := domain.GatewayOrder[i]
		to := domain.GatewayOrder[i+1]
		start := m.Gateways[from].Actual
		end := m.Gateways[to].Actual
		if start.IsZero() || end.IsZero() {
			continue
		}
		segments = append(segments, Segment{
			From:   from,
			To:     to,
			Start:  start,
			End:    end,
			Status: Classify(p.Gateways[to].Plan, end),
		})
	}
	return segments
}

// PlanSpan returns the project's planned D0 and D4 dates when both exist,
// the overall plan bar of the timeline view.
func PlanSpan(p *domain.Project) (start, end domain.Date, ok bool) {
	start = p.Gateways[domain.D0].Plan
	end = p.Gateways[domain.D4].Plan
	if start.IsZero() || end.IsZero() {
		return domain.Date{}, domain.Date{}, false
	}
	return start, end, true
}
