package domain

// GatewayID identifies one of the five fixed program milestones.
type GatewayID string

const (
	D0 GatewayID = "D0" // Concept
	D1 GatewayID = "D1" // Prototype
	D2 GatewayID = "D2" // Pilot
	D3 GatewayID = "D3" // Launch
	D4 GatewayID = "D4" // Close
)

// GatewayOrder is the fixed total order of gateways, used by the timeline
// segment builder. It is not enforced as a date-ordering constraint on input.
var GatewayOrder = [5]GatewayID{D0, D1, D2, D3, D4}

// GatewayLabels maps each gateway to its milestone name.
var GatewayLabels = map[GatewayID]string{
	D0: "Concept",
	D1: "Prototype",
	D2: "Pilot",
	D3: "Launch",
	D4: "Close",
}

// ValidGatewayIDs is the canonical set of accepted gateway identifiers.
var ValidGatewayIDs = map[GatewayID]bool{
	D0: true, D1: true, D2: true, D3: true, D4: true,
}

// ParseGatewayID validates s against the fixed D0-D4 set.
func ParseGatewayID(s string) (GatewayID, error) {
	id := GatewayID(s)
	if !ValidGatewayIDs[id] {
		return "", errUnknownGateway(s)
	}
	return id, nil
}

// Status is the four-valued RAG health classification of a gateway.
type Status string

const (
	StatusGrey   Status = "grey"   // pending: no actual, or no plan to compare against
	StatusGreen  Status = "green"  // on track: no delay
	StatusYellow Status = "yellow" // at risk: 1-30 days late
	StatusRed    Status = "red"    // critical: more than 30 days late
)

// ActualSource says whether an actual date slot accepts direct writes.
// Parents with children carry derived actuals owned by the rollup engine;
// everything else is manual user input.
type ActualSource string

const (
	SourceManual  ActualSource = "manual"
	SourceDerived ActualSource = "derived"
)

// ProjectType classifies a program. Stored as a free string; these are the
// values the product recognizes.
type ProjectType string

const (
	TypeMajor     ProjectType = "Major"
	TypeMinor     ProjectType = "Minor"
	TypeCarryover ProjectType = "Carryover"
)
