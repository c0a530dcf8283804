package domain

// GatewayRecord holds the plan/actual/change-reference fact for one entity
// and one gateway. Absent dates are zero Dates, never missing map keys.
type GatewayRecord struct {
	Plan      Date
	Actual    Date
	Source    ActualSource // who owns Actual; not persisted, recomputed by rollup
	ChangeRef string       // free-text ECN reference
}

// Gateways maps every GatewayID to its record. A well-formed set always
// contains all five keys.
type Gateways map[GatewayID]*GatewayRecord

// NewGateways returns a complete gateway set with empty records.
func NewGateways() Gateways {
	g := make(Gateways, len(GatewayOrder))
	for _, id := range GatewayOrder {
		g[id] = &GatewayRecord{Source: SourceManual}
	}
	return g
}

// EnsureComplete fills in any missing gateway keys with empty records.
// Loaded data may predate a gateway being written.
func (g Gateways) EnsureComplete() {
	for _, id := range GatewayOrder {
		if g[id] == nil {
			g[id] = &GatewayRecord{Source: SourceManual}
		}
	}
}

func (g Gateways) clone() Gateways {
	out := make(Gateways, len(g))
	for id, rec := range g {
		c := *rec
		out[id] = &c
	}
	return out
}

// Project is the top of the three-level hierarchy. Its plan dates are
// authoritative user input; its actual dates are rollup targets whenever it
// has modules.
type Project struct {
	ID       int
	Name     string
	Type     ProjectType
	Gateways Gateways
	Modules  []*Module
}

// Module sits under a project. Its actual dates are user input until
// sub-modules exist, at which point the rollup engine owns them. Its plan
// dates are stored but never used in status math: status always compares
// against the owning project's plan.
type Module struct {
	ID         int
	Name       string
	Gateways   Gateways
	SubModules []*SubModule
}

// SubModule is a leaf. All gateway fields are user input.
type SubModule struct {
	ID       int
	Name     string
	Gateways Gateways
}

// NewProject builds an empty project with a complete gateway set.
func NewProject(id int, name string, typ ProjectType) *Project {
	return &Project{ID: id, Name: name, Type: typ, Gateways: NewGateways()}
}

// NewModule builds an empty module with a complete gateway set.
func NewModule(id int, name string) *Module {
	return &Module{ID: id, Name: name, Gateways: NewGateways()}
}

// NewSubModule builds an empty sub-module with a complete gateway set.
func NewSubModule(id int, name string) *SubModule {
	return &SubModule{ID: id, Name: name, Gateways: NewGateways()}
}

// FindModule returns the module with the exact (case-sensitive) name, or nil.
func (p *Project) FindModule(name string) *Module {
	for _, m := range p.Modules {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// FindSubModule returns the sub-module with the exact name, or nil.
func (m *Module) FindSubModule(name string) *SubModule {
	for _, s := range m.SubModules {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// RemoveModule detaches the named module and reports whether it existed.
func (p *Project) RemoveModule(name string) bool {
	for i, m := range p.Modules {
		if m.Name == name {
			p.Modules = append(p.Modules[:i], p.Modules[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSubModule detaches the named sub-module and reports whether it existed.
func (m *Module) RemoveSubModule(name string) bool {
	for i, s := range m.SubModules {
		if s.Name == name {
			m.SubModules = append(m.SubModules[:i], m.SubModules[i+1:]...)
			return true
		}
	}
	return false
}

// HasModules reports whether the project's actual dates are rollup targets.
func (p *Project) HasModules() bool { return len(p.Modules) > 0 }

// HasSubModules reports whether the module's actual dates are rollup targets.
func (m *Module) HasSubModules() bool { return len(m.SubModules) > 0 }

func (p *Project) Clone() *Project {
	c := &Project{ID: p.ID, Name: p.Name, Type: p.Type, Gateways: p.Gateways.clone()}
	for _, m := range p.Modules {
		c.Modules = append(c.Modules, m.Clone())
	}
	return c
}

func (m *Module) Clone() *Module {
	c := &Module{ID: m.ID, Name: m.Name, Gateways: m.Gateways.clone()}
	for _, s := range m.SubModules {
		c.SubModules = append(c.SubModules, s.Clone())
	}
	return c
}

func (s *SubModule) Clone() *SubModule {
	return &SubModule{ID: s.ID, Name: s.Name, Gateways: s.Gateways.clone()}
}
