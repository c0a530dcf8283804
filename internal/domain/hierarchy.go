package domain

import "fmt"

// Hierarchy is the single in-memory tree of all projects. It is the unit of
// load/save and the caller-owned state every engine operation works on.
type Hierarchy struct {
	Projects []*Project

	nextID int
}

// NewHierarchy returns an empty hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{nextID: 1}
}

// NextID allocates a fresh identifier, unique across projects, modules and
// sub-modules. The sequence is seeded from the highest existing ID so that
// externally loaded data never collides with new entities.
func (h *Hierarchy) NextID() int {
	if h.nextID == 0 {
		h.seedSequence()
	}
	id := h.nextID
	h.nextID++
	return id
}

func (h *Hierarchy) seedSequence() {
	maxID := 0
	h.walkIDs(func(id int) {
		if id > maxID {
			maxID = id
		}
	})
	h.nextID = maxID + 1
}

func (h *Hierarchy) walkIDs(fn func(int)) {
	for _, p := range h.Projects {
		fn(p.ID)
		for _, m := range p.Modules {
			fn(m.ID)
			for _, s := range m.SubModules {
				fn(s.ID)
			}
		}
	}
}

// ValidateIdentity checks that every ID in the tree is globally unique.
// Run at load time; sharing an ID is a data-integrity violation.
func (h *Hierarchy) ValidateIdentity() error {
	seen := make(map[int]bool)
	var dup error
	h.walkIDs(func(id int) {
		if dup != nil {
			return
		}
		if seen[id] {
			dup = fmt.Errorf("%w: id %d appears more than once", ErrDuplicateIdentity, id)
			return
		}
		seen[id] = true
	})
	return dup
}

// FindProject returns the project with the exact (case-sensitive) name, or nil.
func (h *Hierarchy) FindProject(name string) *Project {
	for _, p := range h.Projects {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// FindProjectByID returns the project with the given ID, or nil.
func (h *Hierarchy) FindProjectByID(id int) *Project {
	for _, p := range h.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// DuplicateProjectName returns the first project name shared by two projects,
// if any. A duplicated name makes name-keyed bulk merge ambiguous.
func (h *Hierarchy) DuplicateProjectName() (string, bool) {
	seen := make(map[string]bool, len(h.Projects))
	for _, p := range h.Projects {
		if seen[p.Name] {
			return p.Name, true
		}
		seen[p.Name] = true
	}
	return "", false
}

// Clone deep-copies the whole tree. The merge engine mutates a clone so a
// failed import leaves the caller's hierarchy untouched.
func (h *Hierarchy) Clone() *Hierarchy {
	c := &Hierarchy{nextID: h.nextID}
	for _, p := range h.Projects {
		c.Projects = append(c.Projects, p.Clone())
	}
	return c
}

// AddProject appends a new empty project with a fresh ID.
func (h *Hierarchy) AddProject(name string, typ ProjectType) *Project {
	p := NewProject(h.NextID(), name, typ)
	h.Projects = append(h.Projects, p)
	return p
}

// RemoveProject detaches the named project and reports whether it existed.
func (h *Hierarchy) RemoveProject(name string) bool {
	for i, p := range h.Projects {
		if p.Name == name {
			h.Projects = append(h.Projects[:i], h.Projects[i+1:]...)
			return true
		}
	}
	return false
}
