package content

// Catalog is the ordered, immutable list of projects.
type Catalog struct {
	projects []Project
}

// Lookup is the result of finding a project by id.
type Lookup struct {
	Project Project
	Found   bool
}

// NewCatalog copies projects so later changes to the slice do not leak in.
func NewCatalog(projects []Project) *Catalog {
	cp := make([]Project, len(projects))
	copy(cp, projects)
	return &Catalog{projects: cp}
}

// Projects returns a copy of the catalog in display order.
func (c *Catalog) Projects() []Project {
	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Len is the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// Lookup returns the first project with the given id.
func (c *Catalog) Lookup(id int) Lookup {
	for _, p := range c.projects {
		if p.ID == id {
			return Lookup{Project: p, Found: true}
		}
	}
	return Lookup{}
}
