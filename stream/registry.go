package stream

// Registry holds the projection of every source table.
type Registry struct {
	projections []Projection
	byTable     map[string]Projection
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		projections: []Projection{},
		byTable:     make(map[string]Projection),
	}
}

// Register adds a projection to the registry. A later projection for the
// same table replaces the earlier one.
func (r *Registry) Register(p Projection) {
	if _, exists := r.byTable[p.Table]; exists {
		for i := range r.projections {
			if r.projections[i].Table == p.Table {
				r.projections[i] = p
			}
		}
	} else {
		r.projections = append(r.projections, p)
	}
	r.byTable[p.Table] = p
}

// For returns the projection of table.
func (r *Registry) For(table string) (Projection, bool) {
	p, ok := r.byTable[table]
	return p, ok
}

// All returns every registered projection in registration order.
func (r *Registry) All() []Projection {
	return r.projections
}

// Has returns true if table has a projection.
func (r *Registry) Has(table string) bool {
	_, ok := r.byTable[table]
	return ok
}
