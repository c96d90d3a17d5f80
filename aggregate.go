package visitology

// Aggregate holds a registry acting as element visitor
type Aggregate[H, R any] struct {
	registry *Registry[H, R]
}

// Visitor returns aggregated registry
func (a *Aggregate[H, R]) Visitor() *Registry[H, R] {
	return a.registry
}

// setRegistry sets registry and returns the previous one
func (a *Aggregate[H, R]) setRegistry(registry *Registry[H, R]) *Registry[H, R] {
	old := a.registry
	a.registry = registry
	return old
}

// NewAggregate creates an aggregate for supplied registry
func NewAggregate[H, R any](registry *Registry[H, R]) *Aggregate[H, R] {
	ret := &Aggregate[H, R]{}
	ret.setRegistry(registry)
	return ret
}
