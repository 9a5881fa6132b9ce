package org

// Snapshot is a transferable copy of a Registry, sufficient for exact
// reconstruction in a later invocation. Collections keep registration order.
type Snapshot struct {
	Employees  []Employee        `json:"employees"`
	EmailIndex map[string]string `json:"emailIndex"`
	Cycles     []ReviewCycle     `json:"reviewCycles"`
}

// Export copies the registry's state into a Snapshot.
func (r *Registry) Export() Snapshot {
	index := make(map[string]string, len(r.emailIndex))
	for email, id := range r.emailIndex {
		index[email] = id
	}
	return Snapshot{
		Employees:  r.All(),
		EmailIndex: index,
		Cycles:     r.Cycles(),
	}
}

// FromSnapshot rebuilds a Registry whose every query answers identically to
// the registry the snapshot was exported from.
func FromSnapshot(s Snapshot) *Registry {
	r := NewRegistry()
	for _, e := range s.Employees {
		r.employees[e.ID] = e
		r.emailIndex[e.Email] = e.ID
		r.order = append(r.order, e.ID)
	}
	for _, c := range s.Cycles {
		r.RegisterCycle(c)
	}
	return r
}
