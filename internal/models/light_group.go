package models

// LightGroup is a named, ordered, deduplicated set of light ids that can be
// controlled as a unit. Member order is insertion order.
type LightGroup struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LightIDs []int  `json:"light_ids"`
}

// HasLight reports whether id is already a member.
func (g *LightGroup) HasLight(id int) bool {
	for _, lid := range g.LightIDs {
		if lid == id {
			return true
		}
	}
	return false
}

// AddLight appends id unless it is already a member.
func (g *LightGroup) AddLight(id int) {
	if g.HasLight(id) {
		return
	}
	g.LightIDs = append(g.LightIDs, id)
}

// RemoveLight drops id from the member list, preserving the order of the
// remaining members. Removing a non-member is a no-op.
func (g *LightGroup) RemoveLight(id int) {
	out := g.LightIDs[:0]
	for _, lid := range g.LightIDs {
		if lid != id {
			out = append(out, lid)
		}
	}
	g.LightIDs = out
}
