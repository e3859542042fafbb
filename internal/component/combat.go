package component

// Health of a unit. Value may drop below zero before the unit is removed.
type Health struct {
	Value int
	Max   int
}

// Damage is subtracted from a target's health on every hit.
type Damage struct {
	Value int
}

// Range is the largest Manhattan distance at which a tower engages.
type Range struct {
	Value int
}

// Alive reports whether the unit still has health left.
func (h Health) Alive() bool {
	return h.Value > 0
}
