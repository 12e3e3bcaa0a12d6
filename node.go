package barneshut

// noChild marks an absent octant slot in an internal node.
const noChild int32 = -1

// Node is either a leaf or an internal node of a Tree. Children are
// referenced by index into the owning Tree's flat Nodes slice, never
// by pointer, so the structure is contiguous, trivially shareable
// across readers, and cheap to serialize (spec.md §3, §9).
type Node struct {
	// Center is the geometric center of the node's region.
	Center Vec3
	// Size is the canonical scalar size used by the opening
	// criterion: the largest axis span of the node's region.
	Size float64

	// MassTotal is the sum of descendant masses.
	MassTotal float64
	// CenterOfMass is the mass-weighted mean position of
	// descendants. When MassTotal is zero it defaults to Center.
	CenterOfMass Vec3

	// IsLeaf distinguishes a leaf from an internal node.
	IsLeaf bool

	// Children holds up to eight child indices, one per octant,
	// noChild when that octant is empty. Unused for leaves.
	Children [8]int32

	// Bodies holds the leaf's source bodies. Unused for internal
	// nodes.
	Bodies []leafBody
}

// aggregate combines child mass/center-of-mass pairs the way an
// internal node combines its children, and the way a leaf combines
// its bodies: M = sum(Mi), M*C = sum(Mi*Ci); if M == 0, C defaults to
// fallback (spec.md §3, §4.1).
func aggregate(masses []float64, positions []Vec3, fallback Vec3) (massTotal float64, centerOfMass Vec3) {
	var weighted Vec3
	for i, m := range masses {
		massTotal += m
		weighted = weighted.Add(positions[i].Mul(m))
	}
	if massTotal == 0 {
		return 0, fallback
	}
	return massTotal, weighted.Div(massTotal)
}
