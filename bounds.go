package barneshut

import "math"

// boundsEpsilon is the span EnclosingCube uses when every source
// coincides, and the pad it adds to every half-width, so even a
// single-point input produces a non-zero-volume cube.
const boundsEpsilon = 1e-9

// BoundingCube is an axis-aligned region defined by a center and a
// per-axis half-extent. It is customarily cubic (all three
// components of HalfExtent equal), but Build and Evaluate tolerate a
// rectangular box; per spec.md's design note, the opening criterion
// then uses the largest axis span as the node's canonical size, which
// is the conservative choice.
type BoundingCube struct {
	Center     Vec3
	HalfExtent Vec3
}

// NewCube constructs a cubic bounding region with the given center
// and half-width applied uniformly to all three axes.
func NewCube(center Vec3, halfWidth float64) BoundingCube {
	return BoundingCube{Center: center, HalfExtent: Vec3{halfWidth, halfWidth, halfWidth}}
}

// Size returns the largest axis span of the region, the canonical
// scalar size used by the opening criterion (spec.md §4.2, §9).
func (c BoundingCube) Size() float64 {
	return 2 * math.Max(c.HalfExtent.X, math.Max(c.HalfExtent.Y, c.HalfExtent.Z))
}

// Contains reports whether p lies within c, inclusive of the
// boundary.
func (c BoundingCube) Contains(p Vec3) bool {
	return math.Abs(p.X-c.Center.X) <= c.HalfExtent.X &&
		math.Abs(p.Y-c.Center.Y) <= c.HalfExtent.Y &&
		math.Abs(p.Z-c.Center.Z) <= c.HalfExtent.Z
}

// octant returns the octant index (0-7) of p within c: bit 0 is set
// when p.X is on the positive (>=) side of the center, bit 1 for Y,
// bit 2 for Z. A coordinate exactly on the splitting plane is
// deterministically assigned to the positive side.
func (c BoundingCube) octant(p Vec3) int {
	idx := 0
	if p.X >= c.Center.X {
		idx |= 1
	}
	if p.Y >= c.Center.Y {
		idx |= 2
	}
	if p.Z >= c.Center.Z {
		idx |= 4
	}
	return idx
}

// octantSigns holds the +/-1 offset pattern applied to each axis for
// octant index 0-7, in the same bit order as octant(). Index order
// matters for build determinism (spec.md §5): children are always
// produced and merged in this fixed order.
var octantSigns = [8]Vec3{
	{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
}

// child returns the sub-cube for the given octant index.
func (c BoundingCube) child(octant int) BoundingCube {
	sign := octantSigns[octant]
	half := Vec3{c.HalfExtent.X / 2, c.HalfExtent.Y / 2, c.HalfExtent.Z / 2}
	offset := Vec3{sign.X * half.X, sign.Y * half.Y, sign.Z * half.Z}
	return BoundingCube{Center: c.Center.Add(offset), HalfExtent: half}
}

// EnclosingCube computes the smallest cube (equal half-extent on all
// axes) enclosing every body's position, scaled up by a small safety
// factor so that no body lands exactly on the boundary. It is utility
// code, not part of the core algorithm (spec.md §4.3); callers may
// build their own BoundingCube instead, e.g. to reuse one across
// several timesteps with a caller-chosen pad.
func EnclosingCube(bodies []Body) (BoundingCube, error) {
	if len(bodies) == 0 {
		return BoundingCube{}, ErrEmptyInput
	}

	min := bodies[0].Position()
	max := min
	for _, b := range bodies[1:] {
		p := b.Position()
		min.X, max.X = math.Min(min.X, p.X), math.Max(max.X, p.X)
		min.Y, max.Y = math.Min(min.Y, p.Y), math.Max(max.Y, p.Y)
		min.Z, max.Z = math.Min(min.Z, p.Z), math.Max(max.Z, p.Z)
	}

	span := math.Max(max.X-min.X, math.Max(max.Y-min.Y, max.Z-min.Z))
	if span <= 0 {
		span = boundsEpsilon
	}
	// Small safety factor so a source exactly at the enclosing
	// boundary is strictly inside the cube after floating-point
	// rounding.
	halfWidth := span/2*(1+1e-9) + boundsEpsilon

	center := Vec3{
		X: (min.X + max.X) / 2,
		Y: (min.Y + max.Y) / 2,
		Z: (min.Z + max.Z) / 2,
	}
	return NewCube(center, halfWidth), nil
}
