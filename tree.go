package barneshut

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Tree is an immutable octree over a set of source bodies, built once
// per timestep. Nodes are stored in a single flat slice and reference
// children by index; the tree owns all of its nodes and is safe for
// unbounded concurrent reads with no synchronization (spec.md §3, §5).
type Tree struct {
	Nodes  []Node
	Root   int32
	Bounds BoundingCube
}

// Build partitions sources inside bounds into an octree whose leaves
// hold at most cfg.MaxBodiesPerLeaf bodies, or reach depth
// cfg.MaxTreeDepth. It returns ErrEmptyInput when sources is empty,
// ErrBodyOutsideBounds when a source lies outside bounds, and
// ErrInvalidConfig when cfg fails validation.
//
// Subtree construction is parallelized across octants using a bounded
// worker pool; a serial build (forced by exhausting the pool) produces
// the same tree up to node ordering, which is not externally
// observable since children are referenced by index (spec.md §4.1,
// §5).
func Build(sources []Body, bounds BoundingCube, cfg Config) (*Tree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, ErrEmptyInput
	}

	positions := make([]Vec3, len(sources))
	masses := make([]float64, len(sources))
	indices := make([]int, len(sources))
	for i, s := range sources {
		p := s.Position()
		if !bounds.Contains(p) {
			return nil, fmt.Errorf("%w: source %d at %+v", ErrBodyOutsideBounds, i, p)
		}
		positions[i] = p
		masses[i] = s.Mass()
		indices[i] = i
	}

	b := &builder{
		positions: positions,
		masses:    masses,
		cfg:       cfg,
		sem:       make(chan struct{}, runtime.GOMAXPROCS(0)),
	}
	nodes, root, err := b.build(indices, bounds, 0)
	if err != nil {
		return nil, err
	}
	return &Tree{Nodes: nodes, Root: root, Bounds: bounds}, nil
}

// builder carries the read-only source arrays and the concurrency
// bound shared across the whole recursive build.
type builder struct {
	positions []Vec3
	masses    []float64
	cfg       Config
	sem       chan struct{}
}

// childResult is the outcome of building one octant's subtree,
// addressed by octant index so results can be merged in a fixed
// order regardless of goroutine completion order (spec.md §5
// determinism).
type childResult struct {
	nodes []Node
	root  int32
}

// build constructs the subtree rooted at region containing the given
// source indices, returning a self-contained, topologically-sorted
// node slice (children precede the subtree's own root, which is last)
// and the index of that root within the returned slice.
func (b *builder) build(indices []int, region BoundingCube, depth uint) ([]Node, int32, error) {
	if uint(len(indices)) <= b.cfg.MaxBodiesPerLeaf || depth >= b.cfg.MaxTreeDepth {
		return b.buildLeaf(indices, region), 0, nil
	}

	var buckets [8][]int
	for _, idx := range indices {
		o := region.octant(b.positions[idx])
		buckets[o] = append(buckets[o], idx)
	}

	results := make([]childResult, 8)
	var g errgroup.Group
	for o := 0; o < 8; o++ {
		if len(buckets[o]) == 0 {
			continue
		}
		o := o
		childRegion := region.child(o)

		// Non-blocking: take a worker slot if one is free, otherwise
		// recurse inline on this goroutine. This bounds concurrency
		// without ever blocking a goroutine that may itself be
		// holding a slot an ancestor call is waiting on.
		select {
		case b.sem <- struct{}{}:
			g.Go(func() error {
				defer func() { <-b.sem }()
				nodes, root, err := b.build(buckets[o], childRegion, depth+1)
				if err != nil {
					return err
				}
				results[o] = childResult{nodes: nodes, root: root}
				return nil
			})
		default:
			nodes, root, err := b.build(buckets[o], childRegion, depth+1)
			if err != nil {
				return nil, 0, err
			}
			results[o] = childResult{nodes: nodes, root: root}
		}
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	var merged []Node
	var children [8]int32
	var childMasses []float64
	var childComs []Vec3
	for o := 0; o < 8; o++ {
		if len(buckets[o]) == 0 {
			children[o] = noChild
			continue
		}
		r := results[o]
		offset := int32(len(merged))
		for _, n := range r.nodes {
			if !n.IsLeaf {
				for i, c := range n.Children {
					if c != noChild {
						n.Children[i] = c + offset
					}
				}
			}
			merged = append(merged, n)
		}
		children[o] = offset + r.root
		root := merged[children[o]]
		childMasses = append(childMasses, root.MassTotal)
		childComs = append(childComs, root.CenterOfMass)
	}

	massTotal, com := aggregate(childMasses, childComs, region.Center)
	node := Node{
		Center:       region.Center,
		Size:         region.Size(),
		MassTotal:    massTotal,
		CenterOfMass: com,
		IsLeaf:       false,
		Children:     children,
	}
	merged = append(merged, node)
	return merged, int32(len(merged) - 1), nil
}

// buildLeaf emits a single leaf node holding copies of the given
// source tuples.
func (b *builder) buildLeaf(indices []int, region BoundingCube) []Node {
	bodies := make([]leafBody, len(indices))
	masses := make([]float64, len(indices))
	positions := make([]Vec3, len(indices))
	for i, idx := range indices {
		bodies[i] = leafBody{Position: b.positions[idx], Mass: b.masses[idx], ID: idx}
		masses[i] = b.masses[idx]
		positions[i] = b.positions[idx]
	}
	massTotal, com := aggregate(masses, positions, region.Center)
	return []Node{{
		Center:       region.Center,
		Size:         region.Size(),
		MassTotal:    massTotal,
		CenterOfMass: com,
		IsLeaf:       true,
		Bodies:       bodies,
	}}
}
