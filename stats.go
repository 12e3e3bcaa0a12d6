package barneshut

// Stats summarizes the shape of a built Tree: how deep it went, how
// many nodes and leaves it produced, and how full its leaves are.
// It is a diagnostic accessor, not part of the hot query path — the
// spec's scaling-sanity property (spec.md §8) needs some way to
// observe tree shape without walking it by hand.
type Stats struct {
	NodeCount         int
	LeafCount         int
	MaxDepth          int
	TotalBodies       int
	MaxBodiesInLeaf   int
	MeanBodiesPerLeaf float64
}

// Stats walks tree and computes Stats. It allocates no more than a
// small recursion stack and is safe to call concurrently with
// Evaluate.
func (t *Tree) Stats() Stats {
	if t == nil || len(t.Nodes) == 0 {
		return Stats{}
	}
	var s Stats
	s.NodeCount = len(t.Nodes)
	statsWalk(t, t.Root, 0, &s)
	if s.LeafCount > 0 {
		s.MeanBodiesPerLeaf = float64(s.TotalBodies) / float64(s.LeafCount)
	}
	return s
}

func statsWalk(t *Tree, nodeIdx int32, depth int, s *Stats) {
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	node := &t.Nodes[nodeIdx]
	if node.IsLeaf {
		s.LeafCount++
		s.TotalBodies += len(node.Bodies)
		if len(node.Bodies) > s.MaxBodiesInLeaf {
			s.MaxBodiesInLeaf = len(node.Bodies)
		}
		return
	}
	for _, child := range node.Children {
		if child != noChild {
			statsWalk(t, child, depth+1, s)
		}
	}
}
