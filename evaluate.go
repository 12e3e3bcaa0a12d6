package barneshut

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// selfEpsilon is the implementation-defined distance below which a
// leaf body is skipped as a defense against division-by-zero even
// when ids are not in use, and below which an internal node's
// center-of-mass distance is treated as zero (never accepted as a
// pseudo-body; always descended).
const selfEpsilon = 1e-12

// Evaluate walks tree depth-first from the root and returns the
// Barnes-Hut-approximated sum of kernel contributions from every
// source, as seen from target. targetID suppresses self-interaction
// when the target is itself one of the sources the tree was built
// from; pass an id outside the source index range (e.g. -1) when the
// target is not a source.
//
// Evaluate never fails: a target with no interacting sources (empty
// tree region, or the all-self case) returns the zero vector. NaNs
// produced by a misbehaving kernel propagate unchanged.
func Evaluate(target Vec3, targetID int, tree *Tree, cfg Config, kernel Kernel) Vec3 {
	if tree == nil || len(tree.Nodes) == 0 {
		return Vec3{}
	}
	return evaluateNode(tree, tree.Root, target, targetID, cfg, kernel)
}

func evaluateNode(tree *Tree, nodeIdx int32, target Vec3, targetID int, cfg Config, kernel Kernel) Vec3 {
	node := &tree.Nodes[nodeIdx]

	if node.IsLeaf {
		var sum Vec3
		for _, body := range node.Bodies {
			if body.ID == targetID {
				continue
			}
			d := body.Position.Sub(target)
			dist := d.Magnitude()
			if dist < selfEpsilon {
				continue
			}
			sum = sum.Add(kernel(d.Div(dist), body.Mass, dist))
		}
		return sum
	}

	d := node.CenterOfMass.Sub(target)
	distSq := d.MagnitudeSq()

	if distSq >= selfEpsilon*selfEpsilon &&
		node.Size*node.Size < cfg.Theta*cfg.Theta*distSq &&
		node.MassTotal != 0 {
		dist := d.Magnitude()
		return kernel(d.Div(dist), node.MassTotal, dist)
	}

	var sum Vec3
	for _, child := range node.Children {
		if child == noChild {
			continue
		}
		sum = sum.Add(evaluateNode(tree, child, target, targetID, cfg, kernel))
	}
	return sum
}

// Target pairs a query position with the source id (if any) it
// corresponds to, for use with EvaluateAll.
type Target struct {
	Position Vec3
	ID       int
}

// EvaluateAll runs Evaluate independently over every target, using a
// bounded worker pool. It is optional sugar over the caller's own
// parallel outer loop (spec.md §2, §5, §9 "Parallelism boundary"): the
// core still performs no outer parallelism unless a caller opts into
// this helper, and Evaluate itself remains safe to call directly from
// a caller-managed loop.
func EvaluateAll(targets []Target, tree *Tree, cfg Config, kernel Kernel) []Vec3 {
	results := make([]Vec3, len(targets))
	if tree == nil || len(tree.Nodes) == 0 {
		return results
	}

	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var g errgroup.Group
	for i, t := range targets {
		i, t := i, t
		select {
		case sem <- struct{}{}:
			g.Go(func() error {
				defer func() { <-sem }()
				results[i] = Evaluate(t.Position, t.ID, tree, cfg, kernel)
				return nil
			})
		default:
			results[i] = Evaluate(t.Position, t.ID, tree, cfg, kernel)
		}
	}
	_ = g.Wait()
	return results
}
