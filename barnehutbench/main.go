// Command barnehutbench builds a Barnes-Hut tree over a random cloud
// of bodies and reports how build and evaluation time scale with the
// opening parameter theta, exercising spec.md §8 scenario 6 ("scaling
// sanity") by hand instead of as an automated test.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/sandeepkv93/barneshut"
)

type randomBody struct {
	pos  barneshut.Vec3
	mass float64
}

func (b randomBody) Position() barneshut.Vec3 { return b.pos }
func (b randomBody) Mass() float64            { return b.mass }

func randomCloud(n int, seed int64) []barneshut.Body {
	r := rand.New(rand.NewSource(seed))
	bodies := make([]barneshut.Body, n)
	for i := range bodies {
		bodies[i] = randomBody{
			pos: barneshut.Vec3{
				X: r.Float64()*1000 - 500,
				Y: r.Float64()*1000 - 500,
				Z: r.Float64()*1000 - 500,
			},
			mass: r.Float64()*10 + 0.1,
		}
	}
	return bodies
}

func main() {
	n := flag.Int("n", 10000, "number of source bodies")
	targets := flag.Int("targets", 200, "number of evaluation targets")
	flag.Parse()

	bodies := randomCloud(*n, 1)
	cube, err := barneshut.EnclosingCube(bodies)
	if err != nil {
		log.Fatalf("enclosing cube: %v", err)
	}

	kernel := barneshut.NewtonianKernel(1)
	queries := make([]barneshut.Target, *targets)
	for i := range queries {
		queries[i] = barneshut.Target{Position: bodies[i%(*n)].Position(), ID: i % (*n)}
	}

	for _, theta := range []float64{0, 0.3, 0.5, 0.8, 1.2} {
		cfg := barneshut.Config{Theta: theta, MaxBodiesPerLeaf: 8, MaxTreeDepth: 20}

		buildStart := time.Now()
		tree, err := barneshut.Build(bodies, cube, cfg)
		if err != nil {
			log.Fatalf("build: %v", err)
		}
		buildElapsed := time.Since(buildStart)

		evalStart := time.Now()
		barneshut.EvaluateAll(queries, tree, cfg, kernel)
		evalElapsed := time.Since(evalStart)

		stats := tree.Stats()
		log.Printf(
			"theta=%.2f build=%v eval(%d targets)=%v nodes=%d leaves=%d maxDepth=%d meanBodiesPerLeaf=%.2f",
			theta, buildElapsed, *targets, evalElapsed, stats.NodeCount, stats.LeafCount, stats.MaxDepth, stats.MeanBodiesPerLeaf,
		)
	}
}
