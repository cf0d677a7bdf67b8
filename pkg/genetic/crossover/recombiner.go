package crossover

import (
	"math/rand/v2"
)

// Child is an offspring gene vector and the indices, into the parent pool, of
// the two parents that produced it.
type Child struct {
	Genes   []float64
	Parents [2]int
}

// Recombiner produces offspring from a mating pool.
type Recombiner struct {
	Crossover Crossover
	// Probability is the chance a child is produced by crossover. A child that
	// skips crossover copies its first parent. Nil always crosses over.
	Probability *float64
}

// Offspring returns exactly n children. Child k mates parents k mod len(parents)
// and (k+1) mod len(parents).
func (r Recombiner) Offspring(rng *rand.Rand, parents [][]float64, n int) []Child {
	children := make([]Child, n)
	if len(parents) == 0 {
		return children[:0]
	}
	for k := range children {
		a := k % len(parents)
		b := (k + 1) % len(parents)
		var genes []float64
		if r.Probability != nil && rng.Float64() >= *r.Probability {
			genes = clone(parents[a])
		} else {
			genes = r.Crossover.Mate(rng, parents[a], parents[b])
		}
		children[k] = Child{Genes: genes, Parents: [2]int{a, b}}
	}
	return children
}
