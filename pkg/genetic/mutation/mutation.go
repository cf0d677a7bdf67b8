package mutation

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// Type names a mutation operator.
type Type string

const (
	Random     Type = "random"
	Adaptive   Type = "adaptive"
	Swap       Type = "swap"
	Inversion  Type = "inversion"
	Scramble   Type = "scramble"
	Polynomial Type = "polynomial"
	None       Type = "none"
)

// Types lists the supported operators.
var Types = []Type{Random, Adaptive, Swap, Inversion, Scramble, Polynomial, None}

// Scheduler decides which genes of every offspring mutate and by how much.
type Scheduler struct {
	Type Type
	// PercentGenes holds one rate, or [high, low] for adaptive mutation.
	PercentGenes []float64
	// ByReplacement draws a fresh gene from InitRange instead of adding an
	// offset drawn from RandomRange.
	ByReplacement bool
	InitRange     framework.Bounds
	RandomRange   framework.Bounds
}

// Validate checks the rates required by the operator.
func (s Scheduler) Validate() error {
	switch s.Type {
	case Random, Polynomial:
		if len(s.PercentGenes) != 1 {
			return fmt.Errorf("%w: %s mutation takes 1 rate, got %d", framework.ErrConfiguration, s.Type, len(s.PercentGenes))
		}
	case Adaptive:
		if len(s.PercentGenes) != 2 {
			return fmt.Errorf("%w: %s mutation takes [high, low] rates, got %d values", framework.ErrConfiguration, s.Type, len(s.PercentGenes))
		}
	case Swap, Inversion, Scramble, None:
		return nil
	default:
		return fmt.Errorf("%w: unknown mutation type %q", framework.ErrConfiguration, s.Type)
	}
	for _, p := range s.PercentGenes {
		if p <= 0 || p > 100 {
			return fmt.Errorf("%w: mutation percent genes must be in (0, 100], got %v", framework.ErrConfiguration, p)
		}
	}
	return nil
}

// NumGenesToMutate converts a percentage into a gene count in [1, numGenes].
func NumGenesToMutate(percent float64, numGenes int) int {
	n := int(math.Ceil(percent / 100 * float64(numGenes)))
	if n < 1 {
		n = 1
	}
	if n > numGenes {
		n = numGenes
	}
	return n
}

// Mutate mutates every offspring in place and returns how many genes of each
// changed. For adaptive mutation estimates holds the fitness proxy of each
// offspring and average the population mean of the same proxy; offspring
// below average mutate at the high rate.
func (s Scheduler) Mutate(rng *rand.Rand, offspring [][]float64, estimates []float64, average float64) []int {
	counts := make([]int, len(offspring))
	for i, genes := range offspring {
		switch s.Type {
		case Random:
			counts[i] = s.mutateGenes(rng, genes, NumGenesToMutate(s.PercentGenes[0], len(genes)))
		case Adaptive:
			percent := s.PercentGenes[1]
			if estimates[i] < average {
				percent = s.PercentGenes[0]
			}
			counts[i] = s.mutateGenes(rng, genes, NumGenesToMutate(percent, len(genes)))
		case Polynomial:
			counts[i] = s.polynomial(rng, genes, NumGenesToMutate(s.PercentGenes[0], len(genes)))
		case Swap:
			counts[i] = swap(rng, genes)
		case Inversion:
			counts[i] = inversion(rng, genes)
		case Scramble:
			counts[i] = scramble(rng, genes)
		}
	}
	return counts
}

// mutateGenes changes n distinct gene positions.
func (s Scheduler) mutateGenes(rng *rand.Rand, genes []float64, n int) int {
	positions := rng.Perm(len(genes))[:n]
	for _, p := range positions {
		if s.ByReplacement {
			genes[p] = s.InitRange.L + rng.Float64()*s.InitRange.Width()
		} else {
			genes[p] += s.RandomRange.L + rng.Float64()*s.RandomRange.Width()
		}
	}
	return n
}

// polynomial perturbs n distinct genes by a polynomial step scaled to
// InitRange and clamps them back into it.
func (s Scheduler) polynomial(rng *rand.Rand, genes []float64, n int) int {
	for _, p := range rng.Perm(len(genes))[:n] {
		var delta float64
		if rng.Float64() <= 0.5 {
			delta = math.Pow(2*rng.Float64(), 1.0/3.0) - 1
		} else {
			delta = 1 - math.Pow(2*(1-rng.Float64()), 1.0/3.0)
		}
		genes[p] += delta * s.InitRange.Width()
		genes[p] = math.Max(s.InitRange.L, math.Min(s.InitRange.H, genes[p]))
	}
	return n
}

func swap(rng *rand.Rand, genes []float64) int {
	if len(genes) < 2 {
		return 0
	}
	i := rng.IntN(len(genes))
	j := rng.IntN(len(genes) - 1)
	if j >= i {
		j++
	}
	genes[i], genes[j] = genes[j], genes[i]
	return 2
}

func segment(rng *rand.Rand, n int) (int, int) {
	lo, hi := rng.IntN(n), rng.IntN(n)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi + 1
}

func inversion(rng *rand.Rand, genes []float64) int {
	lo, hi := segment(rng, len(genes))
	for i, j := lo, hi-1; i < j; i, j = i+1, j-1 {
		genes[i], genes[j] = genes[j], genes[i]
	}
	return hi - lo
}

func scramble(rng *rand.Rand, genes []float64) int {
	lo, hi := segment(rng, len(genes))
	part := genes[lo:hi]
	rng.Shuffle(len(part), func(i, j int) {
		part[i], part[j] = part[j], part[i]
	})
	return hi - lo
}
