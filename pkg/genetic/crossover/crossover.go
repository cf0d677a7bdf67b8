package crossover

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Type names a crossover strategy.
type Type string

const (
	SinglePoint Type = "single_point"
	TwoPoints   Type = "two_points"
	Uniform     Type = "uniform"
	SBX         Type = "sbx"
)

// Types lists the supported strategies.
var Types = []Type{SinglePoint, TwoPoints, Uniform, SBX}

// Crossover combines two parents into one child. The parents are never modified.
type Crossover interface {
	Name() string
	Mate(rng *rand.Rand, a, b []float64) []float64
}

// New returns the crossover for t.
func New(t Type) (Crossover, error) {
	switch t {
	case SinglePoint:
		return SinglePointCrossover{}, nil
	case TwoPoints:
		return TwoPointsCrossover{}, nil
	case Uniform:
		return UniformCrossover{}, nil
	case SBX:
		return SBXCrossover{}, nil
	}
	return nil, fmt.Errorf("unknown crossover type %q", t)
}

// SinglePointCrossover takes genes [0, point) from a and the rest from b.
type SinglePointCrossover struct{}

func (SinglePointCrossover) Name() string {
	return string(SinglePoint)
}

func (SinglePointCrossover) Mate(rng *rand.Rand, a, b []float64) []float64 {
	child := clone(a)
	point := rng.IntN(len(a))
	copy(child[point:], b[point:])
	return child
}

// TwoPointsCrossover takes the genes between two cut points from b.
type TwoPointsCrossover struct{}

func (TwoPointsCrossover) Name() string {
	return string(TwoPoints)
}

func (TwoPointsCrossover) Mate(rng *rand.Rand, a, b []float64) []float64 {
	child := clone(a)
	lo, hi := rng.IntN(len(a)), rng.IntN(len(a))
	if lo > hi {
		lo, hi = hi, lo
	}
	copy(child[lo:hi+1], b[lo:hi+1])
	return child
}

// UniformCrossover picks every gene from either parent with equal probability.
type UniformCrossover struct{}

func (UniformCrossover) Name() string {
	return string(Uniform)
}

func (UniformCrossover) Mate(rng *rand.Rand, a, b []float64) []float64 {
	child := clone(a)
	for i := range child {
		if rng.Float64() < 0.5 {
			child[i] = b[i]
		}
	}
	return child
}

// SBXCrossover performs simulated binary crossover and keeps the first of the
// two symmetric children.
type SBXCrossover struct{}

func (SBXCrossover) Name() string {
	return string(SBX)
}

func (SBXCrossover) Mate(rng *rand.Rand, a, b []float64) []float64 {
	child := make([]float64, len(a))
	for i := range a {
		beta := 0.0
		if u := rng.Float64(); u <= 0.5 {
			beta = math.Pow(2*u, 1.0/3.0)
		} else {
			beta = math.Pow(1.0/(2*(1.0-u)), 1.0/3.0)
		}
		child[i] = 0.5 * ((1+beta)*a[i] + (1-beta)*b[i])
	}
	return child
}

func clone(genes []float64) []float64 {
	out := make([]float64, len(genes))
	copy(out, genes)
	return out
}
