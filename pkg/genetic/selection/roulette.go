package selection

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// RouletteWheelSelector picks parents with probability proportional to their
// fitness shifted so the worst solution keeps a small non-zero share.
type RouletteWheelSelector struct{}

func (RouletteWheelSelector) Name() string {
	return string(RouletteWheel)
}

func (RouletteWheelSelector) Select(rng *rand.Rand, fitness []framework.Fitness, numParents int) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if err := checkSample(numParents, len(fitness)); err != nil {
		return nil, err
	}

	weights := make([]float64, len(fitness))
	for i, f := range fitness {
		if len(f) != 1 {
			return nil, fmt.Errorf("%w: %s selection requires single-objective fitness", framework.ErrConfiguration, RouletteWheel)
		}
		weights[i] = f.Scalar()
	}
	lowest := floats.Min(weights)
	floats.AddConst(-lowest, weights)
	floats.AddConst(rouletteFloor(weights), weights)

	cumulative := make([]float64, len(weights))
	floats.CumSum(cumulative, weights)
	total := cumulative[len(cumulative)-1]

	parents := make([]int, numParents)
	for i := range parents {
		spin := rng.Float64() * total
		idx := sort.SearchFloat64s(cumulative, spin)
		if idx >= len(cumulative) {
			idx = len(cumulative) - 1
		}
		parents[i] = idx
	}
	return parents, nil
}

func rouletteFloor(shifted []float64) float64 {
	if span := floats.Max(shifted); span > 0 {
		return span * 1e-3
	}
	return 1
}
