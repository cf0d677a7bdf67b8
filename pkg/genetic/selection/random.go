package selection

import (
	"fmt"
	"math/rand/v2"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// RandomSelector picks parents uniformly, with repetition.
type RandomSelector struct{}

func (RandomSelector) Name() string {
	return string(Random)
}

func (RandomSelector) Select(rng *rand.Rand, fitness []framework.Fitness, numParents int) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if err := checkSample(numParents, len(fitness)); err != nil {
		return nil, err
	}
	parents := make([]int, numParents)
	for i := range parents {
		parents[i] = rng.IntN(len(fitness))
	}
	return parents, nil
}
