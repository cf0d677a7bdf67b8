package selection

import (
	"math/rand/v2"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// SteadyStateSelector takes the top ranked solutions without repetition.
type SteadyStateSelector struct {
	Ranker Ranker
}

func (SteadyStateSelector) Name() string {
	return string(SteadyState)
}

func (s SteadyStateSelector) Select(_ *rand.Rand, fitness []framework.Fitness, numParents int) ([]int, error) {
	if err := checkCount(numParents, len(fitness)); err != nil {
		return nil, err
	}
	order, err := s.Ranker.Rank(fitness)
	if err != nil {
		return nil, err
	}
	return order[:numParents], nil
}
