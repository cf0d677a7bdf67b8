package selection

import (
	"fmt"
	"math/rand/v2"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// TournamentSelector samples K contestants per parent and keeps the best ranked.
// A solution may be selected more than once.
type TournamentSelector struct {
	Ranker Ranker
	K      int

	name string
}

func (s TournamentSelector) Name() string {
	if s.name != "" {
		return s.name
	}
	return string(Tournament)
}

func (s TournamentSelector) Select(rng *rand.Rand, fitness []framework.Fitness, numParents int) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if err := checkSample(numParents, len(fitness)); err != nil {
		return nil, err
	}
	if s.K < 1 {
		return nil, fmt.Errorf("%w: invalid tournament size: %d", framework.ErrConfiguration, s.K)
	}
	order, err := s.Ranker.Rank(fitness)
	if err != nil {
		return nil, err
	}
	pos := Positions(order)

	parents := make([]int, numParents)
	for i := range parents {
		best := rng.IntN(len(fitness))
		for c := 1; c < s.K; c++ {
			contestant := rng.IntN(len(fitness))
			if pos[contestant] < pos[best] {
				best = contestant
			}
		}
		parents[i] = best
	}
	return parents, nil
}
