package selection

import (
	"fmt"
	"math/rand/v2"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// NSGA2Selector selects parents by non-dominated sorting and crowding distance.
// Parents come from the lowest fronts; within the front that does not fit
// entirely, the widest spread solutions are preferred.
type NSGA2Selector struct {
	MultiObjective bool
}

func (NSGA2Selector) Name() string {
	return string(NSGA2)
}

func (s NSGA2Selector) Select(_ *rand.Rand, fitness []framework.Fitness, numParents int) ([]int, error) {
	if !s.MultiObjective {
		return nil, fmt.Errorf("%w: %s selection requires a multi-objective problem", framework.ErrConfiguration, NSGA2)
	}
	if err := checkCount(numParents, len(fitness)); err != nil {
		return nil, err
	}
	order, err := ParetoRanker{}.Rank(fitness)
	if err != nil {
		return nil, err
	}
	return order[:numParents], nil
}
