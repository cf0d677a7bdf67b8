package selection

import (
	"fmt"
	"math/rand/v2"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// Type names a parent selection strategy.
type Type string

const (
	SteadyState     Type = "sss"
	NSGA2           Type = "nsga2"
	Tournament      Type = "tournament"
	TournamentNSGA2 Type = "tournament_nsga2"
	RouletteWheel   Type = "rws"
	Random          Type = "random"
)

// Types lists the supported strategies.
var Types = []Type{SteadyState, NSGA2, Tournament, TournamentNSGA2, RouletteWheel, Random}

// RequiresMultiObjective reports whether the strategy ranks Pareto fronts only.
func (t Type) RequiresMultiObjective() bool {
	return t == NSGA2 || t == TournamentNSGA2
}

// RequiresSingleObjective reports whether the strategy needs scalar fitness.
func (t Type) RequiresSingleObjective() bool {
	return t == RouletteWheel
}

// ParentSelector chooses the mating pool from an evaluated population. It
// returns population indices; len(result) == numParents.
type ParentSelector interface {
	Name() string
	Select(rng *rand.Rand, fitness []framework.Fitness, numParents int) ([]int, error)
}

// New builds the selector for t. k is the tournament size and is ignored by
// other strategies.
func New(t Type, multiObjective bool, k int) (ParentSelector, error) {
	switch t {
	case SteadyState:
		return SteadyStateSelector{Ranker: RankerFor(multiObjective)}, nil
	case NSGA2:
		return NSGA2Selector{MultiObjective: multiObjective}, nil
	case Tournament:
		return TournamentSelector{Ranker: RankerFor(multiObjective), K: k}, nil
	case TournamentNSGA2:
		if !multiObjective {
			return nil, fmt.Errorf("%w: %s selection requires a multi-objective problem", framework.ErrConfiguration, t)
		}
		return TournamentSelector{Ranker: ParetoRanker{}, K: k, name: string(TournamentNSGA2)}, nil
	case RouletteWheel:
		return RouletteWheelSelector{}, nil
	case Random:
		return RandomSelector{}, nil
	}
	return nil, fmt.Errorf("%w: unknown parent selection type %q", framework.ErrConfiguration, t)
}

// checkSample validates a draw with repetition: any positive count works on a
// non-empty population.
func checkSample(numParents, popSize int) error {
	if numParents < 1 || popSize < 1 {
		return fmt.Errorf("%w: cannot sample %d parents from %d solutions", framework.ErrConfiguration, numParents, popSize)
	}
	return nil
}

func checkCount(numParents, popSize int) error {
	if numParents < 1 || numParents > popSize {
		return fmt.Errorf("%w: cannot select %d parents from %d solutions", framework.ErrConfiguration, numParents, popSize)
	}
	return nil
}
