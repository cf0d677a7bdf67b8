package selection

import (
	"fmt"
	"sort"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// Ranker produces a total order over a population, best first. The order is a
// permutation of the population indices.
type Ranker interface {
	Name() string
	Rank(fitness []framework.Fitness) ([]int, error)
}

// RankerFor returns the ranking rule of a run: numeric for single-objective
// fitness, Pareto front then crowding distance for multi-objective fitness.
func RankerFor(multiObjective bool) Ranker {
	if multiObjective {
		return ParetoRanker{}
	}
	return NumericRanker{}
}

// NumericRanker orders by the scalar fitness, highest first.
type NumericRanker struct{}

func (NumericRanker) Name() string {
	return "numeric"
}

func (NumericRanker) Rank(fitness []framework.Fitness) ([]int, error) {
	for i, f := range fitness {
		if len(f) != 1 {
			return nil, fmt.Errorf("%w: solution %d has %d objectives, numeric ranking needs 1", framework.ErrConfiguration, i, len(f))
		}
	}
	order := identity(len(fitness))
	sort.SliceStable(order, func(i, j int) bool {
		return fitness[order[i]].Scalar() > fitness[order[j]].Scalar()
	})
	return order, nil
}

// ParetoRanker orders by non-domination front ascending, then crowding
// distance descending within a front. Remaining ties keep population order.
type ParetoRanker struct{}

func (ParetoRanker) Name() string {
	return "pareto"
}

func (ParetoRanker) Rank(fitness []framework.Fitness) ([]int, error) {
	if err := checkObjectives(fitness); err != nil {
		return nil, err
	}

	order := make([]int, 0, len(fitness))
	for _, front := range framework.NonDominatedSort(fitness) {
		distance := framework.CrowdingDistance(fitness, front)
		byDistance := identity(len(front))
		sort.SliceStable(byDistance, func(i, j int) bool {
			return distance[byDistance[i]] > distance[byDistance[j]]
		})
		for _, k := range byDistance {
			order = append(order, front[k])
		}
	}
	return order, nil
}

// Positions inverts an order: Positions(order)[idx] is the rank of solution idx.
func Positions(order []int) []int {
	pos := make([]int, len(order))
	for rank, idx := range order {
		pos[idx] = rank
	}
	return pos
}

func checkObjectives(fitness []framework.Fitness) error {
	if len(fitness) == 0 {
		return nil
	}
	n := len(fitness[0])
	if n == 0 {
		return fmt.Errorf("%w: solution 0 has no objectives", framework.ErrConfiguration)
	}
	for i, f := range fitness {
		if len(f) != n {
			return fmt.Errorf("%w: solution %d has %d objectives, expected %d", framework.ErrConfiguration, i, len(f), n)
		}
	}
	return nil
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
