package framework

import (
	"math"
	"sort"
)

// NonDominatedSort performs non-dominated sorting on the fitness values and
// returns the fronts as indices into fitness. Front 0 holds every solution not
// dominated by any other.
func NonDominatedSort(fitness []Fitness) [][]int {
	var fronts [][]int
	dominated := make(map[int][]int)
	domCount := make([]int, len(fitness))

	// Calculate domination for each individual
	for i := 0; i < len(fitness); i++ {
		dominated[i] = []int{}
		for j := 0; j < len(fitness); j++ {
			if i != j {
				if Dominates(fitness[i], fitness[j]) {
					dominated[i] = append(dominated[i], j)
				} else if Dominates(fitness[j], fitness[i]) {
					domCount[i]++
				}
			}
		}
	}

	// Find first front
	currentFront := []int{}
	for i := 0; i < len(fitness); i++ {
		if domCount[i] == 0 {
			currentFront = append(currentFront, i)
		}
	}
	if len(currentFront) == 0 {
		return nil
	}
	fronts = append(fronts, currentFront)

	// Find subsequent fronts
	for len(currentFront) > 0 {
		nextFront := []int{}
		for _, idx := range currentFront {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					nextFront = append(nextFront, dominatedIdx)
				}
			}
		}
		if len(nextFront) > 0 {
			sort.Ints(nextFront)
			fronts = append(fronts, nextFront)
		}
		currentFront = nextFront
	}

	return fronts
}

// Dominates checks if fitness a dominates fitness b. Objectives are maximized:
// a must be at least as good on every objective and strictly better on one.
func Dominates(a, b Fitness) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] < b[i] {
			return false
		}
		if a[i] > b[i] {
			better = true
		}
	}
	return better
}

// CrowdingDistance calculates the crowding distance of every member of front.
// The returned slice is parallel to front. Boundary members of each objective
// get an infinite distance.
func CrowdingDistance(fitness []Fitness, front []int) []float64 {
	distance := make([]float64, len(front))
	if len(front) <= 2 {
		for i := range distance {
			distance[i] = math.Inf(1)
		}
		return distance
	}

	numObjectives := len(fitness[front[0]])
	order := make([]int, len(front))
	for m := 0; m < numObjectives; m++ {
		for i := range order {
			order[i] = i
		}
		// Sort by each objective
		sort.SliceStable(order, func(i, j int) bool {
			return fitness[front[order[i]]][m] < fitness[front[order[j]]][m]
		})

		first, last := order[0], order[len(order)-1]
		// Set boundary points to infinity
		distance[first] = math.Inf(1)
		distance[last] = math.Inf(1)

		objectiveRange := fitness[front[last]][m] - fitness[front[first]][m]
		if objectiveRange == 0 {
			continue
		}

		// Calculate distance for intermediate points
		for i := 1; i < len(order)-1; i++ {
			next := fitness[front[order[i+1]]][m]
			prev := fitness[front[order[i-1]]][m]
			distance[order[i]] += (next - prev) / objectiveRange
		}
	}
	return distance
}
