package archive

import (
	"sync"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// Options select which logs an Archive keeps.
type Options struct {
	SaveSolutions     bool
	SaveBestSolutions bool
}

// Archive is the append-only history of a run. It has a single writer (the
// generation loop) and any number of readers. Readers get copies.
type Archive struct {
	opts Options

	mu               sync.RWMutex
	solutions        [][]float64
	solutionsFitness []framework.Fitness
	bestSolutions    [][]float64
	bestFitness      []framework.Fitness
	frozen           bool
}

// New returns an empty archive.
func New(opts Options) *Archive {
	return &Archive{opts: opts}
}

// RecordPopulation appends every member of pop and its fitness to the
// solutions log when solutions are saved.
func (a *Archive) RecordPopulation(pop framework.Population) {
	if !a.opts.SaveSolutions {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frozen {
		return
	}
	for _, s := range pop {
		c := s.Clone()
		a.solutions = append(a.solutions, c.Genes)
		a.solutionsFitness = append(a.solutionsFitness, c.Fitness)
	}
}

// RecordBest appends the best solution of a generation boundary. Its fitness
// is always kept; its genes only when best solutions are saved.
func (a *Archive) RecordBest(best framework.Solution) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frozen {
		return
	}
	c := best.Clone()
	a.bestFitness = append(a.bestFitness, c.Fitness)
	if a.opts.SaveBestSolutions {
		a.bestSolutions = append(a.bestSolutions, c.Genes)
	}
}

// Freeze makes the archive read-only. Later records are dropped.
func (a *Archive) Freeze() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frozen = true
}

// Solutions returns a copy of every saved gene vector, in generation order.
func (a *Archive) Solutions() [][]float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return cloneGenes(a.solutions)
}

// SolutionsFitness returns the fitness of every saved solution, parallel to Solutions.
func (a *Archive) SolutionsFitness() []framework.Fitness {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return cloneFitness(a.solutionsFitness)
}

// BestSolutions returns the best gene vector of every generation boundary,
// starting with the initial population.
func (a *Archive) BestSolutions() [][]float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return cloneGenes(a.bestSolutions)
}

// BestSolutionsFitness returns the best fitness of every generation boundary.
func (a *Archive) BestSolutionsFitness() []framework.Fitness {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return cloneFitness(a.bestFitness)
}

// Len returns the lengths of the solutions log and the best-solutions log.
func (a *Archive) Len() (solutions, best int) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.solutions), len(a.bestSolutions)
}

func cloneGenes(in [][]float64) [][]float64 {
	out := make([][]float64, len(in))
	for i, g := range in {
		out[i] = make([]float64, len(g))
		copy(out[i], g)
	}
	return out
}

func cloneFitness(in []framework.Fitness) []framework.Fitness {
	out := make([]framework.Fitness, len(in))
	for i, f := range in {
		out[i] = f.Clone()
	}
	return out
}
