package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

func pop() framework.Population {
	return framework.Population{
		{Genes: []float64{1, 2}, Fitness: framework.Fitness{0.5}},
		{Genes: []float64{3, 4}, Fitness: framework.Fitness{0.7}},
	}
}

func TestArchiveDisabled(t *testing.T) {
	a := New(Options{})
	a.RecordPopulation(pop())
	a.RecordBest(pop()[1])

	solutions, best := a.Len()
	assert.Zero(t, solutions)
	assert.Zero(t, best)
	assert.Empty(t, a.SolutionsFitness())
	// Best fitness history is kept regardless of the flags.
	assert.Equal(t, []framework.Fitness{{0.7}}, a.BestSolutionsFitness())
}

func TestArchiveRecords(t *testing.T) {
	a := New(Options{SaveSolutions: true, SaveBestSolutions: true})
	for i := 0; i < 3; i++ {
		a.RecordPopulation(pop())
		a.RecordBest(pop()[1])
	}

	solutions, best := a.Len()
	assert.Equal(t, 6, solutions)
	assert.Equal(t, 3, best)
	assert.Len(t, a.SolutionsFitness(), len(a.Solutions()))
	assert.Equal(t, []float64{3, 4}, a.BestSolutions()[2])
}

func TestArchiveIsolation(t *testing.T) {
	a := New(Options{SaveSolutions: true, SaveBestSolutions: true})
	p := pop()
	a.RecordPopulation(p)
	p[0].Genes[0] = 99
	p[0].Fitness[0] = 99

	got := a.Solutions()
	assert.Equal(t, []float64{1, 2}, got[0])
	got[0][0] = 42
	assert.Equal(t, []float64{1, 2}, a.Solutions()[0])
	assert.Equal(t, framework.Fitness{0.5}, a.SolutionsFitness()[0])
}

func TestArchiveFreeze(t *testing.T) {
	a := New(Options{SaveSolutions: true, SaveBestSolutions: true})
	a.RecordPopulation(pop())
	a.Freeze()
	a.RecordPopulation(pop())
	a.RecordBest(pop()[0])

	solutions, best := a.Len()
	assert.Equal(t, 2, solutions)
	assert.Zero(t, best)
}
