package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/crossover"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/mutation"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/selection"
)

func validConfig() Config {
	c := Default()
	c.NumGenerations = 100
	c.SolPerPop = 10
	c.NumGenes = 6
	c.NumParentsMating = 5
	return c
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 1, c.KeepElitism)
	assert.Equal(t, -1, c.KeepParents)
	assert.Equal(t, selection.SteadyState, c.ParentSelectionType)
	assert.Equal(t, crossover.SinglePoint, c.CrossoverType)
	assert.Equal(t, mutation.Random, c.MutationType)
	assert.Equal(t, []float64{10}, c.MutationPercentGenes)
	assert.Equal(t, framework.Bounds{L: -4, H: 4}, c.InitRange)
	assert.Equal(t, framework.Bounds{L: -1, H: 1}, c.RandomMutationRange)
	assert.True(t, c.MutationByReplacement)
	assert.Nil(t, c.FitnessBatchSize)
	assert.Equal(t, 1, c.BatchSize())
	assert.Equal(t, 1, c.ParallelEvaluations)
	assert.NoError(t, validConfig().Validate())
}

func TestRetainedParentsAndOffspring(t *testing.T) {
	tests := []struct {
		keepElitism, keepParents int
		retained, offspring      int
	}{
		{keepElitism: 1, keepParents: -1, retained: 5, offspring: 4},
		{keepElitism: 0, keepParents: 0, retained: 0, offspring: 10},
		{keepElitism: 3, keepParents: 0, retained: 0, offspring: 7},
		{keepElitism: 0, keepParents: 4, retained: 4, offspring: 6},
		{keepElitism: 3, keepParents: 4, retained: 4, offspring: 3},
	}
	for _, tt := range tests {
		c := validConfig()
		c.KeepElitism = tt.keepElitism
		c.KeepParents = tt.keepParents
		assert.Equal(t, tt.retained, c.RetainedParents())
		assert.Equal(t, tt.offspring, c.NumOffspring())
		assert.NoError(t, c.Validate())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "nsga2 single objective", mutate: func(c *Config) { c.ParentSelectionType = selection.NSGA2 }, wantErr: framework.ErrConfiguration},
		{name: "rws multi objective", mutate: func(c *Config) {
			c.ParentSelectionType = selection.RouletteWheel
			c.MultiObjective = true
		}, wantErr: framework.ErrConfiguration},
		{name: "unknown selection", mutate: func(c *Config) { c.ParentSelectionType = "best" }, wantErr: framework.ErrConfiguration},
		{name: "unknown crossover", mutate: func(c *Config) { c.CrossoverType = "three_points" }, wantErr: framework.ErrConfiguration},
		{name: "crossover probability", mutate: func(c *Config) { c.CrossoverProbability = ptr.To(1.5) }, wantErr: framework.ErrConfiguration},
		{name: "adaptive single rate", mutate: func(c *Config) { c.MutationType = mutation.Adaptive }, wantErr: framework.ErrConfiguration},
		{name: "no genes", mutate: func(c *Config) { c.NumGenes = 0 }, wantErr: framework.ErrConfiguration},
		{name: "too many parents", mutate: func(c *Config) { c.NumParentsMating = 11 }, wantErr: framework.ErrConfiguration},
		{name: "keep parents above mating", mutate: func(c *Config) { c.KeepParents = 6 }, wantErr: framework.ErrConfiguration},
		{name: "keep parents below -1", mutate: func(c *Config) { c.KeepParents = -2 }, wantErr: framework.ErrConfiguration},
		{name: "batch size zero", mutate: func(c *Config) { c.FitnessBatchSize = ptr.To(0) }, wantErr: framework.ErrConfiguration},
		{name: "batch size above population", mutate: func(c *Config) { c.FitnessBatchSize = ptr.To(11) }, wantErr: framework.ErrConfiguration},
		{name: "objectives for single objective", mutate: func(c *Config) { c.NumObjectives = 2 }, wantErr: framework.ErrConfiguration},
		{name: "init range", mutate: func(c *Config) { c.InitRange = framework.Bounds{L: 1, H: 1} }, wantErr: framework.ErrConfiguration},
		{name: "parallelism", mutate: func(c *Config) { c.ParallelEvaluations = 0 }, wantErr: framework.ErrConfiguration},
		{name: "elitism fills population", mutate: func(c *Config) {
			c.KeepElitism = 6
			c.KeepParents = -1
		}, wantErr: framework.ErrExhaustedPopulation},
		{name: "elitism above population", mutate: func(c *Config) {
			c.KeepElitism = 11
			c.KeepParents = 0
		}, wantErr: framework.ErrExhaustedPopulation},
		{name: "negative elitism", mutate: func(c *Config) { c.KeepElitism = -1 }, wantErr: framework.ErrConfiguration},
		{name: "elitism and parents", mutate: func(c *Config) {
			c.NumParentsMating = 8
			c.KeepElitism = 3
			c.KeepParents = 8
		}, wantErr: framework.ErrExhaustedPopulation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), tt.wantErr)
		})
	}
}

func TestValidateWholePopulationKept(t *testing.T) {
	c := validConfig()
	c.KeepElitism = 5
	c.KeepParents = -1
	require.NoError(t, c.Validate())
	assert.Zero(t, c.NumOffspring())
}

const argsYAML = `
apiVersion: genetic.x-k8s.io/v1alpha1
kind: GeneticAlgorithmArgs
numGenerations: 50
solPerPop: 12
numGenes: 4
numParentsMating: 6
keepElitism: 2
keepParents: 0
parentSelectionType: nsga2
multiObjective: true
mutationType: adaptive
mutationPercentGenes: [20, 10]
fitnessBatchSize: 4
saveSolutions: true
randomSeed: 42
`

func TestLoad(t *testing.T) {
	c, err := Load([]byte(argsYAML))
	require.NoError(t, err)
	assert.Equal(t, 50, c.NumGenerations)
	assert.Equal(t, 12, c.SolPerPop)
	assert.Equal(t, 2, c.KeepElitism)
	assert.Equal(t, 0, c.KeepParents)
	assert.Equal(t, selection.NSGA2, c.ParentSelectionType)
	assert.True(t, c.MultiObjective)
	assert.Equal(t, []float64{20, 10}, c.MutationPercentGenes)
	assert.Equal(t, 4, c.BatchSize())
	assert.True(t, c.SaveSolutions)
	assert.False(t, c.SaveBestSolutions)
	assert.Equal(t, uint64(42), *c.RandomSeed)
	assert.Equal(t, crossover.SinglePoint, c.CrossoverType)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load([]byte("numGenerations: 1\nunknownField: true\n"))
	assert.ErrorIs(t, err, framework.ErrConfiguration)

	_, err = Load([]byte("kind: Pod\n"))
	assert.ErrorIs(t, err, framework.ErrConfiguration)

	_, err = Load([]byte("numGenerations: 10\nsolPerPop: 10\nnumGenes: 3\nnumParentsMating: 4\nparentSelectionType: nsga2\n"))
	assert.ErrorIs(t, err, framework.ErrConfiguration)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ga.yaml")
	require.NoError(t, os.WriteFile(path, []byte(argsYAML), 0o600))
	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 50, c.NumGenerations)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
