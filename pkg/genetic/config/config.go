package config

import (
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/genetic-optimizer/apis/config/v1alpha1"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/crossover"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/mutation"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/selection"
)

// Config is the immutable configuration of a run.
type Config struct {
	NumGenerations   int
	SolPerPop        int
	NumGenes         int
	NumParentsMating int

	// KeepElitism is the number of top ranked solutions copied unchanged.
	KeepElitism int
	// KeepParents is the number of selected parents copied unchanged:
	// -1 keeps all of them, 0 none.
	KeepParents int

	ParentSelectionType selection.Type
	KTournament         int

	CrossoverType        crossover.Type
	CrossoverProbability *float64

	MutationType          mutation.Type
	MutationPercentGenes  []float64
	MutationByReplacement bool
	InitRange             framework.Bounds
	RandomMutationRange   framework.Bounds

	MultiObjective bool
	NumObjectives  int

	// FitnessBatchSize is nil or 1 for per-solution fitness calls.
	FitnessBatchSize    *int
	ParallelEvaluations int
	CacheFitness        bool

	SaveSolutions     bool
	SaveBestSolutions bool

	RandomSeed *uint64
}

// Default returns a Config with every optional field defaulted. The sizes
// (generations, population, genes, parents) are zero and must be set.
func Default() Config {
	args := &v1alpha1.GeneticAlgorithmArgs{}
	v1alpha1.SetDefaults_GeneticAlgorithmArgs(args)
	return FromArgs(args)
}

// FromArgs converts defaulted versioned arguments into a Config.
func FromArgs(args *v1alpha1.GeneticAlgorithmArgs) Config {
	c := Config{
		NumGenerations:        int(ptr.Deref(args.NumGenerations, 0)),
		SolPerPop:             int(ptr.Deref(args.SolPerPop, 0)),
		NumGenes:              int(ptr.Deref(args.NumGenes, 0)),
		NumParentsMating:      int(ptr.Deref(args.NumParentsMating, 0)),
		KeepElitism:           int(ptr.Deref(args.KeepElitism, v1alpha1.DefaultKeepElitism)),
		KeepParents:           int(ptr.Deref(args.KeepParents, v1alpha1.DefaultKeepParents)),
		ParentSelectionType:   selection.Type(ptr.Deref(args.ParentSelectionType, v1alpha1.DefaultParentSelectionType)),
		KTournament:           int(ptr.Deref(args.KTournament, v1alpha1.DefaultKTournament)),
		CrossoverType:         crossover.Type(ptr.Deref(args.CrossoverType, v1alpha1.DefaultCrossoverType)),
		CrossoverProbability:  args.CrossoverProbability,
		MutationType:          mutation.Type(ptr.Deref(args.MutationType, v1alpha1.DefaultMutationType)),
		MutationPercentGenes:  append([]float64(nil), args.MutationPercentGenes...),
		MutationByReplacement: ptr.Deref(args.MutationByReplacement, true),
		InitRange: framework.Bounds{
			L: ptr.Deref(args.InitRangeLow, v1alpha1.DefaultInitRangeLow),
			H: ptr.Deref(args.InitRangeHigh, v1alpha1.DefaultInitRangeHigh),
		},
		RandomMutationRange: framework.Bounds{
			L: ptr.Deref(args.RandomMutationMinVal, v1alpha1.DefaultRandomMutationMinVal),
			H: ptr.Deref(args.RandomMutationMaxVal, v1alpha1.DefaultRandomMutationMaxVal),
		},
		MultiObjective:      ptr.Deref(args.MultiObjective, false),
		NumObjectives:       int(ptr.Deref(args.NumObjectives, 0)),
		ParallelEvaluations: int(ptr.Deref(args.ParallelEvaluations, v1alpha1.DefaultParallelEvaluations)),
		CacheFitness:        ptr.Deref(args.CacheFitness, false),
		SaveSolutions:       ptr.Deref(args.SaveSolutions, false),
		SaveBestSolutions:   ptr.Deref(args.SaveBestSolutions, false),
		RandomSeed:          args.RandomSeed,
	}
	if args.FitnessBatchSize != nil {
		c.FitnessBatchSize = ptr.To(int(*args.FitnessBatchSize))
	}
	return c
}

// BatchSize returns the fitness batch size, 1 when batching is off.
func (c Config) BatchSize() int {
	return ptr.Deref(c.FitnessBatchSize, 1)
}

// RetainedParents returns how many selected parents survive into the next
// generation.
func (c Config) RetainedParents() int {
	if c.KeepParents == -1 {
		return c.NumParentsMating
	}
	return c.KeepParents
}

// NumOffspring returns how many children are bred per generation.
func (c Config) NumOffspring() int {
	return c.SolPerPop - c.KeepElitism - c.RetainedParents()
}

// MutationScheduler returns the mutation settings of the run.
func (c Config) MutationScheduler() mutation.Scheduler {
	return mutation.Scheduler{
		Type:          c.MutationType,
		PercentGenes:  c.MutationPercentGenes,
		ByReplacement: c.MutationByReplacement,
		InitRange:     c.InitRange,
		RandomRange:   c.RandomMutationRange,
	}
}
