package genetic

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/go-logr/logr"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/archive"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/config"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/crossover"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/fitness"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/metrics"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/mutation"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/selection"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/store"
)

// GenerationHook runs after every generation has been archived, and once
// after the initial population with generation 0.
type GenerationHook func(ctx context.Context, g *GA) error

// GenerationReport describes how the latest generation was formed. Indices
// refer to the previous population unless noted.
type GenerationReport struct {
	Generation int
	Elites     []int
	Parents    []int
	Retained   []int
	// MutationCounts holds the number of mutated genes of every offspring.
	MutationCounts []int
	// BelowAverage marks offspring whose pre-mutation fitness was below the
	// population average. Set for adaptive mutation only.
	BelowAverage []bool
}

// GA holds the whole mutable state of one optimizer run.
type GA struct {
	cfg        config.Config
	evaluator  *fitness.Evaluator
	ranker     selection.Ranker
	selector   selection.ParentSelector
	recombiner crossover.Recombiner
	mutator    mutation.Scheduler
	archive    *archive.Archive
	metrics    *metrics.Metrics
	rng        *rand.Rand
	logger     *logr.Logger
	hook       GenerationHook
	initial    [][]float64

	mu         sync.RWMutex
	population framework.Population
	completed  int
	state      State
	report     GenerationReport
}

// Option customizes a GA.
type Option func(*GA)

// WithLogger overrides the logger taken from the run context.
func WithLogger(logger logr.Logger) Option {
	return func(g *GA) {
		g.logger = &logger
	}
}

// WithMetrics records the run into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *GA) {
		g.metrics = m
	}
}

// WithGenerationHook sets a hook called after every generation.
func WithGenerationHook(hook GenerationHook) Option {
	return func(g *GA) {
		g.hook = hook
	}
}

// WithInitialPopulation starts from the given gene vectors instead of a random
// population. The vectors are copied.
func WithInitialPopulation(genes [][]float64) Option {
	return func(g *GA) {
		g.initial = make([][]float64, len(genes))
		for i := range genes {
			g.initial[i] = append([]float64(nil), genes[i]...)
		}
	}
}

// WithRand sets the random source. It overrides the configured seed.
func WithRand(rng *rand.Rand) Option {
	return func(g *GA) {
		g.rng = rng
	}
}

// New validates cfg and builds an optimizer around the fitness callback.
// Configuration problems are reported here, before any generation runs.
func New(cfg config.Config, cb fitness.Callback, opts ...Option) (*GA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	evaluator, err := fitness.NewEvaluator(cb, fitness.Options{
		MultiObjective: cfg.MultiObjective,
		NumObjectives:  cfg.NumObjectives,
		BatchSize:      cfg.BatchSize(),
		Parallelism:    cfg.ParallelEvaluations,
		Cache:          cfg.CacheFitness,
	})
	if err != nil {
		return nil, err
	}
	selector, err := selection.New(cfg.ParentSelectionType, cfg.MultiObjective, cfg.KTournament)
	if err != nil {
		return nil, err
	}
	cross, err := crossover.New(cfg.CrossoverType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", framework.ErrConfiguration, err)
	}

	g := &GA{
		cfg:        cfg,
		evaluator:  evaluator,
		ranker:     selection.RankerFor(cfg.MultiObjective),
		selector:   selector,
		recombiner: crossover.Recombiner{Crossover: cross, Probability: cfg.CrossoverProbability},
		mutator:    cfg.MutationScheduler(),
		archive: archive.New(archive.Options{
			SaveSolutions:     cfg.SaveSolutions,
			SaveBestSolutions: cfg.SaveBestSolutions,
		}),
		state: Initialized,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		if cfg.RandomSeed != nil {
			g.rng = rand.New(rand.NewPCG(*cfg.RandomSeed, *cfg.RandomSeed))
		} else {
			g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	if g.initial != nil {
		if err := g.checkInitialPopulation(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *GA) checkInitialPopulation() error {
	if len(g.initial) != g.cfg.SolPerPop {
		return fmt.Errorf("%w: initial population has %d solutions, expected %d", framework.ErrConfiguration, len(g.initial), g.cfg.SolPerPop)
	}
	for i, genes := range g.initial {
		if len(genes) != g.cfg.NumGenes {
			return fmt.Errorf("%w: initial solution %d has %d genes, expected %d", framework.ErrConfiguration, i, len(genes), g.cfg.NumGenes)
		}
	}
	return nil
}

// Config returns the run configuration.
func (g *GA) Config() config.Config {
	return g.cfg
}

// Archive returns the solution archive. It may be read while the run is in
// progress and is frozen once Run returns.
func (g *GA) Archive() *archive.Archive {
	return g.archive
}

// Population returns a copy of the current population.
func (g *GA) Population() framework.Population {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.population.Clone()
}

// Fitness returns the fitness of the current population.
func (g *GA) Fitness() []framework.Fitness {
	return g.Population().Fitness()
}

// GenerationsCompleted returns the number of fully completed generations.
func (g *GA) GenerationsCompleted() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.completed
}

// State returns the current phase of the run.
func (g *GA) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// LastReport describes how the current population was formed.
func (g *GA) LastReport() GenerationReport {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.report
}

// FitnessCalls returns the number of fitness callback invocations so far.
func (g *GA) FitnessCalls() int64 {
	return g.evaluator.Calls()
}

// BestSolution returns the best member of the current population, ranked by
// the run's ranking rule, and its index.
func (g *GA) BestSolution() (framework.Solution, int, error) {
	pop := g.Population()
	if len(pop) == 0 {
		return framework.Solution{}, -1, fmt.Errorf("population is not initialized")
	}
	idx, err := g.bestIndex(pop)
	if err != nil {
		return framework.Solution{}, -1, err
	}
	return pop[idx], idx, nil
}

// Snapshot captures the current population and archives for persistence.
func (g *GA) Snapshot(runID string) store.Snapshot {
	a := g.archive
	return store.NewSnapshot(runID, g.GenerationsCompleted(), g.Population(),
		a.Solutions(), a.SolutionsFitness(), a.BestSolutions(), a.BestSolutionsFitness())
}

func (g *GA) bestIndex(pop framework.Population) (int, error) {
	order, err := g.ranker.Rank(pop.Fitness())
	if err != nil {
		return -1, err
	}
	return order[0], nil
}

func (g *GA) setState(s State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = s
}
