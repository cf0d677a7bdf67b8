package genetic

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/mutation"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/selection"
)

// Run evolves the population for the configured number of generations. A run
// can only be started once. On failure the returned error is a *RunError and
// everything archived before the failing generation stays readable.
func (g *GA) Run(ctx context.Context) error {
	if s := g.State(); s != Initialized {
		return fmt.Errorf("optimizer already ran (state %s)", s)
	}
	logger := klog.FromContext(ctx)
	if g.logger != nil {
		logger = *g.logger
	}
	ctx = NewContext(klog.NewContext(ctx, logger), g)
	defer g.archive.Freeze()

	start := time.Now()
	logger.V(2).Info("Starting genetic algorithm",
		"generations", g.cfg.NumGenerations,
		"solPerPop", g.cfg.SolPerPop,
		"numGenes", g.cfg.NumGenes,
		"parentSelection", g.selector.Name(),
		"mutation", g.cfg.MutationType,
		"multiObjective", g.cfg.MultiObjective)

	g.setState(Evaluating)
	if err := g.initialize(ctx); err != nil {
		return g.fail(ctx, err)
	}
	if stop, err := g.callHook(ctx); err != nil {
		return g.fail(ctx, err)
	} else if stop {
		return g.finish(ctx, start)
	}

	for gen := 1; gen <= g.cfg.NumGenerations; gen++ {
		if err := ctx.Err(); err != nil {
			return g.fail(ctx, err)
		}
		genStart := time.Now()
		best, err := g.step(ctx, gen)
		if err != nil {
			return g.fail(ctx, err)
		}
		g.metrics.ObserveGeneration(time.Since(genStart), best.Fitness[0])
		logger.V(4).Info("Generation completed", "generation", gen, "bestFitness", best.Fitness, "took", time.Since(genStart))

		if stop, err := g.callHook(ctx); err != nil {
			return g.fail(ctx, err)
		} else if stop {
			break
		}
	}
	return g.finish(ctx, start)
}

func (g *GA) finish(ctx context.Context, start time.Time) error {
	g.setState(Terminated)
	klog.FromContext(ctx).V(2).Info(fmt.Sprintf("Genetic algorithm finished %s generations with %s fitness evaluations in %s",
		humanize.Comma(int64(g.GenerationsCompleted())),
		humanize.Comma(g.evaluator.Evaluations()),
		time.Since(start)))
	return nil
}

func (g *GA) fail(ctx context.Context, err error) error {
	g.mu.Lock()
	runErr := &RunError{Completed: g.completed, State: g.state, Err: err}
	g.state = Failed
	g.mu.Unlock()
	klog.FromContext(ctx).Error(err, "Genetic algorithm aborted", "completedGenerations", runErr.Completed, "state", runErr.State)
	return runErr
}

func (g *GA) callHook(ctx context.Context) (bool, error) {
	if g.hook == nil {
		return false, nil
	}
	err := g.hook(ctx, g)
	if errors.Is(err, ErrStop) {
		klog.FromContext(ctx).V(2).Info("Generation hook requested stop", "generation", g.GenerationsCompleted())
		return true, nil
	}
	return false, err
}

// initialize creates and evaluates generation 0 and seeds the archive.
func (g *GA) initialize(ctx context.Context) error {
	pop := make(framework.Population, g.cfg.SolPerPop)
	for i := range pop {
		if g.initial != nil {
			pop[i].Genes = append([]float64(nil), g.initial[i]...)
			continue
		}
		genes := make([]float64, g.cfg.NumGenes)
		for j := range genes {
			genes[j] = g.cfg.InitRange.L + g.rng.Float64()*g.cfg.InitRange.Width()
		}
		pop[i].Genes = genes
	}

	indices := make([]int, len(pop))
	for i := range indices {
		indices[i] = i
	}
	if err := g.evaluate(ctx, pop, indices); err != nil {
		return err
	}

	g.mu.Lock()
	g.population = pop
	g.mu.Unlock()

	g.setState(Archiving)
	best, err := g.archivePopulation(pop)
	if err != nil {
		return err
	}
	g.metrics.SetBest(best.Fitness[0])
	return nil
}

// step forms, evaluates and archives one generation and returns its best solution.
func (g *GA) step(ctx context.Context, gen int) (framework.Solution, error) {
	g.mu.RLock()
	pop := g.population
	g.mu.RUnlock()
	fit := pop.Fitness()
	report := GenerationReport{Generation: gen}

	g.setState(Selecting)
	order, err := g.ranker.Rank(fit)
	if err != nil {
		return framework.Solution{}, err
	}
	report.Elites = append([]int(nil), order[:g.cfg.KeepElitism]...)

	parents, err := g.selector.Select(g.rng, fit, g.cfg.NumParentsMating)
	if err != nil {
		return framework.Solution{}, err
	}
	if len(parents) != g.cfg.NumParentsMating {
		return framework.Solution{}, fmt.Errorf("%s selector returned %d parents, expected %d", g.selector.Name(), len(parents), g.cfg.NumParentsMating)
	}
	report.Parents = parents
	report.Retained = retainParents(parents, order, g.cfg.RetainedParents())

	g.setState(Recombining)
	parentGenes := make([][]float64, len(parents))
	for i, p := range parents {
		parentGenes[i] = pop[p].Genes
	}
	children := g.recombiner.Offspring(g.rng, parentGenes, g.cfg.NumOffspring())

	g.setState(Mutating)
	offspring := make([][]float64, len(children))
	for i := range children {
		offspring[i] = children[i].Genes
	}
	var estimates []float64
	var average float64
	if g.mutator.Type == mutation.Adaptive {
		estimates, average, err = g.scoreOffspring(ctx, fit, offspring, len(report.Elites)+len(report.Retained))
		if err != nil {
			return framework.Solution{}, err
		}
		report.BelowAverage = make([]bool, len(estimates))
		for i, e := range estimates {
			report.BelowAverage[i] = e < average
		}
	}
	report.MutationCounts = g.mutator.Mutate(g.rng, offspring, estimates, average)

	next := make(framework.Population, 0, g.cfg.SolPerPop)
	for _, idx := range report.Elites {
		next = append(next, pop[idx].Clone())
	}
	for _, idx := range report.Retained {
		next = append(next, pop[idx].Clone())
	}
	first := len(next)
	for _, genes := range offspring {
		next = append(next, framework.Solution{Genes: genes})
	}
	if len(next) != g.cfg.SolPerPop {
		return framework.Solution{}, fmt.Errorf("next generation has %d solutions, expected %d", len(next), g.cfg.SolPerPop)
	}

	g.setState(Reevaluating)
	indices := make([]int, len(next)-first)
	for i := range indices {
		indices[i] = first + i
	}
	if err := g.evaluate(ctx, next, indices); err != nil {
		return framework.Solution{}, err
	}

	g.setState(Archiving)
	best, err := g.archivePopulation(next)
	if err != nil {
		return framework.Solution{}, err
	}

	g.mu.Lock()
	g.population = next
	g.completed = gen
	g.report = report
	g.mu.Unlock()
	return best, nil
}

// evaluate scores the solutions of pop at indices and attaches the fitness.
// Nothing is written unless every result passed the shape check.
func (g *GA) evaluate(ctx context.Context, pop framework.Population, indices []int) error {
	if len(indices) == 0 {
		return nil
	}
	genes := make([][]float64, len(indices))
	for i, idx := range indices {
		genes[i] = pop[idx].Genes
	}

	calls, evals := g.evaluator.Calls(), g.evaluator.Evaluations()
	values, err := g.evaluator.Evaluate(ctx, genes, indices)
	g.metrics.ObserveEvaluations(g.evaluator.Calls()-calls, g.evaluator.Evaluations()-evals)
	if err != nil {
		return err
	}
	for i, idx := range indices {
		pop[idx].Fitness = values[i]
	}
	return nil
}

// scoreOffspring evaluates the offspring before mutation and returns their
// fitness proxy next to the population average of the same proxy. The scores
// only steer adaptive mutation and are never archived. slot is the population
// index the first offspring will take.
func (g *GA) scoreOffspring(ctx context.Context, fit []framework.Fitness, offspring [][]float64, slot int) ([]float64, float64, error) {
	if len(offspring) == 0 {
		return nil, 0, nil
	}
	first := len(fit)
	indices := make([]int, len(offspring))
	for i := range indices {
		indices[i] = slot + i
	}
	calls, evals := g.evaluator.Calls(), g.evaluator.Evaluations()
	values, err := g.evaluator.Evaluate(ctx, offspring, indices)
	g.metrics.ObserveEvaluations(g.evaluator.Calls()-calls, g.evaluator.Evaluations()-evals)
	if err != nil {
		return nil, 0, err
	}

	// Multi-objective values are normalized over population and offspring together.
	all := make([]framework.Fitness, 0, first+len(values))
	all = append(append(all, fit...), values...)
	proxy := mutation.Proxy(all)
	return proxy[first:], mutation.Average(proxy[:first]), nil
}

// archivePopulation records pop and its best member and returns that member.
// The best-solutions log therefore holds the best of every population, which
// can be worse than an earlier one when no elitism is configured.
func (g *GA) archivePopulation(pop framework.Population) (framework.Solution, error) {
	idx, err := g.bestIndex(pop)
	if err != nil {
		return framework.Solution{}, err
	}
	g.archive.RecordPopulation(pop)
	g.archive.RecordBest(pop[idx])
	return pop[idx], nil
}

// retainParents returns the parents surviving into the next generation: the
// first n of parents by their position in order.
func retainParents(parents, order []int, n int) []int {
	if n >= len(parents) {
		return append([]int(nil), parents...)
	}
	pos := selection.Positions(order)
	ranked := append([]int(nil), parents...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return pos[ranked[i]] < pos[ranked[j]]
	})
	return ranked[:n]
}
