package fitness

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// Func scores one solution. idx is the solution's position in the population.
type Func func(ctx context.Context, genes []float64, idx int) (framework.Fitness, error)

// BatchFunc scores a group of solutions and returns one fitness per solution,
// in the order given.
type BatchFunc func(ctx context.Context, batch [][]float64, indices []int) ([]framework.Fitness, error)

// Scalar adapts a single-objective scoring function to Func.
func Scalar(f func(ctx context.Context, genes []float64, idx int) (float64, error)) Func {
	return func(ctx context.Context, genes []float64, idx int) (framework.Fitness, error) {
		v, err := f(ctx, genes, idx)
		if err != nil {
			return nil, err
		}
		return framework.Fitness{v}, nil
	}
}

// Callback is the user scoring code. Func is used without batching and Batch
// when the batch size is above 1.
type Callback struct {
	Func  Func
	Batch BatchFunc
}

// Options configure an Evaluator.
type Options struct {
	MultiObjective bool
	// NumObjectives fixes the multi-objective fitness length. Zero infers it
	// from the first result.
	NumObjectives int
	// BatchSize groups solutions per call. 0 or 1 disables batching.
	BatchSize int
	// Parallelism bounds concurrent calls. Values below 2 evaluate sequentially.
	Parallelism int
	// Cache reuses the fitness of identical gene vectors.
	Cache bool
}

// Evaluator adapts a Callback to a uniform population-level interface.
type Evaluator struct {
	callback Callback
	opts     Options
	memo     *memo

	mu            sync.Mutex
	numObjectives int

	calls       atomic.Int64
	evaluations atomic.Int64
}

// NewEvaluator checks that the callback matches the calling convention in opts.
func NewEvaluator(cb Callback, opts Options) (*Evaluator, error) {
	if opts.BatchSize > 1 && cb.Batch == nil {
		return nil, fmt.Errorf("%w: batch size %d requires a batch fitness function", framework.ErrConfiguration, opts.BatchSize)
	}
	if opts.BatchSize <= 1 && cb.Func == nil {
		return nil, fmt.Errorf("%w: a per-solution fitness function is required without batching", framework.ErrConfiguration)
	}
	if opts.NumObjectives < 0 {
		return nil, fmt.Errorf("%w: invalid number of objectives: %d", framework.ErrConfiguration, opts.NumObjectives)
	}

	e := &Evaluator{callback: cb, opts: opts}
	if !opts.MultiObjective {
		e.numObjectives = 1
	} else {
		e.numObjectives = opts.NumObjectives
	}
	if opts.Cache {
		e.memo = newMemo()
	}
	return e, nil
}

// Batched reports whether solutions are grouped per call.
func (e *Evaluator) Batched() bool {
	return e.opts.BatchSize > 1
}

// NumObjectives returns the fitness length, or 0 if not known yet.
func (e *Evaluator) NumObjectives() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.numObjectives
}

// Calls returns the number of callback invocations so far.
func (e *Evaluator) Calls() int64 {
	return e.calls.Load()
}

// Evaluations returns the number of solutions scored by the callback so far.
// Cache hits are not counted.
func (e *Evaluator) Evaluations() int64 {
	return e.evaluations.Load()
}

// CacheSize returns the number of memoized gene vectors.
func (e *Evaluator) CacheSize() int {
	return e.memo.len()
}

// Evaluate scores genes and returns a parallel slice of fitness values.
// indices holds the population position of every entry in genes and is passed
// through to the callback. All results are shape checked before returning.
func (e *Evaluator) Evaluate(ctx context.Context, genes [][]float64, indices []int) ([]framework.Fitness, error) {
	if len(genes) != len(indices) {
		return nil, fmt.Errorf("got %d solutions but %d indices", len(genes), len(indices))
	}
	logger := klog.FromContext(ctx)

	results := make([]framework.Fitness, len(genes))
	pending := make([]int, 0, len(genes))
	for i := range genes {
		if f, ok := e.memo.get(genes[i]); ok {
			results[i] = f
			continue
		}
		pending = append(pending, i)
	}
	if hits := len(genes) - len(pending); hits > 0 {
		logger.V(5).Info("Reusing cached fitness", "hits", hits)
	}

	size := 1
	if e.Batched() {
		size = e.opts.BatchSize
	}
	groups := Partition(pending, size)

	g, gctx := errgroup.WithContext(ctx)
	if e.opts.Parallelism > 1 {
		g.SetLimit(e.opts.Parallelism)
	} else {
		g.SetLimit(1)
	}
	for _, group := range groups {
		g.Go(func() error {
			return e.evaluateGroup(gctx, genes, indices, group, results)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, i := range pending {
		e.memo.set(genes[i], results[i])
	}
	return results, nil
}

// evaluateGroup scores the entries at positions and writes them to results.
// Every goroutine writes disjoint slots.
func (e *Evaluator) evaluateGroup(ctx context.Context, genes [][]float64, indices []int, positions []int, results []framework.Fitness) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !e.Batched() {
		p := positions[0]
		e.calls.Add(1)
		f, err := e.callback.Func(ctx, genes[p], indices[p])
		if err != nil {
			return fmt.Errorf("%w: solution %d: %w", framework.ErrEvaluationFailure, indices[p], err)
		}
		if err := e.checkShape(f, indices[p]); err != nil {
			return err
		}
		e.evaluations.Add(1)
		results[p] = f.Clone()
		return nil
	}

	batch := make([][]float64, len(positions))
	batchIndices := make([]int, len(positions))
	for k, p := range positions {
		batch[k] = genes[p]
		batchIndices[k] = indices[p]
	}
	e.calls.Add(1)
	out, err := e.callback.Batch(ctx, batch, batchIndices)
	if err != nil {
		return fmt.Errorf("%w: batch %v: %w", framework.ErrEvaluationFailure, batchIndices, err)
	}
	if len(out) != len(batch) {
		return fmt.Errorf("%w: batch of %d solutions returned %d fitness values", framework.ErrShapeMismatch, len(batch), len(out))
	}
	for k, f := range out {
		if err := e.checkShape(f, batchIndices[k]); err != nil {
			return err
		}
	}
	for k, p := range positions {
		results[p] = out[k].Clone()
	}
	e.evaluations.Add(int64(len(positions)))
	return nil
}

func (e *Evaluator) checkShape(f framework.Fitness, idx int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.numObjectives == 0 {
		if len(f) == 0 {
			return fmt.Errorf("%w: solution %d returned an empty fitness", framework.ErrShapeMismatch, idx)
		}
		e.numObjectives = len(f)
	}
	if len(f) != e.numObjectives {
		return fmt.Errorf("%w: solution %d returned %d objectives, expected %d", framework.ErrShapeMismatch, idx, len(f), e.numObjectives)
	}
	return nil
}
