package benchmarks

import (
	"context"
	"fmt"
	"math"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

const (
	ZDT1Name = "ZDT1"
)

// ZDT1 is a benchmark function used to test the correctness
// of multi-objective algorithms. For more details, check the article below:
// https://datacrayon.com/practical-evolutionary-algorithms/synthetic-objective-functions-and-zdt1/
//
// ZDT1 is a minimization problem defined on [0, 1]; the fitness functions
// here return the negated objectives so the optimizer can maximize them.
type ZDT1 struct {
	numVars int
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{
		numVars,
	}
}

func (p *ZDT1) Name() string {
	return ZDT1Name
}

func (p *ZDT1) NumVars() int {
	return p.numVars
}

func (p *ZDT1) Bounds() framework.Bounds {
	return framework.Bounds{L: 0.0, H: 1.0}
}

// Objectives evaluates f1 and f2 after clamping x to the bounds.
func (p *ZDT1) Objectives(x []float64) (float64, float64) {
	xx := clamp(x, p.Bounds())
	f1 := xx[0]
	g := 1.0
	for i := 1; i < len(xx); i++ {
		g += 9.0 * xx[i] / float64(len(xx)-1)
	}
	return f1, g * (1.0 - math.Sqrt(xx[0]/g))
}

// Fitness scores one solution.
func (p *ZDT1) Fitness(_ context.Context, genes []float64, _ int) (framework.Fitness, error) {
	if len(genes) != p.numVars {
		return nil, fmt.Errorf("%s expects %d variables, got %d", p.Name(), p.numVars, len(genes))
	}
	f1, f2 := p.Objectives(genes)
	return framework.Fitness{-f1, -f2}, nil
}

// BatchFitness scores a group of solutions.
func (p *ZDT1) BatchFitness(ctx context.Context, batch [][]float64, indices []int) ([]framework.Fitness, error) {
	out := make([]framework.Fitness, len(batch))
	for i := range batch {
		f, err := p.Fitness(ctx, batch[i], indices[i])
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// TrueParetoFront generates numPoints points on the true Pareto front for ZDT1
// in the original (minimized) objective space.
func (p *ZDT1) TrueParetoFront(numPoints int) [][]float64 {
	points := make([][]float64, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = []float64{
			x, 1.0 - math.Sqrt(x),
		}
	}
	return points
}

func clamp(x []float64, b framework.Bounds) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Max(b.L, math.Min(b.H, v))
	}
	return out
}
