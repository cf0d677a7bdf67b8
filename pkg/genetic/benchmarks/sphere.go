package benchmarks

import (
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

const (
	SphereName = "Sphere"
)

// Sphere is the single-objective benchmark f(x) = -sum(x_i^2), maximal at the origin.
type Sphere struct{}

func (Sphere) Name() string {
	return SphereName
}

func (Sphere) Fitness(_ context.Context, genes []float64, _ int) (float64, error) {
	return -floats.Dot(genes, genes), nil
}

func (s Sphere) BatchFitness(ctx context.Context, batch [][]float64, indices []int) ([]framework.Fitness, error) {
	out := make([]framework.Fitness, len(batch))
	for i := range batch {
		v, _ := s.Fitness(ctx, batch[i], indices[i])
		out[i] = framework.Fitness{v}
	}
	return out, nil
}
