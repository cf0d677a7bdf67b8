package mutation

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// Proxy reduces every fitness to one comparable number. Single-objective
// fitness is used as is. Multi-objective fitness becomes the mean, over
// objectives, of the value min-max normalized across the population; an
// objective with no spread contributes 0.5.
func Proxy(fitness []framework.Fitness) []float64 {
	out := make([]float64, len(fitness))
	if len(fitness) == 0 {
		return out
	}
	numObjectives := len(fitness[0])
	if numObjectives == 1 {
		for i, f := range fitness {
			out[i] = f.Scalar()
		}
		return out
	}

	column := make([]float64, len(fitness))
	for m := 0; m < numObjectives; m++ {
		for i, f := range fitness {
			column[i] = f[m]
		}
		lo, hi := floats.Min(column), floats.Max(column)
		for i, v := range column {
			if hi == lo {
				out[i] += 0.5
			} else {
				out[i] += (v - lo) / (hi - lo)
			}
		}
	}
	floats.Scale(1/float64(numObjectives), out)
	return out
}

// Average is the population mean of the proxy.
func Average(proxy []float64) float64 {
	if len(proxy) == 0 {
		return 0
	}
	return stat.Mean(proxy, nil)
}
