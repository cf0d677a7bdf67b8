package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "genetic"

// Metrics are the collectors of one optimizer. A nil *Metrics records nothing.
type Metrics struct {
	Generations        prometheus.Counter
	Evaluations        prometheus.Counter
	FitnessCalls       prometheus.Counter
	BestFitness        prometheus.Gauge
	GenerationDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg when reg is not nil.
// constLabels distinguish concurrent runs sharing a registry.
func New(reg prometheus.Registerer, constLabels prometheus.Labels) (*Metrics, error) {
	m := &Metrics{
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "generations_total",
			Help:        "Number of completed generations.",
			ConstLabels: constLabels,
		}),
		Evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "fitness_evaluations_total",
			Help:        "Number of solutions scored by the fitness function.",
			ConstLabels: constLabels,
		}),
		FitnessCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "fitness_calls_total",
			Help:        "Number of fitness function invocations. Lower than evaluations when batching.",
			ConstLabels: constLabels,
		}),
		BestFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "best_fitness",
			Help:        "First objective of the best solution in the current population.",
			ConstLabels: constLabels,
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "generation_duration_seconds",
			Help:        "Wall time of one generation.",
			Buckets:     prometheus.ExponentialBuckets(0.0001, 4, 10),
			ConstLabels: constLabels,
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.Generations, m.Evaluations, m.FitnessCalls, m.BestFitness, m.GenerationDuration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// ObserveEvaluations adds the callback activity of one evaluation round.
func (m *Metrics) ObserveEvaluations(calls, evaluations int64) {
	if m == nil {
		return
	}
	m.FitnessCalls.Add(float64(calls))
	m.Evaluations.Add(float64(evaluations))
}

// ObserveGeneration records a finished generation.
func (m *Metrics) ObserveGeneration(took time.Duration, best float64) {
	if m == nil {
		return
	}
	m.Generations.Inc()
	m.GenerationDuration.Observe(took.Seconds())
	m.BestFitness.Set(best)
}

// SetBest records the best fitness without counting a generation.
func (m *Metrics) SetBest(best float64) {
	if m == nil {
		return
	}
	m.BestFitness.Set(best)
}
