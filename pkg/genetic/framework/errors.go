package framework

import "errors"

var (
	// ErrConfiguration reports invalid or contradictory settings.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrExhaustedPopulation reports that elitism plus retained parents leave
	// no room in the population.
	ErrExhaustedPopulation = errors.New("kept solutions exceed population size")
	// ErrShapeMismatch reports a fitness callback result of the wrong arity.
	ErrShapeMismatch = errors.New("fitness shape mismatch")
	// ErrEvaluationFailure reports an error returned by the fitness callback.
	ErrEvaluationFailure = errors.New("fitness evaluation failed")
)
