package framework

// Fitness holds the objective values of an evaluated solution. A
// single-objective fitness has exactly one value.
type Fitness []float64

// Clone returns a copy of f.
func (f Fitness) Clone() Fitness {
	if f == nil {
		return nil
	}
	out := make(Fitness, len(f))
	copy(out, f)
	return out
}

// Scalar returns the first objective value. It is the fitness of a
// single-objective solution.
func (f Fitness) Scalar() float64 {
	return f[0]
}

// Solution represents an individual in the population
type Solution struct {
	Genes   []float64
	Fitness Fitness
}

// Clone deep-copies the genes and fitness so the copy can be placed in a new
// population without aliasing the original slot.
func (s Solution) Clone() Solution {
	genes := make([]float64, len(s.Genes))
	copy(genes, s.Genes)
	return Solution{
		Genes:   genes,
		Fitness: s.Fitness.Clone(),
	}
}

// Evaluated reports whether a fitness value is attached.
func (s Solution) Evaluated() bool {
	return s.Fitness != nil
}

// Population is an ordered set of solutions of fixed size.
type Population []Solution

// Genes returns the gene vectors of the population, in order. The vectors are
// shared with the population.
func (p Population) Genes() [][]float64 {
	out := make([][]float64, len(p))
	for i := range p {
		out[i] = p[i].Genes
	}
	return out
}

// Fitness returns the fitness of every member, in order.
func (p Population) Fitness() []Fitness {
	out := make([]Fitness, len(p))
	for i := range p {
		out[i] = p[i].Fitness
	}
	return out
}

// Clone deep-copies every solution.
func (p Population) Clone() Population {
	out := make(Population, len(p))
	for i := range p {
		out[i] = p[i].Clone()
	}
	return out
}

// Bounds is a closed-open [L, H) range genes are drawn from.
type Bounds struct {
	L float64
	H float64
}

// Width returns H - L.
func (b Bounds) Width() float64 {
	return b.H - b.L
}
