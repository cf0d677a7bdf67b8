package store

import (
	"encoding/json"
	"errors"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

const CurrentSchemaVersion = 1

var ErrVersionMismatch = errors.New("snapshot schema version mismatch")

// Snapshot is the persisted result of one run: the final population and the
// archives.
type Snapshot struct {
	SchemaVersion        int                 `json:"schema_version"`
	RunID                string              `json:"run_id"`
	GenerationsCompleted int                 `json:"generations_completed"`
	Population           []Solution          `json:"population"`
	Solutions            [][]float64         `json:"solutions,omitempty"`
	SolutionsFitness     []framework.Fitness `json:"solutions_fitness,omitempty"`
	BestSolutions        [][]float64         `json:"best_solutions,omitempty"`
	BestSolutionsFitness []framework.Fitness `json:"best_solutions_fitness"`
}

type Solution struct {
	Genes   []float64         `json:"genes"`
	Fitness framework.Fitness `json:"fitness"`
}

// NewSnapshot captures pop and the archive contents.
func NewSnapshot(runID string, generations int, pop framework.Population, solutions [][]float64, solutionsFitness []framework.Fitness, best [][]float64, bestFitness []framework.Fitness) Snapshot {
	s := Snapshot{
		SchemaVersion:        CurrentSchemaVersion,
		RunID:                runID,
		GenerationsCompleted: generations,
		Population:           make([]Solution, len(pop)),
		Solutions:            solutions,
		SolutionsFitness:     solutionsFitness,
		BestSolutions:        best,
		BestSolutionsFitness: bestFitness,
	}
	for i, sol := range pop {
		c := sol.Clone()
		s.Population[i] = Solution{Genes: c.Genes, Fitness: c.Fitness}
	}
	return s
}

// Genes returns the gene vectors of the persisted population, suitable for
// seeding a new run.
func (s Snapshot) Genes() [][]float64 {
	out := make([][]float64, len(s.Population))
	for i := range s.Population {
		out[i] = append([]float64(nil), s.Population[i].Genes...)
	}
	return out
}

func EncodeSnapshot(s Snapshot) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, err
	}
	if s.SchemaVersion != CurrentSchemaVersion {
		return Snapshot{}, ErrVersionMismatch
	}
	return s, nil
}
