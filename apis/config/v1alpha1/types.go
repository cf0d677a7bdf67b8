/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// GroupName is the API group of the optimizer configuration.
	GroupName = "genetic.x-k8s.io"
	// Version of this configuration API.
	Version = "v1alpha1"
	// Kind of GeneticAlgorithmArgs documents.
	Kind = "GeneticAlgorithmArgs"
)

// GeneticAlgorithmArgs holds the arguments used to configure a genetic algorithm run.
// Unset optional fields are filled in by SetDefaults_GeneticAlgorithmArgs.
type GeneticAlgorithmArgs struct {
	metav1.TypeMeta `json:",inline"`

	// NumGenerations is the number of generations evolved after the initial population
	NumGenerations *int32 `json:"numGenerations,omitempty"`

	// SolPerPop is the number of solutions in the population
	SolPerPop *int32 `json:"solPerPop,omitempty"`

	// NumGenes is the length of every gene vector
	NumGenes *int32 `json:"numGenes,omitempty"`

	// NumParentsMating is the number of parents selected each generation
	NumParentsMating *int32 `json:"numParentsMating,omitempty"`

	// KeepElitism is the number of top solutions copied unchanged to the next generation
	KeepElitism *int32 `json:"keepElitism,omitempty"`

	// KeepParents is the number of selected parents kept in the next generation.
	// -1 keeps all of them and 0 keeps none.
	KeepParents *int32 `json:"keepParents,omitempty"`

	// ParentSelectionType names the parent selection strategy
	// +kubebuilder:validation:Enum=sss;nsga2;tournament;tournament_nsga2;rws;random
	ParentSelectionType *string `json:"parentSelectionType,omitempty"`

	// KTournament is the number of contestants in tournament selection
	KTournament *int32 `json:"kTournament,omitempty"`

	// CrossoverType names the crossover strategy
	// +kubebuilder:validation:Enum=single_point;two_points;uniform;sbx
	CrossoverType *string `json:"crossoverType,omitempty"`

	// CrossoverProbability is the probability a child is produced by crossover
	// instead of copying its first parent
	CrossoverProbability *float64 `json:"crossoverProbability,omitempty"`

	// MutationType names the mutation operator
	// +kubebuilder:validation:Enum=random;adaptive;swap;inversion;scramble;none
	MutationType *string `json:"mutationType,omitempty"`

	// MutationPercentGenes is the percentage of genes mutated per offspring.
	// Adaptive mutation takes two values: [high, low].
	MutationPercentGenes []float64 `json:"mutationPercentGenes,omitempty"`

	// MutationByReplacement replaces a mutated gene instead of adding a random offset
	MutationByReplacement *bool `json:"mutationByReplacement,omitempty"`

	// InitRange bounds the genes of the initial population and replacement values
	InitRangeLow  *float64 `json:"initRangeLow,omitempty"`
	InitRangeHigh *float64 `json:"initRangeHigh,omitempty"`

	// RandomMutation bounds the offsets added by non-replacing mutation
	RandomMutationMinVal *float64 `json:"randomMutationMinVal,omitempty"`
	RandomMutationMaxVal *float64 `json:"randomMutationMaxVal,omitempty"`

	// MultiObjective marks the fitness as a vector of objectives
	MultiObjective *bool `json:"multiObjective,omitempty"`

	// NumObjectives fixes the fitness vector length. Inferred from the first
	// evaluation when unset.
	NumObjectives *int32 `json:"numObjectives,omitempty"`

	// FitnessBatchSize groups solutions into one fitness call. Unset or 1 disables batching.
	FitnessBatchSize *int32 `json:"fitnessBatchSize,omitempty"`

	// ParallelEvaluations bounds concurrent fitness calls. 1 evaluates sequentially.
	ParallelEvaluations *int32 `json:"parallelEvaluations,omitempty"`

	// CacheFitness reuses the fitness of gene vectors evaluated before
	CacheFitness *bool `json:"cacheFitness,omitempty"`

	// SaveSolutions records every evaluated solution
	SaveSolutions *bool `json:"saveSolutions,omitempty"`

	// SaveBestSolutions records the best solution of every generation
	SaveBestSolutions *bool `json:"saveBestSolutions,omitempty"`

	// RandomSeed makes a run reproducible
	RandomSeed *uint64 `json:"randomSeed,omitempty"`
}
