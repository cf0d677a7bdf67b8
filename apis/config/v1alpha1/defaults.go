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
	"k8s.io/utils/ptr"
)

var (
	DefaultKeepElitism          int32   = 1
	DefaultKeepParents          int32   = -1
	DefaultParentSelectionType          = "sss"
	DefaultKTournament          int32   = 3
	DefaultCrossoverType                = "single_point"
	DefaultMutationType                 = "random"
	DefaultMutationPercentGenes float64 = 10
	DefaultInitRangeLow         float64 = -4
	DefaultInitRangeHigh        float64 = 4
	DefaultRandomMutationMinVal float64 = -1
	DefaultRandomMutationMaxVal float64 = 1
	DefaultParallelEvaluations  int32   = 1
)

// SetDefaults_GeneticAlgorithmArgs sets the default parameters for a genetic algorithm run.
// Required sizes (generations, population, genes, parents) are left untouched.
func SetDefaults_GeneticAlgorithmArgs(obj *GeneticAlgorithmArgs) {
	if obj.APIVersion == "" {
		obj.APIVersion = GroupName + "/" + Version
	}
	if obj.Kind == "" {
		obj.Kind = Kind
	}
	if obj.KeepElitism == nil {
		obj.KeepElitism = ptr.To(DefaultKeepElitism)
	}
	if obj.KeepParents == nil {
		obj.KeepParents = ptr.To(DefaultKeepParents)
	}
	if obj.ParentSelectionType == nil {
		obj.ParentSelectionType = ptr.To(DefaultParentSelectionType)
	}
	if obj.KTournament == nil {
		obj.KTournament = ptr.To(DefaultKTournament)
	}
	if obj.CrossoverType == nil {
		obj.CrossoverType = ptr.To(DefaultCrossoverType)
	}
	if obj.MutationType == nil {
		obj.MutationType = ptr.To(DefaultMutationType)
	}
	if len(obj.MutationPercentGenes) == 0 {
		if *obj.MutationType == "adaptive" {
			// [high, low]
			obj.MutationPercentGenes = []float64{DefaultMutationPercentGenes, DefaultMutationPercentGenes / 2}
		} else {
			obj.MutationPercentGenes = []float64{DefaultMutationPercentGenes}
		}
	}
	if obj.MutationByReplacement == nil {
		obj.MutationByReplacement = ptr.To(true)
	}
	if obj.InitRangeLow == nil {
		obj.InitRangeLow = ptr.To(DefaultInitRangeLow)
	}
	if obj.InitRangeHigh == nil {
		obj.InitRangeHigh = ptr.To(DefaultInitRangeHigh)
	}
	if obj.RandomMutationMinVal == nil {
		obj.RandomMutationMinVal = ptr.To(DefaultRandomMutationMinVal)
	}
	if obj.RandomMutationMaxVal == nil {
		obj.RandomMutationMaxVal = ptr.To(DefaultRandomMutationMaxVal)
	}
	if obj.MultiObjective == nil {
		obj.MultiObjective = ptr.To(false)
	}
	if obj.ParallelEvaluations == nil {
		obj.ParallelEvaluations = ptr.To(DefaultParallelEvaluations)
	}
	if obj.CacheFitness == nil {
		obj.CacheFitness = ptr.To(false)
	}
	if obj.SaveSolutions == nil {
		obj.SaveSolutions = ptr.To(false)
	}
	if obj.SaveBestSolutions == nil {
		obj.SaveBestSolutions = ptr.To(false)
	}
}
