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
	"testing"

	"github.com/google/go-cmp/cmp"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

func TestSetDefaults_GeneticAlgorithmArgs(t *testing.T) {
	tests := []struct {
		name string
		in   *GeneticAlgorithmArgs
		want *GeneticAlgorithmArgs
	}{
		{
			name: "empty args",
			in:   &GeneticAlgorithmArgs{},
			want: &GeneticAlgorithmArgs{
				TypeMeta:              metav1.TypeMeta{APIVersion: "genetic.x-k8s.io/v1alpha1", Kind: "GeneticAlgorithmArgs"},
				KeepElitism:           ptr.To[int32](1),
				KeepParents:           ptr.To[int32](-1),
				ParentSelectionType:   ptr.To("sss"),
				KTournament:           ptr.To[int32](3),
				CrossoverType:         ptr.To("single_point"),
				MutationType:          ptr.To("random"),
				MutationPercentGenes:  []float64{10},
				MutationByReplacement: ptr.To(true),
				InitRangeLow:          ptr.To(-4.0),
				InitRangeHigh:         ptr.To(4.0),
				RandomMutationMinVal:  ptr.To(-1.0),
				RandomMutationMaxVal:  ptr.To(1.0),
				MultiObjective:        ptr.To(false),
				ParallelEvaluations:   ptr.To[int32](1),
				CacheFitness:          ptr.To(false),
				SaveSolutions:         ptr.To(false),
				SaveBestSolutions:     ptr.To(false),
			},
		},
		{
			name: "adaptive mutation keeps set values",
			in: &GeneticAlgorithmArgs{
				NumGenerations:   ptr.To[int32](100),
				KeepElitism:      ptr.To[int32](0),
				MutationType:     ptr.To("adaptive"),
				FitnessBatchSize: ptr.To[int32](4),
			},
			want: &GeneticAlgorithmArgs{
				TypeMeta:              metav1.TypeMeta{APIVersion: "genetic.x-k8s.io/v1alpha1", Kind: "GeneticAlgorithmArgs"},
				NumGenerations:        ptr.To[int32](100),
				KeepElitism:           ptr.To[int32](0),
				KeepParents:           ptr.To[int32](-1),
				ParentSelectionType:   ptr.To("sss"),
				KTournament:           ptr.To[int32](3),
				CrossoverType:         ptr.To("single_point"),
				MutationType:          ptr.To("adaptive"),
				MutationPercentGenes:  []float64{10, 5},
				MutationByReplacement: ptr.To(true),
				InitRangeLow:          ptr.To(-4.0),
				InitRangeHigh:         ptr.To(4.0),
				RandomMutationMinVal:  ptr.To(-1.0),
				RandomMutationMaxVal:  ptr.To(1.0),
				MultiObjective:        ptr.To(false),
				FitnessBatchSize:      ptr.To[int32](4),
				ParallelEvaluations:   ptr.To[int32](1),
				CacheFitness:          ptr.To(false),
				SaveSolutions:         ptr.To(false),
				SaveBestSolutions:     ptr.To(false),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetDefaults_GeneticAlgorithmArgs(tt.in)
			if diff := cmp.Diff(tt.want, tt.in); diff != "" {
				t.Errorf("unexpected defaults (-want +got):\n%s", diff)
			}
		})
	}
}
