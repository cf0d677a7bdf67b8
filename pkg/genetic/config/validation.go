package config

import (
	"fmt"
	"slices"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/crossover"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/selection"
)

// Validate checks every setting and their combinations. Invalid settings wrap
// framework.ErrConfiguration; elitism plus retained parents larger than the
// population wraps framework.ErrExhaustedPopulation.
func (c Config) Validate() error {
	if errs := c.validateFields(field.NewPath("geneticAlgorithmArgs")); len(errs) > 0 {
		return fmt.Errorf("%w: %v", framework.ErrConfiguration, errs.ToAggregate())
	}
	if kept := c.KeepElitism + c.RetainedParents(); kept > c.SolPerPop {
		return fmt.Errorf("%w: keepElitism (%d) + retained parents (%d) > solPerPop (%d)",
			framework.ErrExhaustedPopulation, c.KeepElitism, c.RetainedParents(), c.SolPerPop)
	}
	return nil
}

func (c Config) validateFields(root *field.Path) field.ErrorList {
	var allErrs field.ErrorList

	if c.NumGenerations < 0 {
		allErrs = append(allErrs, field.Invalid(root.Child("numGenerations"), c.NumGenerations, "must be >= 0"))
	}
	if c.SolPerPop < 1 {
		allErrs = append(allErrs, field.Invalid(root.Child("solPerPop"), c.SolPerPop, "must be > 0"))
	}
	if c.NumGenes < 1 {
		allErrs = append(allErrs, field.Invalid(root.Child("numGenes"), c.NumGenes, "must be > 0"))
	}
	if c.NumParentsMating < 1 || c.NumParentsMating > c.SolPerPop {
		allErrs = append(allErrs, field.Invalid(root.Child("numParentsMating"), c.NumParentsMating, "must be in [1, solPerPop]"))
	}
	if c.KeepElitism < 0 {
		allErrs = append(allErrs, field.Invalid(root.Child("keepElitism"), c.KeepElitism, "must be >= 0"))
	}
	if c.KeepParents < -1 || c.KeepParents > c.NumParentsMating {
		allErrs = append(allErrs, field.Invalid(root.Child("keepParents"), c.KeepParents, "must be -1 or in [0, numParentsMating]"))
	}

	selPath := root.Child("parentSelectionType")
	switch {
	case !slices.Contains(selection.Types, c.ParentSelectionType):
		allErrs = append(allErrs, field.NotSupported(selPath, c.ParentSelectionType, selection.Types))
	case c.ParentSelectionType.RequiresMultiObjective() && !c.MultiObjective:
		allErrs = append(allErrs, field.Invalid(selPath, c.ParentSelectionType, "requires multiObjective"))
	case c.ParentSelectionType.RequiresSingleObjective() && c.MultiObjective:
		allErrs = append(allErrs, field.Invalid(selPath, c.ParentSelectionType, "requires a single objective"))
	}
	if (c.ParentSelectionType == selection.Tournament || c.ParentSelectionType == selection.TournamentNSGA2) && c.KTournament < 1 {
		allErrs = append(allErrs, field.Invalid(root.Child("kTournament"), c.KTournament, "must be > 0"))
	}

	if !slices.Contains(crossover.Types, c.CrossoverType) {
		allErrs = append(allErrs, field.NotSupported(root.Child("crossoverType"), c.CrossoverType, crossover.Types))
	}
	if p := c.CrossoverProbability; p != nil && (*p < 0 || *p > 1) {
		allErrs = append(allErrs, field.Invalid(root.Child("crossoverProbability"), *p, "must be in [0, 1]"))
	}

	if err := c.MutationScheduler().Validate(); err != nil {
		allErrs = append(allErrs, field.Invalid(root.Child("mutationType"), c.MutationType, err.Error()))
	}
	if c.InitRange.L >= c.InitRange.H {
		allErrs = append(allErrs, field.Invalid(root.Child("initRangeLow"), c.InitRange.L, "must be below initRangeHigh"))
	}
	if c.RandomMutationRange.L > c.RandomMutationRange.H {
		allErrs = append(allErrs, field.Invalid(root.Child("randomMutationMinVal"), c.RandomMutationRange.L, "must not exceed randomMutationMaxVal"))
	}

	if c.NumObjectives < 0 || (!c.MultiObjective && c.NumObjectives > 1) {
		allErrs = append(allErrs, field.Invalid(root.Child("numObjectives"), c.NumObjectives, "must be 0 or 1 for a single objective, >= 0 otherwise"))
	}
	if b := c.FitnessBatchSize; b != nil && (*b < 1 || *b > c.SolPerPop) {
		allErrs = append(allErrs, field.Invalid(root.Child("fitnessBatchSize"), *b, "must be in [1, solPerPop]"))
	}
	if c.ParallelEvaluations < 1 {
		allErrs = append(allErrs, field.Invalid(root.Child("parallelEvaluations"), c.ParallelEvaluations, "must be > 0"))
	}
	return allErrs
}
