package model

import "math"

type permutationGenerator interface {
	// Enumerates every permutation (one value per domain, the first domain varying slowest) that holds all the constraints.
	// Positions are assigned in order and the unassigned ones hold math.MaxUint64, so a constraint must accept any permutation whose positions of interest are not assigned yet.
	//
	// Example, two courses with 3 and 2 sections where section 0 of the first course overlaps section 1 of the second:
	//
	//	generator := newPermutationGenerator(3, 2)
	//	permutations := generator.ConstrainedPermutations([]func(permutation []uint64) bool{
	//		func(permutation []uint64) bool {
	//			return permutation[1] == math.MaxUint64 || !(permutation[0] == 0 && permutation[1] == 1)
	//		},
	//	})
	//	// [[0 0] [1 0] [1 1] [2 0] [2 1]]
	ConstrainedPermutations(constraints []func(permutation []uint64) bool) [][]uint64
}

func newPermutationGenerator(domains ...uint64) permutationGenerator {
	return &permutationGeneratorImplementation{domains: domains}
}

type permutationGeneratorImplementation struct {
	domains []uint64
}

func (generator *permutationGeneratorImplementation) ConstrainedPermutations(constraints []func(permutation []uint64) bool) [][]uint64 {
	permutations := make([][]uint64, 0)
	if len(generator.domains) == 0 {
		return permutations
	}

	permutation := make([]uint64, len(generator.domains))
	for i := range permutation {
		permutation[i] = math.MaxUint64
	}

	generator.constrainedPermutations(constraints, 0, permutation, &permutations)
	return permutations
}

func (generator *permutationGeneratorImplementation) constrainedPermutations(
	constraints []func(permutation []uint64) bool,
	currentDomain int,
	permutation []uint64,
	permutations *[][]uint64) {

	if currentDomain >= len(generator.domains) {
		permutationCopy := make([]uint64, len(permutation))
		copy(permutationCopy, permutation)
		*permutations = append(*permutations, permutationCopy)
		return
	}

	for i := uint64(0); i < generator.domains[currentDomain]; i++ {
		permutation[currentDomain] = i
		constraintViolated := false
		for _, constraint := range constraints {
			if !constraint(permutation) {
				constraintViolated = true
				break
			}
		}

		if constraintViolated {
			continue
		}

		generator.constrainedPermutations(constraints, currentDomain+1, permutation, permutations)
	}

	permutation[currentDomain] = math.MaxUint64
}
