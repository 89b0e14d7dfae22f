// Package solver finds the dictionary words that can be made from a jumble.
//
// Exhaustive tries every subset of the letters against the word index.
// BestFirst tries letter orderings in the order a trained reader would,
// and gives up once the remaining orderings look too unlikely.
package solver

// Solver solves one jumble per call. Implementations hold only read-only
// state, so one Solver can serve concurrent calls.
type Solver interface {
	Solve(letters string) []string
}

