// Package term implements the symbolic term algebra underlying the Van Vleck
// expansion: nested bracket trees over the Fourier components of a
// time-periodic Hamiltonian.
//
// The package defines the fundamental types and operations:
//
//   - [Term]: a leaf harmonic or a bracket node over two sub-terms
//   - [Collection]: an ordered multiset of terms
//   - [Bracket], [TimeDerivative], [ExtractRotating], [TimeIntegrate]:
//     the four algebraic operators
//   - [Compare], [CombineIfEqual], [Collection.Simplify]: structural
//     equivalence and coefficient folding
//
// Coefficients are exact rationals (math/big.Rat); float inputs are converted
// losslessly, so no drift accumulates through deep recursion.
//
// # Thread Safety
//
// The package-level warn hook and operation counters are NOT thread-safe.
// The expansion is a deterministic single-threaded computation; callers that
// want parallelism should give each problem instance its own goroutine and
// serialize access to this package.
package term
