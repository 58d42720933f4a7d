// Package vanvleck implements the memoized Van Vleck recursion over the term
// algebra: the generators S(n) of the canonical transformation and the
// Kamiltonian contributions K(n,k) of the static effective Hamiltonian.
//
// An [Expansion] holds one problem instance: the base Hamiltonian K(0,0) and
// the two memo tables. Independent problems get independent Expansions; a
// package-level default instance backs the convenience entry points
// [SetHamiltonian], [ClearCaches], [K], [S], [Kamiltonian] and [Generator].
//
// # Thread Safety
//
// Expansion instances are NOT thread-safe. The recursion is a pure
// deterministic function of (n, k) and the cache contents; to compute
// concurrently, give each goroutine its own Expansion.
package vanvleck
