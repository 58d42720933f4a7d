package vanvleck

import "github.com/maksli/vanvleck/internal/term"

// defaultExpansion backs the package-level convenience API for callers that
// work with a single problem at a time.
var defaultExpansion = NewEmpty()

// SetHamiltonian seeds the default expansion with h as K(0,0), dropping any
// previously cached entries.
func SetHamiltonian(h term.Collection) { defaultExpansion.SetHamiltonian(h) }

// ClearCaches empties the default expansion's memo tables.
func ClearCaches() { defaultExpansion.Clear() }

// Kamiltonian evaluates K(n,k) on the default expansion.
func Kamiltonian(n, k int) (term.Collection, error) { return defaultExpansion.Kamiltonian(n, k) }

// Generator evaluates S(n) on the default expansion.
func Generator(n int) (term.Collection, error) { return defaultExpansion.Generator(n) }

// K evaluates the full n-th order effective Hamiltonian on the default
// expansion.
func K(n int) (term.Collection, error) { return defaultExpansion.K(n) }

// S is an alias for Generator.
func S(n int) (term.Collection, error) { return defaultExpansion.Generator(n) }
