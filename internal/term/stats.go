package term

// OpStats counts algebraic operations since the last reset. The counters let
// tests and the growth profiler observe how much bracket and comparison work
// a computation performed (for example, that a memoized call did none).
type OpStats struct {
	Brackets     uint64
	Derivatives  uint64
	Integrations uint64
	Compares     uint64
	Combines     uint64
}

var stats OpStats

// Stats returns a snapshot of the operation counters.
func Stats() OpStats { return stats }

// ResetStats zeroes the operation counters.
func ResetStats() { stats = OpStats{} }
