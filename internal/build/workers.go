package build

import "runtime"

// Worker pool limits.
const (
	MinWorkers = 1
	MaxWorkers = 16
)

// ResolveWorkers returns the worker count for a build.
// Explicit value takes priority. Otherwise GOMAXPROCS (adjusted by
// automaxprocs for containers) is clamped to [MinWorkers, MaxWorkers].
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
