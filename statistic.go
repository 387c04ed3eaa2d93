package opstat

import "fmt"

// An Observer receives the begin/end events of an instrumented operation.
//
// Begin signals that an operation started; End signals that it completed
// with the given outcome. End may carry additional numeric parameters
// describing the operation, such as latency or byte counts, which are
// passed through unmodified. No pairing between Begin and End is tracked
// or enforced anywhere in this package: observers must tolerate arbitrary
// interleavings of events from concurrent operations.
type Observer[T comparable] interface {
	Begin()
	End(result T, values ...int64)
}

// A Value is a live, read-only view over one or more accumulators. Load
// recomputes the result from the current accumulator state on every call;
// nothing is cached.
type Value interface {
	Load() int64
}

// An Operation is a per-outcome completion counter for a single
// instrumented operation type, like a cache lookup or a disk write.
//
// It is itself an Observer: call sites drive it through Begin and End, and
// every event is relayed to the currently registered derived observers.
// The End relay happens strictly after the outcome's own count has been
// incremented.
type Operation[T comparable] interface {
	Observer[T]
	fmt.Stringer

	// Name, Tags, Properties and Outcomes return the identity captured at
	// construction. Tags and Properties return fresh copies; mutating them
	// never affects the statistic.
	Name() string
	Tags() []string
	Properties() map[string]any
	Outcomes() []T

	// Count returns the current count for a single outcome. Sum returns
	// the combined count of the given subset of outcomes, deduplicated;
	// with no arguments it is the sum of the empty set, zero. Total sums
	// every outcome. Passing a value outside the statistic's outcome set
	// to Count or Sum is an error.
	Count(result T) (int64, error)
	Sum(results ...T) (int64, error)
	Total() int64

	// Statistic returns a live Value over the given subset of outcomes,
	// recomputed on every Load. The subset may be a single outcome, empty
	// (always zero), or the full set.
	Statistic(results ...T) (Value, error)

	// AddDerived registers an observer to receive subsequent events.
	// Registration has set semantics: adding an observer that is already
	// registered is a no-op, and each event is delivered to it exactly
	// once. RemoveDerived deregisters; both are safe to call concurrently
	// with event delivery. Derived returns the current membership in
	// registration order; callers must not modify the returned slice.
	AddDerived(observer Observer[T])
	RemoveDerived(observer Observer[T])
	Derived() []Observer[T]
}
