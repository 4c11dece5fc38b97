package family

import (
	"reflect"
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// deepEquality is the default parameter equality: structural comparison
// that works for arbitrary parameter types, hashable or not.
func deepEquality[P any]() Equality[P] {
	return func(a, b P) bool {
		return reflect.DeepEqual(a, b)
	}
}

// ComparableEqualityOf returns the == relation for comparable
// parameter types. Prefer it over the structural default when the
// parameter type allows: it is cheaper and matches identity semantics.
func ComparableEqualityOf[P comparable]() Equality[P] {
	return func(a, b P) bool {
		return a == b
	}
}

// TimeSpan re-exports the interval type used by window predicates.
type TimeSpan = timespan.TimeSpan

func TimeSpanOf(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// OlderThanOf evicts entries whose age exceeds ttl. An optional clock
// may be supplied for deterministic tests; zero or one clocks allowed.
func OlderThanOf[P any](ttl time.Duration, clock ...func() time.Time) EvictionPredicate[P] {
	now := normalizeClock(clock)
	return func(createdAt time.Time, _ P) bool {
		return now().Sub(createdAt) > ttl
	}
}

// CreatedBeforeOf evicts entries created strictly before cutoff.
func CreatedBeforeOf[P any](cutoff time.Time) EvictionPredicate[P] {
	return func(createdAt time.Time, _ P) bool {
		return createdAt.Before(cutoff)
	}
}

// CreatedOutsideOf evicts entries whose creation time falls outside
// the given half-open span [start, end).
func CreatedOutsideOf[P any](span TimeSpan) EvictionPredicate[P] {
	return func(createdAt time.Time, _ P) bool {
		return createdAt.Before(span.Start()) || !createdAt.Before(span.End())
	}
}

func normalizeClock(clock []func() time.Time) func() time.Time {
	switch len(clock) {
	case 0:
		return time.Now
	case 1:
		return clock[0]
	default:
		panic("normalizeClock: only one or zero clocks allowed")
	}
}
