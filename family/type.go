package family

import (
	"time"

	"go.uber.org/zap"
)

// Initializer constructs the cell for a parameter on first lookup.
// It must be a pure function of its parameter: no side effects beyond
// building the returned cell, and it must complete synchronously.
// It is free to return any concrete cell variant.
type Initializer[P, C any] func(param P) (C, error)

// Equality decides whether two parameters address the same entry.
// It must be total and must not panic; the family performs no
// defensive guarding around it.
type Equality[P any] func(a, b P) bool

// EvictionPredicate marks entries for removal. It receives the stored
// parameter and the entry's creation time, never the lookup argument,
// so a lookup with an equivalent-but-different parameter cannot leak
// into eviction decisions.
type EvictionPredicate[P any] func(createdAt time.Time, param P) bool

// entry binds a parameter to its cell. Both cell and createdAt are
// immutable after insertion; an entry is only ever removed whole.
type entry[P, C any] struct {
	param     P
	cell      C
	createdAt time.Time
}

// FamilyOption configures a Family at construction time.
type FamilyOption[P any] func(*familyConfig[P])

type familyConfig[P any] struct {
	equals Equality[P]
	keyFn  func(P) string
	logger *zap.Logger
	now    func() time.Time
}

// WithEqualityOf replaces the default structural equality.
func WithEqualityOf[P any](equals Equality[P]) FamilyOption[P] {
	return func(cfg *familyConfig[P]) {
		cfg.equals = equals
	}
}

// WithPartitionKeyFnOf enables a hashed fast path for lookups.
// Parameters that are equal under the family's equality MUST map to the
// same key string; entries whose keys collide are still disambiguated
// by the equality function.
func WithPartitionKeyFnOf[P any](keyFn func(P) string) FamilyOption[P] {
	return func(cfg *familyConfig[P]) {
		cfg.keyFn = keyFn
	}
}

// WithLoggerOf attaches a zap logger for lifecycle events.
// Without it the family logs nothing.
func WithLoggerOf[P any](logger *zap.Logger) FamilyOption[P] {
	return func(cfg *familyConfig[P]) {
		cfg.logger = logger
	}
}

// WithClockOf replaces the creation timestamp source.
func WithClockOf[P any](now func() time.Time) FamilyOption[P] {
	return func(cfg *familyConfig[P]) {
		cfg.now = now
	}
}
