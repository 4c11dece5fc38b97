package family

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IMPORTANT:
// A Family is **intentionally NOT thread-safe**.
//
// It is designed with the assumption that each instance will be used
// only within a **single goroutine** — the single logical update turn
// of the host reactive scheduler.
//
// ➤ We deliberately avoided synchronization (mutexes, atomic ops, etc.)
//
//	to keep lookups lightweight and to make read-your-writes trivial:
//	a Remove followed by a Get always observes the miss and rebuilds.
//
// ➤ Sharing a Family across multiple goroutines will lead to
//
//	**undefined behavior**, including data races and corrupted entries.
//
// If you require shared access, explicitly manage synchronization
// outside this scope.
type Family[P, C any] struct {
	// FamilyId identifies this instance in logs.
	FamilyId string

	initialize   Initializer[P, C]
	store        *entryStore[P, C]
	shouldRemove EvictionPredicate[P]
	logger       *zap.Logger
	now          func() time.Time
}

// New creates a parameterized cell cache around the given initializer.
//
// Each parameter gets at most one cell, built lazily on the first Get
// and returned unchanged on every later Get with an equivalent
// parameter. Parameters are compared with structural equality unless
// WithEqualityOf supplies a different relation.
//
// The family owns only its entries, never the cells they point to:
// removing an entry drops the family's link and nothing else. Entries
// are reclaimed solely through Remove or an eviction predicate; a
// family that never removes grows without bound, and keeping it
// bounded is the caller's obligation.
func New[P, C any](initialize Initializer[P, C], opts ...FamilyOption[P]) *Family[P, C] {
	if initialize == nil {
		panic("family: nil initializer")
	}
	cfg := familyConfig[P]{
		equals: deepEquality[P](),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	f := &Family[P, C]{
		FamilyId:   uuid.New().String(),
		initialize: initialize,
		store:      newEntryStore[P, C](cfg.equals, cfg.keyFn),
		logger:     cfg.logger,
		now:        cfg.now,
	}
	f.logger.Debug("created family", zap.String("family_id", f.FamilyId))
	return f
}

// Get returns the cell for param, building it on first use.
//
// If an eviction predicate is active it is evaluated against every
// current entry before the lookup, so a stale entry can never satisfy
// the lookup that should have evicted it. On a hit the stored cell is
// returned as-is: no new timestamp, no second initializer call. On a
// miss the initializer runs; its error, if any, is returned unchanged
// and no entry is inserted, so a retry re-invokes the initializer.
func (f *Family[P, C]) Get(param P) (C, error) {
	if f.shouldRemove != nil {
		f.sweep("sweep on access")
	}
	if e, ok := f.store.lookup(param); ok {
		return e.cell, nil
	}
	cell, err := f.initialize(param)
	if err != nil {
		var zero C
		return zero, err
	}
	e := &entry[P, C]{
		param:     param,
		cell:      cell,
		createdAt: f.now(),
	}
	f.store.insert(e)
	f.logger.Debug("created cell",
		zap.String("family_id", f.FamilyId),
		zap.Any("param", param),
	)
	return cell, nil
}

// MustGet is the panic-on-failure variant of Get.
// Use when the initializer is known not to fail.
func (f *Family[P, C]) MustGet(param P) C {
	cell, err := f.Get(param)
	if err != nil {
		panic(err)
	}
	return cell
}

// Remove deletes the entry whose parameter equals param, if present.
// Absent parameters are a no-op. The removed cell itself is untouched;
// external holders of its reference keep it alive per their own rules.
func (f *Family[P, C]) Remove(param P) {
	if e, ok := f.store.remove(param); ok {
		f.logger.Debug("removed entry",
			zap.String("family_id", f.FamilyId),
			zap.Any("param", e.param),
		)
	}
}

// SetShouldRemove installs or clears the eviction predicate.
//
// Installing a predicate immediately sweeps all current entries, then
// keeps sweeping opportunistically on every Get. Passing nil clears
// the predicate without a sweep; entries evicted earlier stay evicted.
// At most one predicate is active at a time.
func (f *Family[P, C]) SetShouldRemove(shouldRemove EvictionPredicate[P]) {
	f.shouldRemove = shouldRemove
	if shouldRemove != nil {
		f.sweep("sweep on install")
	}
}

// Sweep evaluates the active predicate against every entry right now
// and returns how many entries it removed. Without an active predicate
// it removes nothing.
func (f *Family[P, C]) Sweep() int {
	if f.shouldRemove == nil {
		return 0
	}
	return f.sweep("explicit sweep")
}

// Len returns the number of live entries.
func (f *Family[P, C]) Len() int {
	return f.store.len()
}

// Parameters returns the stored parameters in insertion order.
func (f *Family[P, C]) Parameters() []P {
	return f.store.params()
}

func (f *Family[P, C]) sweep(reason string) int {
	removed := f.store.removeIf(func(e *entry[P, C]) bool {
		return f.shouldRemove(e.createdAt, e.param)
	})
	if len(removed) > 0 {
		f.logger.Debug("evicted entries",
			zap.String("family_id", f.FamilyId),
			zap.String("reason", reason),
			zap.Int("count", len(removed)),
		)
	}
	return len(removed)
}
