// Package family provides a parameterized cell cache for reactive
// state systems.
//
// A Family maps an arbitrary parameter to a lazily-constructed cell:
// the first Get for a parameter runs the initializer and memoizes the
// result, every later Get with an equivalent parameter returns the
// identical cell. Which parameters count as equivalent is decided by
// an injected equality relation, so deep or custom equality works
// without requiring parameters to be comparable or hashable.
//
// # Why a family?
//
// Reactive values created per input — one cell per user id, one per
// query, one per route — need a home that guarantees referential
// stability: handing out a fresh cell for the same input would detach
// every existing consumer. A Family is that home, and nothing more:
// it constructs and stores cells, while subscription, dependency
// tracking, and update propagation remain the host system's business.
//
// # Bounding growth
//
// Entries live until released. Release is explicit: either Remove for
// a single parameter, or SetShouldRemove to install an eviction
// predicate, which sweeps immediately on install and again on every
// Get. A family with neither grows without bound; keeping it bounded
// is a caller obligation, by design — deterministic manual release
// over implicit collection.
//
// Example:
//
//	profiles := family.New(func(id string) (*cell.Writable[Profile], error) {
//	    return cell.WritableOf(loadProfile(id)), nil
//	}, family.WithEqualityOf(family.ComparableEqualityOf[string]()))
//
//	p, err := profiles.Get("user-42")   // builds the cell
//	q, err := profiles.Get("user-42")   // same cell, no rebuild
//
//	profiles.SetShouldRemove(family.OlderThanOf[string](time.Hour))
package family
