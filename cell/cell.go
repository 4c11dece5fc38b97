// Package cell provides minimal reactive value containers.
//
// A cell wraps a single value behind the Cell interface. Cells are the
// unit a Family constructs and memoizes per parameter; what a cell does
// beyond holding its value (subscription, dependency tracking, update
// propagation) belongs to the host reactive system, not to this package.
//
// Three concrete variants are provided:
//   - Of: a readonly cell fixed at construction.
//   - WritableOf: a mutable cell with Set.
//   - DerivedOf: a cell whose value is computed on every read.
package cell

// Cell is the minimal surface a reactive value container exposes.
type Cell[T any] interface {
	Value() T
}

// Readonly holds a value fixed at construction.
type Readonly[T any] struct {
	v T
}

func Of[T any](v T) Readonly[T] {
	return Readonly[T]{v: v}
}

func (r Readonly[T]) Value() T { return r.v }

// Writable holds a value that can be replaced after construction.
// The zero value is usable and holds the zero value of T.
type Writable[T any] struct {
	v T
}

func WritableOf[T any](v T) *Writable[T] {
	return &Writable[T]{v: v}
}

func (w *Writable[T]) Value() T { return w.v }

func (w *Writable[T]) Set(v T) { w.v = v }

// Derived computes its value on every read.
type Derived[T any] struct {
	compute func() T
}

func DerivedOf[T any](compute func() T) Derived[T] {
	if compute == nil {
		panic("cell: nil compute function")
	}
	return Derived[T]{compute: compute}
}

func (d Derived[T]) Value() T { return d.compute() }
