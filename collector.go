// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "sync/atomic"

// Guard pins the calling goroutine against a moment in time: any value
// evicted from a Cell while a Guard that could have observed it is still
// alive must not be destroyed until that Guard (and every older Guard) has
// ended.
//
// Grounded on original_source/src/reclaim/traits.rs (CollectorWeak::Guard)
// and original_source/src/reclaim/sdd.rs (the sdd::Guard wrapper).
type Guard interface {
	// Done releases the pin. Callers must call Done exactly once, as soon
	// as they are finished reading through values obtained under the
	// guard.
	Done()
}

// Cell is the atomic, possibly-null owning pointer backing one slot of a
// Table. Every method is safe to call concurrently from any goroutine.
//
// Grounded on original_source/src/reclaim/traits.rs (the Atomic<T> trait):
// Load corresponds to Atomic::read, StoreInitialized to Atomic::write,
// SwapToNull to Atomic::evict, DestroyInPlace to Atomic::clear. Explicit
// memory-ordering parameters are dropped: Go's sync/atomic has no
// Acquire/Release/Relaxed distinction, and its sequential consistency
// satisfies every ordering the original protocol requires (see
// SPEC_FULL.md §5).
type Cell[T any] interface {
	// Load returns a pointer valid for the lifetime of guard, or nil if
	// the slot is currently empty.
	Load(guard Guard) *T

	// StoreInitialized allocates a new T, calls init to fill it in, and
	// publishes it. The slot must currently be empty; violating this is a
	// programmer bug (the shipped Cell implementations panic via an
	// invariant check).
	StoreInitialized(init func(*T))

	// SwapToNull empties the slot and hands any previous value to the
	// collector for deferred destruction. ok is false if the slot was
	// already empty.
	SwapToNull() (evicted *T, ok bool)

	// DestroyInPlace empties the slot immediately, without going through
	// deferred reclamation. Only safe to call when no Guard can possibly
	// be observing the slot, i.e. during Table.Close.
	DestroyInPlace()
}

// Collector is the pluggable memory-reclamation capability a Table is
// parameterized on. It owns the policy for when a value evicted from a
// Cell is actually freed.
//
// Grounded on original_source/src/reclaim/traits.rs (CollectorWeak,
// Collector). The core treats Collector as a runtime-swappable interface
// value on Config, mirroring how the teacher treats Logger/TimeProvider/
// MetricsCollector (see SPEC_FULL.md §9) rather than as a compile-time
// type parameter.
type Collector[T any] interface {
	// Pin returns a Guard that defers reclamation of any value evicted
	// while it is held.
	Pin() Guard

	// NewCell returns a fresh, empty Cell.
	NewCell() Cell[T]

	// Flush gives the collector an opportunity to reclaim anything it can
	// safely reclaim right now. It never blocks waiting for an
	// outstanding Guard to end.
	Flush()
}

// gcGuard is the Guard returned by the GC-backed collector. Holding it has
// no effect beyond keeping the calling goroutine's local references alive,
// which Go's runtime already guarantees for as long as those references
// are reachable.
type gcGuard struct{}

func (gcGuard) Done() {}

// gcCell is a Cell backed directly by an atomic pointer with no deferred
// reclamation bookkeeping: Go's tracing garbage collector will not free the
// pointee while any goroutine still holds a reference to it, guard or not.
//
// Grounded on original_source/src/reclaim/leak.rs, which intentionally
// leaks evicted values because the original has no tracing GC to fall back
// on. In Go this is not a leak: SwapToNull simply drops the table's own
// reference, and the runtime reclaims the value once every other reference
// (including ones held by callers under a Guard) goes out of scope.
type gcCell[T any] struct {
	ptr atomic.Pointer[T]
}

func (c *gcCell[T]) Load(Guard) *T {
	return c.ptr.Load()
}

func (c *gcCell[T]) StoreInitialized(init func(*T)) {
	v := new(T)
	init(v)
	old := c.ptr.Swap(v)
	invariant(old == nil, ErrCodeInvariantViolation,
		"StoreInitialized called on a non-empty cell", "operation", "gcCell.StoreInitialized")
}

func (c *gcCell[T]) SwapToNull() (*T, bool) {
	old := c.ptr.Swap(nil)
	return old, old != nil
}

func (c *gcCell[T]) DestroyInPlace() {
	c.ptr.Store(nil)
}

// gcCollector is the package default Collector: it defers nothing and
// relies entirely on Go's garbage collector for reclamation timing. It is
// the zero-overhead choice for element types that hold no non-GC resources
// (file descriptors, off-heap memory, external licenses) needing prompt,
// deterministic finalization; see the epoch package for that case.
type gcCollector[T any] struct{}

func newGCCollector[T any]() Collector[T] { return gcCollector[T]{} }

func (gcCollector[T]) Pin() Guard       { return gcGuard{} }
func (gcCollector[T]) NewCell() Cell[T] { return &gcCell[T]{} }
func (gcCollector[T]) Flush()           {}
