// table.go: the lock-free generational slot table.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Table is a lock-free, fixed-capacity concurrent store addressed by
// opaque generational identifiers. See the package doc comment and
// SPEC_FULL.md for the full concurrency and identifier model.
//
// Grounded on original_source/src/table.rs (struct Table / struct
// ReadOnly / struct Volatile) and original_source/src/public.rs (PTab),
// collapsed into a single exported type since Go has no analogue of the
// original's internal-Table/public-PTab split driven by explicit-vs-
// implicit guard management — that distinction is instead expressed here
// as Guard-taking methods (Exists/With/Read/WeakKeys) versus
// guard-hiding convenience is intentionally NOT offered: every reader
// method takes an explicit Guard, obtained from Table.Guard, so callers
// control exactly how long reclamation is deferred.
type Table[T any] struct {
	params    layoutParams
	counters  *volatileCounters
	slots     *slotDirectory[T]
	collector Collector[T]

	logger  Logger
	metrics MetricsCollector
	clock   TimeProvider
}

// New constructs an empty Table with the capacity and capabilities
// described by cfg. cfg is validated (and its zero-value fields defaulted)
// before use; the caller's copy of cfg is left untouched.
//
// Grounded on original_source/src/table.rs (Table::new) and the teacher's
// own cache.go constructor idiom (validate-then-build).
func New[T any](cfg Config[T]) (*Table[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	params := newLayoutParams(cfg.Capacity)

	t := &Table[T]{
		params:    params,
		counters:  newVolatileCounters(params.capacity),
		slots:     newSlotDirectory[T](params, cfg.Collector),
		collector: cfg.Collector,
		logger:    cfg.Logger,
		metrics:   cfg.MetricsCollector,
		clock:     cfg.TimeProvider,
	}

	return t, nil
}

// Guard pins the calling goroutine's view of the table, deferring
// reclamation of any value evicted while the guard is held. Callers must
// call Done on the returned Guard when finished.
func (t *Table[T]) Guard() Guard {
	return t.collector.Pin()
}

// Capacity returns the number of usable slots. Equal to the validated
// Config.Capacity, except at MaxCapacity where one slot is permanently
// withheld (see SPEC_FULL.md §4.3).
//
// Grounded on original_source/src/table.rs (Table::cap).
func (t *Table[T]) Capacity() int {
	if t.params.capacity == MaxCapacity {
		return t.params.capacity - 1
	}
	return t.params.capacity
}

// Len returns the current occupancy, clamped to Capacity. Clamping
// absorbs the transient over-shoot that can occur while concurrent
// reservations race past the limit before their rollback completes.
//
// Grounded on original_source/src/table.rs (Table::len).
func (t *Table[T]) Len() int {
	n := int(t.counters.entries.v.Load())
	if t.params.capacity == MaxCapacity {
		n--
	}
	if n < 0 {
		return 0
	}
	if cap := t.Capacity(); n > cap {
		return cap
	}
	return n
}

// IsEmpty reports whether the table currently holds no entries.
func (t *Table[T]) IsEmpty() bool {
	return t.Len() == 0
}

// reserveSlot attempts to claim one unit of capacity. It returns false,
// leaving entries unchanged, if the table was already full.
//
// Grounded on original_source/src/table.rs (Table::reserve_slot).
func (t *Table[T]) reserveSlot() bool {
	prev := t.counters.entries.v.Add(1) - 1
	if prev < uint32(t.params.capacity) {
		return true
	}

	for {
		cur := t.counters.entries.v.Load()
		if t.counters.entries.v.CompareAndSwap(cur, cur-1) {
			return false
		}
	}
}

// acquireSlot claims the next free abstract identifier from the free
// list, retrying past any slot another allocator is mid-claim on.
//
// Grounded on original_source/src/table.rs (Table::acquire_slot).
func (t *Table[T]) acquireSlot() abstractID {
	for {
		cursor := abstractID(t.counters.nextID.v.Add(1) - 1)
		concrete := t.params.concreteOf(cursor)
		result := t.slots.swapMeta(concrete, reserved)
		if result == reserved {
			continue
		}
		return result
	}
}

// releaseSlot returns index's slot to the free list under its next
// generation, then reflects the deallocation in the entries counter.
//
// Grounded on original_source/src/table.rs (Table::release_slot).
func (t *Table[T]) releaseSlot(index abstractID) {
	data := t.params.generateNextSlot(index)

	for {
		cursor := abstractID(t.counters.freeID.v.Add(1) - 1)
		concrete := t.params.concreteOf(cursor)
		if t.slots.compareAndSwapMeta(concrete, reserved, data) {
			break
		}
	}

	t.counters.entries.v.Add(^uint32(0)) // fetch_sub(1)
}

// Write reserves a slot, invokes init with a pointer to the (initially
// zero-valued) new element and the Detached identifier it will be known
// by, then publishes the element. ok is false, and init is never called,
// if the table is at capacity.
//
// init must fully initialize the element and must not call back into this
// Table on the same goroutine; doing so can deadlock the allocation
// protocol (see SPEC_FULL.md §5). A panic inside init leaves the claimed
// identifier permanently unusable — this is documented behavior, not a
// recoverable error (see SPEC_FULL.md §5 Unwind safety).
//
// Grounded on original_source/src/table.rs (Table::write).
func (t *Table[T]) Write(init func(slot *T, id Detached)) (Detached, bool) {
	start := t.clock.Now()

	if !t.reserveSlot() {
		t.metrics.RecordCapacityExhausted()
		t.metrics.RecordInsert(t.clock.Now()-start, false)
		return 0, false
	}

	abs := t.acquireSlot()
	concrete := t.params.concreteOf(abs)
	detached := t.params.detachedOf(abs)

	t.slots.data[concrete].StoreInitialized(func(v *T) {
		init(v, detached)
	})

	t.metrics.RecordInsert(t.clock.Now()-start, true)
	return detached, true
}

// Insert is sugar over Write for callers that already have a fully formed
// value to store.
//
// Grounded on original_source/src/public.rs (PTab::insert).
func (t *Table[T]) Insert(value T) (Detached, bool) {
	return t.Write(func(slot *T, _ Detached) {
		*slot = value
	})
}

// Remove evicts the entry named by id, if any, and returns its slot to
// the free list under a new generation. It returns false, leaving the
// table unchanged, if id does not currently name a live entry.
//
// Grounded on original_source/src/table.rs (Table::remove).
func (t *Table[T]) Remove(id Detached) bool {
	start := t.clock.Now()
	concrete := t.params.concreteOfDetached(id)

	_, evicted := t.slots.data[concrete].SwapToNull()
	if !evicted {
		t.metrics.RecordRemove(t.clock.Now()-start, false)
		return false
	}

	t.releaseSlot(t.params.abstractOf(id))
	t.metrics.RecordRemove(t.clock.Now()-start, true)
	return true
}

// Close visits every slot, destroys each live entry in place, and then
// calls the collector's Flush. It does not release the backing slices;
// those are reclaimed by the garbage collector once the Table itself is
// unreachable. Go has no deterministic
// destructor, so calling Close is optional for element types that hold
// only garbage-collected memory; it matters only for element types whose
// destruction has externally visible side effects (closing a file,
// releasing an external resource).
//
// Grounded on original_source/src/table.rs (Table::drop).
func (t *Table[T]) Close() error {
	for i := range t.slots.data {
		t.slots.data[i].DestroyInPlace()
	}
	t.collector.Flush()
	return nil
}
