// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "sync/atomic"

// slotDirectory holds the two parallel arrays backing a Table: data[i]
// is the owning Cell for physical slot i, meta[i] is its free-list
// metadata word (either reserved or a live abstractID whose concrete part
// equals i).
//
// Grounded on original_source/src/array.rs (Array<T, P>) and
// original_source/src/table.rs (ReadOnly::new_data_array,
// ReadOnly::new_slot_array), adapted to plain Go slices: Go exposes no
// manual alloc/dealloc/Layout machinery to force the cache-line-aligned
// allocation the original performs, so the physical backing store is an
// ordinary slice. The logical cache-line striping that actually matters
// for avoiding false sharing lives entirely in the identifier permutation
// (ids.go), not in the allocation itself.
type slotDirectory[T any] struct {
	data []Cell[T]
	meta []atomic.Uint64
}

// newSlotDirectory allocates and seeds the directory for a table of the
// given layout, using collector to produce each data cell.
func newSlotDirectory[T any](p layoutParams, collector Collector[T]) *slotDirectory[T] {
	d := &slotDirectory[T]{
		data: make([]Cell[T], p.capacity),
		meta: make([]atomic.Uint64, p.capacity),
	}

	for i := range d.data {
		d.data[i] = collector.NewCell()
	}

	// Seed the free list so that the abstractID physically stored at
	// offset i is exactly the one whose concreteOf maps back to i. This
	// arranges that the first `capacity` allocations touch every physical
	// slot exactly once, in cache-line-striped order, with generation 0.
	//
	// Grounded on original_source/src/table.rs (ReadOnly::new_slot_array):
	// block := offset / cacheLineSlots; index := offset % cacheLineSlots;
	// value := index*blocks + block.
	for offset := range d.meta {
		block := offset / cacheLineSlots
		index := offset % cacheLineSlots
		value := index*p.blocks + block
		d.meta[offset].Store(uint64(value))
	}

	return d
}

// swapMeta atomically replaces meta[i] with val and returns the previous
// value.
func (d *slotDirectory[T]) swapMeta(i concreteID, val abstractID) abstractID {
	return abstractID(d.meta[i].Swap(uint64(val)))
}

// compareAndSwapMeta atomically replaces meta[i] with new only if it
// currently holds old.
func (d *slotDirectory[T]) compareAndSwapMeta(i concreteID, old, new abstractID) bool {
	return d.meta[i].CompareAndSwap(uint64(old), uint64(new))
}
