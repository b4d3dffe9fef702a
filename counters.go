// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "sync/atomic"

// entryPadding and cursorPadding round their respective counters up to a
// full cache line, accounting for the bytes already taken by the counter
// itself. Go has no portable #[repr(align(N))]; this is the fixed-size
// trailing-byte-array substitute described in DESIGN.md.
type entryPadding [cacheLine - 4]byte
type cursorPadding [cacheLine - 8]byte

// paddedEntryCounter is the 32-bit occupancy counter, on its own cache
// line. 32 bits comfortably covers MaxCapacity (2^27).
//
// Grounded on original_source/src/padded.rs (CachePadded), applied the way
// original_source/src/table.rs applies it to Volatile's entries field.
type paddedEntryCounter struct {
	v atomic.Uint32
	_ entryPadding
}

// paddedCursor is a 64-bit monotonic cursor, on its own cache
// line. next_id and free_id are allowed to wrap; only their residues
// modulo capacity are ever used for indexing.
//
// Grounded on original_source/src/padded.rs (CachePadded), applied the way
// original_source/src/table.rs applies it to Volatile's next_id/free_id
// fields.
type paddedCursor struct {
	v atomic.Uint64
	_ cursorPadding
}

// volatileCounters is the mutable heart of a Table: the current occupancy,
// the next-allocation cursor, and the next-free cursor. Each lives on its
// own cache line so contention on one never evicts a neighbor's.
//
// Grounded on original_source/src/table.rs (struct Volatile).
type volatileCounters struct {
	entries paddedEntryCounter
	nextID  paddedCursor
	freeID  paddedCursor
}

// newVolatileCounters initializes the counters for a table of the given
// capacity. entries starts at 1 instead of 0 only for the maximum capacity
// (2^27), which permanently withholds one identifier so the allocator can
// still produce capacity-many distinct non-reserved abstract identifiers.
//
// Grounded on original_source/src/table.rs (Volatile::new).
func newVolatileCounters(capacity int) *volatileCounters {
	c := &volatileCounters{}
	if capacity == MaxCapacity {
		c.entries.v.Store(1)
	}
	return c
}
