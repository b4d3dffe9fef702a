// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "math/bits"

// cacheLine is the assumed cache-line size in bytes. The original backs this
// with a per-architecture #[repr(align(N))] wrapper; Go exposes no portable
// equivalent, so a single constant is used for every platform (see
// DESIGN.md).
const cacheLine = 64

// pointerWidth is the width in bytes of a machine word on the platforms this
// module targets.
const pointerWidth = 8

// cacheLineSlots is the number of slots that fit on one cache line.
const cacheLineSlots = cacheLine / pointerWidth

// layoutParams holds the derived constants for a single table's fixed
// capacity. All fields are computed once at construction time from a
// validated power-of-two capacity and never change afterward.
type layoutParams struct {
	capacity int // N
	blocks   int // B = N / cacheLineSlots

	maskBits  uint   // log2(N)
	maskEntry uint64 // (1 << maskBits) - 1
	maskBlock uint64 // blocks - 1
	maskIndex uint64 // cacheLineSlots - 1

	shiftBlock uint64 // log2(cacheLineSlots)
	shiftIndex uint64 // log2(blocks)
}

// validateCapacity rounds requested up to the next power of two and clamps
// it to [MinCapacity, MaxCapacity]. A non-positive request is rounded up to
// MinCapacity.
//
// Grounded on original_source/src/params.rs (Capacity::new): the original
// exposes this as compile-time-validated construction of a Capacity newtype;
// Go has no const generics, so the same normalization happens here, once,
// at Table construction.
func validateCapacity(requested int) int {
	if requested < MinCapacity {
		return MinCapacity
	}
	if requested > MaxCapacity {
		return MaxCapacity
	}
	return nextPowerOfTwo(requested)
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// newLayoutParams derives the block count and all identifier-algebra masks
// and shifts for a validated power-of-two capacity.
//
// Grounded on original_source/src/params.rs (derive_blocks) and
// original_source/src/index.rs (the mask/shift constants consumed by the
// conversion functions in ids.go).
func newLayoutParams(capacity int) layoutParams {
	invariant(capacity&(capacity-1) == 0, ErrCodeInvariantViolation,
		"capacity must be a power of two", "operation", "newLayoutParams", "capacity", capacity)

	blocks := capacity / cacheLineSlots
	if blocks < 1 {
		blocks = 1
	}

	maskBits := uint(bits.Len(uint(capacity - 1)))
	maskEntry := uint64(1)<<maskBits - 1
	maskBlock := uint64(blocks - 1)
	maskIndex := uint64(cacheLineSlots - 1)

	return layoutParams{
		capacity:   capacity,
		blocks:     blocks,
		maskBits:   maskBits,
		maskEntry:  maskEntry,
		maskBlock:  maskBlock,
		maskIndex:  maskIndex,
		shiftBlock: trailingOnes(maskIndex),
		shiftIndex: trailingOnes(maskBlock),
	}
}

// trailingOnes returns the number of consecutive set bits starting at bit 0,
// matching Rust's u32::trailing_ones/usize::trailing_ones used on the
// all-ones masks ID_MASK_INDEX/ID_MASK_BLOCK in the original.
func trailingOnes(mask uint64) uint64 {
	return uint64(bits.TrailingZeros64(^mask))
}
