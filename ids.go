// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Three nominal types name the same bits of information from different
// angles. Mixing them up is a type error at compile time, not a bug caught
// at runtime; none of the conversions between them is the identity
// function, so a bare integer would make misuse silent.

// abstractID is the serial identifier consumed by the allocator: its low
// bits encode a cache-line-striped slot address, its high bits a
// generation counter that advances by capacity on every reuse of the slot.
//
// Fixed at 64 bits (rather than platform-width uint) so the free-list
// metadata array's word size does not change across platforms.
type abstractID uint64

// concreteID is the physical array offset of a slot, in [0, capacity).
type concreteID int

// Detached is the identifier exposed to callers. It is a bit-shuffled form
// of abstractID in which the slot address occupies the low bits, suitable
// for direct masking without unshuffling.
//
// Detached carries no reference to the table that produced it and does not
// keep any entry alive; it is a plain, freestanding word. Generation bits
// distinguish a Detached minted for one lifetime of a slot from one minted
// for an earlier or later reuse of the same physical slot, but lookups do
// not themselves compare generations (see Table.Exists/With/Read) — a
// caller that must tell these apart has to embed the Detached in the
// stored value and compare it manually.
//
// Its bit width equals the machine word width (Go's uint), mirroring
// original_source/src/index.rs's use of usize. Bits/DetachedFromBits fix
// the *serialized* form at 64 bits regardless of platform, the same way
// the original's into_bits/from_bits pair does.
type Detached uint

// Bits returns a 64-bit serialization of id, independent of the platform's
// native word width.
func (id Detached) Bits() uint64 { return uint64(id) }

// DetachedFromBits reconstructs a Detached from a value previously obtained
// from Bits. Arbitrary bit patterns are accepted; one that does not name a
// live entry simply fails to resolve on lookup, exactly like any other
// stale or absent identifier (see SPEC_FULL.md §7). On a 32-bit platform a
// value whose high bits are set is truncated, matching the narrowing a
// usize-sized from_bits would perform there.
func DetachedFromBits(bits uint64) Detached { return Detached(bits) }

// reserved is the sentinel metadata value meaning "this slot is currently
// being claimed or released; retry elsewhere." It is never a valid
// abstractID.
const reserved = abstractID(^uint64(0))

// concreteOf converts an abstract identifier to its physical slot address,
// striping consecutive abstract values across cache lines.
//
// Grounded on original_source/src/index.rs (abstract_to_concrete).
func (p layoutParams) concreteOf(id abstractID) concreteID {
	v := (uint64(id) & p.maskBlock) << p.shiftBlock
	v += (uint64(id) >> p.shiftIndex) & p.maskIndex
	return concreteID(v)
}

// detachedOf converts an abstract identifier to the public Detached form,
// moving the slot address into the low maskBits bits while leaving the
// generation bits untouched in their original high-order position.
//
// Grounded on original_source/src/index.rs (abstract_to_detached).
func (p layoutParams) detachedOf(id abstractID) Detached {
	v := uint64(id) &^ p.maskEntry
	v |= uint64(p.concreteOf(id))
	return Detached(v)
}

// abstractOf recovers the abstract identifier from a Detached value. It is
// the exact inverse of detachedOf.
//
// Grounded on original_source/src/index.rs (detached_to_abstract).
func (p layoutParams) abstractOf(id Detached) abstractID {
	v := uint64(id) &^ p.maskEntry
	v |= (uint64(id) >> p.shiftBlock) & p.maskBlock
	v |= (uint64(id) & p.maskIndex) << p.shiftIndex
	return abstractID(v)
}

// concreteOfDetached extracts the physical slot address directly from a
// Detached value, without reconstructing the full abstract identifier.
//
// Grounded on original_source/src/index.rs (detached_to_concrete).
func (p layoutParams) concreteOfDetached(id Detached) concreteID {
	return concreteID(uint64(id) & p.maskEntry)
}

// generateNextSlot computes the next generation's abstract identifier for
// the physical slot addressed by index, skipping the reserved sentinel.
//
// Grounded on original_source/src/table.rs (generate_next_slot).
func (p layoutParams) generateNextSlot(index abstractID) abstractID {
	data := index + abstractID(p.capacity)
	if data == reserved {
		data += abstractID(p.capacity)
	}
	return data
}
