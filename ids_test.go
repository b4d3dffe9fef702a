// ids_test.go: algebraic tests for abstractID/concreteID/Detached conversions
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "testing"

func TestDetachedAbstractRoundTrip(t *testing.T) {
	p := newLayoutParams(1024)

	for i := 0; i < p.capacity*3; i++ {
		original := abstractID(i)
		detached := p.detachedOf(original)
		recovered := p.abstractOf(detached)
		if recovered != original {
			t.Fatalf("round trip broke at i=%d: detached=%#x recovered=%#x want=%#x", i, uint64(detached), uint64(recovered), uint64(original))
		}
	}
}

func TestConcreteOfMatchesConcreteOfDetached(t *testing.T) {
	p := newLayoutParams(1024)

	for i := 0; i < p.capacity*3; i++ {
		id := abstractID(i)
		viaAbstract := p.concreteOf(id)
		viaDetached := p.concreteOfDetached(p.detachedOf(id))
		if viaAbstract != viaDetached {
			t.Fatalf("i=%d: concreteOf=%d concreteOfDetached=%d", i, viaAbstract, viaDetached)
		}
	}
}

func TestConcreteOfStaysInBounds(t *testing.T) {
	p := newLayoutParams(256)
	for i := 0; i < p.capacity*4; i++ {
		c := p.concreteOf(abstractID(i))
		if c < 0 || int(c) >= p.capacity {
			t.Fatalf("concreteOf(%d) = %d, out of [0, %d)", i, c, p.capacity)
		}
	}
}

func TestConcreteOfStripesConsecutiveIdsAcrossCacheLines(t *testing.T) {
	p := newLayoutParams(1024)

	seen := make(map[int]bool)
	for i := 0; i < cacheLineSlots; i++ {
		c := p.concreteOf(abstractID(i))
		line := int(c) / cacheLineSlots
		if seen[line] {
			t.Fatalf("consecutive abstract id %d (concrete slot %d) shares cache line %d with an earlier id", i, c, line)
		}
		seen[line] = true
	}
}

func TestGenerateNextSlotAdvancesByCapacity(t *testing.T) {
	p := newLayoutParams(256)

	for i := 0; i < p.capacity; i++ {
		index := abstractID(i)
		next := p.generateNextSlot(index)
		if next == reserved {
			t.Fatalf("generateNextSlot(%d) produced the reserved sentinel", i)
		}
		if next != index+abstractID(p.capacity) {
			t.Fatalf("generateNextSlot(%d) = %d, want %d", i, next, index+abstractID(p.capacity))
		}
		// next must still map to the same physical slot.
		if p.concreteOf(next) != p.concreteOf(index) {
			t.Fatalf("generateNextSlot(%d) changed physical slot: %d -> %d", i, p.concreteOf(index), p.concreteOf(next))
		}
	}
}

func TestGenerateNextSlotSkipsReservedSentinel(t *testing.T) {
	p := newLayoutParams(256)

	// Construct an index whose +capacity step lands exactly on reserved.
	index := abstractID(uint64(reserved) - uint64(p.capacity))
	next := p.generateNextSlot(index)
	if next == reserved {
		t.Fatal("generateNextSlot must never return the reserved sentinel")
	}
}

func TestDetachedBitsRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 42, 1 << 20, ^uint64(0)} {
		d := DetachedFromBits(v)
		if d.Bits() != v {
			t.Errorf("Bits() round trip failed: got %#x, want %#x", d.Bits(), v)
		}
	}
}

func TestConcreteOfDetachedIgnoresGenerationBits(t *testing.T) {
	p := newLayoutParams(1024)

	base := abstractID(5)
	generation1 := p.detachedOf(base)
	generation2 := p.detachedOf(p.generateNextSlot(base))

	if p.concreteOfDetached(generation1) != p.concreteOfDetached(generation2) {
		t.Error("two generations of the same slot should concrete-resolve to the same physical offset")
	}
}
