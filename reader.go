// reader.go: guarded reads and the weak key iterator.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "iter"

// Exists reports whether id currently names a live entry. guard must come
// from Table.Guard and remain held (not yet Done) for the duration of the
// call.
//
// Grounded on original_source/src/public.rs (PTab::exists).
func (t *Table[T]) Exists(id Detached, guard Guard) bool {
	start := t.clock.Now()
	concrete := t.params.concreteOfDetached(id)
	found := t.slots.data[concrete].Load(guard) != nil
	t.metrics.RecordRead(t.clock.Now()-start, found)
	return found
}

// With invokes f with a pointer to the entry named by id, valid for the
// duration of f, and reports whether the entry existed. f is not called
// if id does not name a live entry. guard must come from Table.Guard and
// remain held for the duration of the call.
//
// Grounded on original_source/src/public.rs (PTab::with).
func (t *Table[T]) With(id Detached, guard Guard, f func(v *T)) bool {
	start := t.clock.Now()
	concrete := t.params.concreteOfDetached(id)

	v := t.slots.data[concrete].Load(guard)
	found := v != nil
	if found {
		f(v)
	}

	t.metrics.RecordRead(t.clock.Now()-start, found)
	return found
}

// Read returns a copy of the entry named by id, and whether it existed.
// guard must come from Table.Guard and remain held for the duration of
// the call.
//
// Grounded on original_source/src/public.rs (PTab::read).
func (t *Table[T]) Read(id Detached, guard Guard) (T, bool) {
	var out T
	found := t.With(id, guard, func(v *T) {
		out = *v
	})
	return out, found
}

// WeakKeys returns every Detached identifier this call observes to be
// live, in concrete-index order. guard must come from Table.Guard and is
// held for the entire scan.
//
// This is NOT a snapshot: entries inserted or removed during the scan may
// or may not be observed, and the generation component of each yielded
// Detached is reconstructed from the concrete index alone (assumed zero),
// so it may not match the slot's true current generation if the slot has
// since been reused. Use this for approximate enumeration — metrics
// sampling, best-effort cleanup — never for identity-preserving
// traversal. See SPEC_FULL.md §4.5 and §9 Open Questions.
//
// Grounded on original_source/src/table.rs (WeakKeys::next).
func (t *Table[T]) WeakKeys(guard Guard) iter.Seq[Detached] {
	return func(yield func(Detached) bool) {
		observed := 0
		for index := 0; index < t.params.capacity; index++ {
			concrete := concreteID(index)

			if t.slots.data[concrete].Load(guard) == nil {
				continue
			}

			observed++
			// With zero generation bits, a Detached is just its concrete index.
			if !yield(Detached(concrete)) {
				break
			}
		}
		t.metrics.RecordWeakKeysScan(observed)
	}
}
