// reader_test.go: tests for guarded reads and the weak key iterator
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "testing"

func TestExistsReportsAbsentForNeverInsertedIdentifier(t *testing.T) {
	table := mustNewTable[int](t, 16)
	guard := table.Guard()
	defer guard.Done()

	if table.Exists(DetachedFromBits(0), guard) {
		t.Error("a never-populated slot should not exist")
	}
}

func TestWithDoesNotInvokeCallbackOnMiss(t *testing.T) {
	table := mustNewTable[int](t, 16)
	id, _ := table.Insert(1)
	table.Remove(id)

	guard := table.Guard()
	defer guard.Done()

	called := false
	found := table.With(id, guard, func(v *int) { called = true })
	if found {
		t.Error("With should report false for a removed identifier")
	}
	if called {
		t.Error("With must not invoke its callback when the identifier is absent")
	}
}

func TestReadReturnsZeroValueOnMiss(t *testing.T) {
	table := mustNewTable[string](t, 16)
	guard := table.Guard()
	defer guard.Done()

	v, found := table.Read(DetachedFromBits(0), guard)
	if found {
		t.Error("Read should report false for an absent identifier")
	}
	if v != "" {
		t.Errorf("Read should return the zero value on miss, got %q", v)
	}
}

func TestWeakKeysObservesAllLiveEntries(t *testing.T) {
	table := mustNewTable[int](t, 64)

	const n = 20
	ids := make(map[Detached]bool, n)
	for i := 0; i < n; i++ {
		id, ok := table.Insert(i)
		if !ok {
			t.Fatalf("insert %d should have succeeded", i)
		}
		ids[id] = true
	}

	guard := table.Guard()
	defer guard.Done()

	seen := make(map[Detached]bool)
	for id := range table.WeakKeys(guard) {
		seen[id] = true
	}

	if len(seen) != n {
		t.Fatalf("WeakKeys observed %d entries, want %d", len(seen), n)
	}
	for id := range ids {
		if !seen[id] {
			t.Errorf("WeakKeys missed live identifier %v", id)
		}
	}
}

func TestWeakKeysSkipsRemovedEntries(t *testing.T) {
	table := mustNewTable[int](t, 64)

	var removed Detached
	for i := 0; i < 10; i++ {
		id, _ := table.Insert(i)
		if i == 3 {
			removed = id
		}
	}
	table.Remove(removed)

	guard := table.Guard()
	defer guard.Done()

	for id := range table.WeakKeys(guard) {
		if id == removed {
			t.Error("WeakKeys yielded an identifier that was removed before the scan started")
		}
	}
}

func TestWeakKeysStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	table := mustNewTable[int](t, 64)
	for i := 0; i < 20; i++ {
		table.Insert(i)
	}

	guard := table.Guard()
	defer guard.Done()

	count := 0
	for range table.WeakKeys(guard) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("expected early break after 3 entries, got %d", count)
	}
}

func TestWeakKeysEmptyTableYieldsNothing(t *testing.T) {
	table := mustNewTable[int](t, 16)
	guard := table.Guard()
	defer guard.Done()

	for range table.WeakKeys(guard) {
		t.Error("an empty table should not yield any identifier")
	}
}
