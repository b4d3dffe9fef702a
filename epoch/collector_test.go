package epoch

import (
	"sync"
	"testing"

	"github.com/agilira/xanthos"
)

func TestCollectorInterface(t *testing.T) {
	var _ xanthos.Collector[int] = New[int]()
}

func TestCellStoreLoadRemove(t *testing.T) {
	c := New[string]()
	cell := c.NewCell()

	guard := c.Pin()
	defer guard.Done()

	if v := cell.Load(guard); v != nil {
		t.Fatalf("expected nil before StoreInitialized, got %v", *v)
	}

	cell.StoreInitialized(func(v *string) { *v = "hello" })

	if v := cell.Load(guard); v == nil || *v != "hello" {
		t.Fatalf("expected \"hello\", got %v", v)
	}

	old, ok := cell.SwapToNull()
	if !ok || old == nil || *old != "hello" {
		t.Fatalf("SwapToNull: expected (\"hello\", true), got (%v, %v)", old, ok)
	}

	if v := cell.Load(guard); v != nil {
		t.Fatalf("expected nil after SwapToNull, got %v", *v)
	}

	if _, ok := cell.SwapToNull(); ok {
		t.Fatal("second SwapToNull on an empty cell should report false")
	}
}

func TestStoreInitializedOnOccupiedCellPanics(t *testing.T) {
	c := New[int]()
	cell := c.NewCell()
	cell.StoreInitialized(func(v *int) { *v = 1 })

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic storing into an already-occupied cell")
		}
	}()
	cell.StoreInitialized(func(v *int) { *v = 2 })
}

func TestFlushReclaimsAfterGuardsRelease(t *testing.T) {
	c := New[int]()
	cell := c.NewCell()

	g1 := c.Pin()
	cell.StoreInitialized(func(v *int) { *v = 42 })
	cell.SwapToNull()

	c.mu.Lock()
	pendingBefore := len(c.pending)
	c.mu.Unlock()
	if pendingBefore == 0 {
		t.Fatal("expected the evicted value to be queued for retirement")
	}

	g1.Done()
	c.Flush()

	c.mu.Lock()
	pendingAfter := len(c.pending)
	c.mu.Unlock()
	if pendingAfter != 0 {
		t.Fatalf("expected retirement queue drained after Flush, got %d pending", pendingAfter)
	}
}

func TestPinDonePairsAreRaceFree(t *testing.T) {
	c := New[int]()
	cell := c.NewCell()
	cell.StoreInitialized(func(v *int) { *v = 1 })

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				guard := c.Pin()
				_ = cell.Load(guard)
				guard.Done()
			}
		}()
	}
	wg.Wait()
}

func TestPinSlotExhaustionFallsBack(t *testing.T) {
	c := New[int]()

	guards := make([]xanthos.Guard, 0, maxPinSlots+8)
	for i := 0; i < maxPinSlots+8; i++ {
		guards = append(guards, c.Pin())
	}
	for _, g := range guards {
		g.Done()
	}
}
