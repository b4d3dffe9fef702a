// Package benchmarks compares xanthos's Table against ristretto and otter,
// used here purely as raw concurrent-container baselines rather than as
// key-value caches: none of the three libraries' eviction policies are
// exercised, since Table has no eviction concept to compare against.
package benchmarks

import (
	"testing"

	"github.com/agilira/xanthos"
	ristretto "github.com/dgraph-io/ristretto/v2"
	"github.com/maypok86/otter/v2"
)

const (
	smallCapacity  = 1 << 10
	mediumCapacity = 1 << 14
	largeCapacity  = 1 << 17
)

// =============================================================================
// XANTHOS INSERT/READ/REMOVE
// =============================================================================

func newXanthosTable(b *testing.B, capacity int) *xanthos.Table[int] {
	b.Helper()
	table, err := xanthos.New[int](xanthos.Config[int]{Capacity: capacity})
	if err != nil {
		b.Fatalf("xanthos.New() error = %v", err)
	}
	return table
}

func BenchmarkXanthos_Insert_SingleThread(b *testing.B) {
	table := newXanthosTable(b, mediumCapacity)
	defer table.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if id, ok := table.Insert(i); ok {
			table.Remove(id)
		}
	}
}

func BenchmarkXanthos_Insert_Parallel(b *testing.B) {
	table := newXanthosTable(b, mediumCapacity)
	defer table.Close()

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if id, ok := table.Insert(i); ok {
				table.Remove(id)
			}
			i++
		}
	})
}

func BenchmarkXanthos_Read_SingleThread(b *testing.B) {
	table := newXanthosTable(b, mediumCapacity)
	defer table.Close()

	ids := make([]xanthos.Detached, 0, table.Capacity())
	for i := 0; i < table.Capacity(); i++ {
		id, _ := table.Insert(i)
		ids = append(ids, id)
	}

	guard := table.Guard()
	defer guard.Done()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		table.Read(ids[i%len(ids)], guard)
	}
}

func BenchmarkXanthos_Read_Parallel(b *testing.B) {
	table := newXanthosTable(b, mediumCapacity)
	defer table.Close()

	ids := make([]xanthos.Detached, 0, table.Capacity())
	for i := 0; i < table.Capacity(); i++ {
		id, _ := table.Insert(i)
		ids = append(ids, id)
	}

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		guard := table.Guard()
		defer guard.Done()
		i := 0
		for pb.Next() {
			table.Read(ids[i%len(ids)], guard)
			i++
		}
	})
}

// =============================================================================
// RISTRETTO / OTTER RAW BASELINES
// =============================================================================

func newRistretto(b *testing.B, capacity int) *ristretto.Cache[int, int] {
	b.Helper()
	cache, err := ristretto.NewCache(&ristretto.Config[int, int]{
		NumCounters: int64(capacity * 10),
		MaxCost:     int64(capacity),
		BufferItems: 64,
	})
	if err != nil {
		b.Fatalf("ristretto.NewCache() error = %v", err)
	}
	return cache
}

func BenchmarkRistretto_Insert_SingleThread(b *testing.B) {
	cache := newRistretto(b, mediumCapacity)
	defer cache.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cache.Set(i%mediumCapacity, i, 1)
	}
}

func BenchmarkRistretto_Insert_Parallel(b *testing.B) {
	cache := newRistretto(b, mediumCapacity)
	defer cache.Close()

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			cache.Set(i%mediumCapacity, i, 1)
			i++
		}
	})
}

func BenchmarkRistretto_Read_SingleThread(b *testing.B) {
	cache := newRistretto(b, mediumCapacity)
	defer cache.Close()
	for i := 0; i < mediumCapacity; i++ {
		cache.Set(i, i, 1)
	}
	cache.Wait()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cache.Get(i % mediumCapacity)
	}
}

func BenchmarkRistretto_Read_Parallel(b *testing.B) {
	cache := newRistretto(b, mediumCapacity)
	defer cache.Close()
	for i := 0; i < mediumCapacity; i++ {
		cache.Set(i, i, 1)
	}
	cache.Wait()

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			cache.Get(i % mediumCapacity)
			i++
		}
	})
}

func newOtter(capacity int) *otter.Cache[int, int] {
	return otter.Must(&otter.Options[int, int]{
		MaximumSize: capacity,
	})
}

func BenchmarkOtter_Insert_SingleThread(b *testing.B) {
	cache := newOtter(mediumCapacity)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cache.Set(i%mediumCapacity, i)
	}
}

func BenchmarkOtter_Insert_Parallel(b *testing.B) {
	cache := newOtter(mediumCapacity)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			cache.Set(i%mediumCapacity, i)
			i++
		}
	})
}

func BenchmarkOtter_Read_SingleThread(b *testing.B) {
	cache := newOtter(mediumCapacity)
	for i := 0; i < mediumCapacity; i++ {
		cache.Set(i, i)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cache.GetIfPresent(i % mediumCapacity)
	}
}

func BenchmarkOtter_Read_Parallel(b *testing.B) {
	cache := newOtter(mediumCapacity)
	for i := 0; i < mediumCapacity; i++ {
		cache.Set(i, i)
	}

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			cache.GetIfPresent(i % mediumCapacity)
			i++
		}
	})
}

// =============================================================================
// CAPACITY VARIANTS
// =============================================================================

func BenchmarkXanthos_Insert_Small(b *testing.B) {
	table := newXanthosTable(b, smallCapacity)
	defer table.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if id, ok := table.Insert(i); ok {
			table.Remove(id)
		}
	}
}

func BenchmarkXanthos_Insert_Large(b *testing.B) {
	table := newXanthosTable(b, largeCapacity)
	defer table.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if id, ok := table.Insert(i); ok {
			table.Remove(id)
		}
	}
}

// TestCapacityExhaustionBehavior documents, rather than benchmarks, how
// xanthos behaves once a table fills: unlike ristretto/otter, which evict an
// existing entry to admit a new one, Insert simply fails once every slot is
// occupied, so there is no hit-ratio comparison to be made against an
// eviction-based cache.
func TestCapacityExhaustionBehavior(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}

	table, err := xanthos.New[int](xanthos.Config[int]{Capacity: smallCapacity})
	if err != nil {
		t.Fatalf("xanthos.New() error = %v", err)
	}
	defer table.Close()

	accepted := 0
	for i := 0; i < table.Capacity()*2; i++ {
		if _, ok := table.Insert(i); ok {
			accepted++
		}
	}

	t.Logf("accepted %d inserts into a table of capacity %d (%.0f%%)",
		accepted, table.Capacity(), float64(accepted)/float64(table.Capacity())*100)
	if accepted != table.Capacity() {
		t.Errorf("expected exactly capacity (%d) inserts to be accepted, got %d", table.Capacity(), accepted)
	}
}
