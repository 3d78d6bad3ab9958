package futures_test

import (
	"log/slog"
	"testing"

	"github.com/dmitrymomot/futures"
)

// BenchmarkSpawnAndDrain measures spawn overhead for 100 trivial tasks
// followed by a full drain.
func BenchmarkSpawnAndDrain(b *testing.B) {
	reg := futures.NewRegistry(futures.WithLogger(slog.New(slog.DiscardHandler)))

	for b.Loop() {
		handles := make([]*futures.Future[int], 100)
		for i := range 100 {
			handles[i] = futures.SpawnOn(reg, func() (int, error) {
				return i * 2, nil
			})
		}
		reg.WaitAll()

		for i, h := range handles {
			v, err := h.Get()
			if err != nil || v != i*2 {
				b.Fatalf("unexpected outcome: %d, %v", v, err)
			}
		}
	}
}

// BenchmarkResolved measures the cost of a value-backed handle.
func BenchmarkResolved(b *testing.B) {
	for b.Loop() {
		f := futures.Resolved(1)
		if v, _ := f.Get(); v != 1 {
			b.Fatal("wrong value")
		}
	}
}

// BenchmarkGetContention measures many readers sharing one handle.
func BenchmarkGetContention(b *testing.B) {
	f := futures.Resolved(42)

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if v, _ := f.Get(); v != 42 {
				b.Fatal("wrong value")
			}
		}
	})
}
