package attr

import (
	"sync/atomic"
	"testing"
)

// Hit path, unguarded: one stored entry read by GOMAXPROCS goroutines.
// Reads of a stored entry only touch the owner's Store lock.
func BenchmarkGet_Hit(b *testing.B) {
	a := New("v", func(r *report) (int, error) { return 1, nil }, Options{})
	r := &report{}
	if _, err := a.Get(r); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := a.Get(r); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

// Hit path, guarded: every read serializes through the definition mutex.
// The gap to BenchmarkGet_Hit is the price of the coarse lock.
func BenchmarkGet_GuardedHit(b *testing.B) {
	a := New("v", func(r *report) (int, error) { return 1, nil }, Options{Guarded: true})
	r := &report{}
	if _, err := a.Get(r); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := a.Get(r); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

// Miss path: every iteration deletes first, so each Get computes.
func BenchmarkGet_ColdCompute(b *testing.B) {
	a := New("v", func(r *report) (int, error) { return r.id, nil }, Options{})
	r := &report{id: 3}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Delete(r)
		if _, err := a.Get(r); err != nil {
			b.Fatal(err)
		}
	}
}

// Guarded hits spread across many owners: the definition lock is shared,
// so owner count does not buy parallelism back. Measures that tradeoff.
func BenchmarkGet_GuardedManyOwners(b *testing.B) {
	a := New("v", func(r *report) (int, error) { return r.id, nil }, Options{Guarded: true})
	owners := make([]*report, 128)
	for i := range owners {
		owners[i] = &report{id: i}
		if _, err := a.Get(owners[i]); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	var seed int64
	b.RunParallel(func(pb *testing.PB) {
		i := int(atomic.AddInt64(&seed, 1))
		for pb.Next() {
			if _, err := a.Get(owners[i&127]); err != nil {
				b.Error(err)
				return
			}
			i++
		}
	})
}
