package workq

import (
	"math/rand"
	"strconv"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	q := NewNonUnique[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(i)
	}
}

func BenchmarkAddNext(b *testing.B) {
	q := NewNonUnique[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(i)
		if i%2 == 1 { // keep size bounded
			q.Next()
		}
	}
}

func BenchmarkAdd_DedupHits(b *testing.B) {
	q := New[int]()
	// Preload with a small range to force many duplicate hits.
	for i := 0; i < 1024; i++ {
		q.Add(i)
	}
	rnd := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(rnd.Intn(1024)) // mostly rejected by lifetime dedup
	}
}

func BenchmarkAdd_Keyed(b *testing.B) {
	type item struct {
		id   string
		size int
	}
	q := NewKeyed(func(it item) string { return it.id })
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(item{id: strconv.Itoa(i), size: i})
	}
}

func BenchmarkSeen(b *testing.B) {
	q := New[int]()
	for i := 0; i < 100_000; i++ {
		q.Add(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Seen(i % 100_000)
	}
}
