package hashmap_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mcore/core"
	"github.com/katalvlaran/mcore/hashmap"
)

// BenchmarkInsert_1M inserts one million distinct borrowed keys into a
// one-million-bucket table, the sizing used by the big-size scenario.
func BenchmarkInsert_1M(b *testing.B) {
	const n = 1_000_000
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("Index: %d", i)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m, _ := hashmap.New(n)
		for _, k := range keys {
			_ = m.Insert(k, core.Borrow(k))
		}
		m.Free()
	}
}

// BenchmarkSearch_Chained measures lookups when 1024 keys share 32 buckets.
func BenchmarkSearch_Chained(b *testing.B) {
	m, _ := hashmap.New(32)
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = fmt.Sprintf("Index: %d", i)
		_ = m.Insert(keys[i], core.Borrow(i))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = m.Search(keys[i%len(keys)])
	}
}
