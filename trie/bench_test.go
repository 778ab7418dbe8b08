package trie_test

import (
	"testing"

	"github.com/katalvlaran/mcore/trie"
)

// wordsN generates n distinct lowercase words by counting in base 26.
func wordsN(n int) []string {
	out := make([]string, n)
	for i := range out {
		var buf []byte
		for v := i; ; v /= 26 {
			buf = append(buf, byte('a'+v%26))
			if v < 26 {
				break
			}
		}
		out[i] = string(buf)
	}

	return out
}

// BenchmarkInsertRemove inserts 10,000 words and removes them all,
// ending every iteration with a root-only trie.
func BenchmarkInsertRemove(b *testing.B) {
	words := wordsN(10_000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tr := trie.New()
		for _, w := range words {
			_ = tr.Insert(w)
		}
		for _, w := range words {
			_ = tr.Remove(w)
		}
	}
}

// BenchmarkSearch measures membership lookups on a 10,000-word trie.
func BenchmarkSearch(b *testing.B) {
	words := wordsN(10_000)
	tr := trie.New()
	for _, w := range words {
		_ = tr.Insert(w)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tr.Search(words[i%len(words)])
	}
}
