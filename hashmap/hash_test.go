package hashmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mcore/hashmap"
)

func TestHash_DJB2(t *testing.T) {
	cases := []struct {
		key  string
		want uint64
	}{
		{"", 5381},
		{"a", 5381*33 + 'a'},
		{"ab", (5381*33+'a')*33 + 'b'},
		{"Index: 0", djb2Reference("Index: 0")},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, hashmap.Hash(tc.key), "Hash(%q)", tc.key)
	}
}

func TestHash_Wraps(t *testing.T) {
	// long keys overflow uint64 many times over; the result must stay
	// deterministic and equal to the reference recurrence
	key := "the quick brown fox jumps over the lazy dog, repeatedly and at length"
	assert.Equal(t, djb2Reference(key), hashmap.Hash(key))
}

// djb2Reference is the textbook multiply form of the recurrence.
func djb2Reference(s string) uint64 {
	h := uint64(5381)
	for _, b := range []byte(s) {
		h = h*33 + uint64(b)
	}

	return h
}
