package hashmap

import "strings"

const (
	hashSeed  = 5381 // DJB2 initial value
	hashShift = 5    // hash<<5 + hash == hash*33
)

// Hash returns the DJB2 hash of key: starting from 5381, every byte b
// updates hash = hash*33 + b. Arithmetic wraps modulo 2^64.
// Complexity: O(len(key)).
func Hash(key string) uint64 {
	var h uint64 = hashSeed
	for i := 0; i < len(key); i++ {
		h = (h << hashShift) + h + uint64(key[i])
	}

	return h
}

// index maps key onto a bucket slot.
func (m *HashMap) index(key string) int {
	return int(Hash(key) % uint64(len(m.buckets)))
}

// match reports whether a stored key satisfies a probe key under the
// configured matching mode.
func (m *HashMap) match(stored, probe string) bool {
	if m.opts.LegacyKeyMatch {
		// only the first len(probe) bytes of the stored key are compared
		return strings.HasPrefix(stored, probe)
	}

	return stored == probe
}
