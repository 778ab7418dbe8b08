// Package hashmap: chained bucket operations.
//
// Every operation hashes the key once, then walks a single chain. Entries
// are prepended on insert and unlinked in place on remove; nothing ever
// moves between buckets because the bucket count is fixed.

package hashmap

import (
	"github.com/katalvlaran/mcore/core"
)

// check validates the receiver for mutating calls.
func (m *HashMap) check() error {
	if m == nil {
		return ErrNilMap
	}
	if m.buckets == nil {
		return ErrMapFreed
	}

	return nil
}

// find returns the entry for key and its predecessor in the chain (nil when
// the entry is the head), or a nil entry if key is not stored.
func (m *HashMap) find(key string) (e, prev *entry, idx int) {
	idx = m.index(key)
	for e = m.buckets[idx]; e != nil; prev, e = e, e.next {
		if m.match(e.key, key) {
			return e, prev, idx
		}
	}

	return nil, nil, idx
}

// Insert stores v under key.
// If key is already present the entry is updated in place: an owned old
// value is released first, then the new value replaces it. Otherwise a new
// entry is prepended to the bucket chain.
// Returns ErrNilMap or ErrMapFreed for an unusable receiver.
// Complexity: O(1 + L), L = chain length.
func (m *HashMap) Insert(key string, v core.Value) error {
	if err := m.check(); err != nil {
		return err
	}
	e, _, idx := m.find(key)
	if e != nil {
		// update path: never create a duplicate key
		e.value.Release()
		e.value = v

		return nil
	}
	m.buckets[idx] = &entry{key: key, value: v, next: m.buckets[idx]}
	m.count++

	return nil
}

// Search returns the payload stored under key and whether key is present.
// A present key holding a nil payload yields (nil, true).
// Complexity: O(1 + L).
func (m *HashMap) Search(key string) (any, bool) {
	v, ok := m.Lookup(key)
	if !ok {
		return nil, false
	}

	return v.Data(), true
}

// Lookup returns the tagged Value stored under key and whether key is present.
// The Value remains owned by the map.
// Complexity: O(1 + L).
func (m *HashMap) Lookup(key string) (core.Value, bool) {
	if m.check() != nil {
		return core.Value{}, false
	}
	e, _, _ := m.find(key)
	if e == nil {
		return core.Value{}, false
	}

	return e.value, true
}

// Remove unlinks the entry for key and releases its payload if owned.
// Returns ErrKeyNotFound when key is absent; the map is left unchanged.
// Complexity: O(1 + L).
func (m *HashMap) Remove(key string) error {
	if err := m.check(); err != nil {
		return err
	}
	e, prev, idx := m.find(key)
	if e == nil {
		return ErrKeyNotFound
	}
	if prev == nil {
		m.buckets[idx] = e.next
	} else {
		prev.next = e.next
	}
	e.next = nil
	m.count--
	e.value.Release()

	return nil
}

// Free releases every owned payload and drops all buckets.
// After Free, mutating calls return ErrMapFreed and queries report absence.
// Calling Free on a nil or already freed map is a no-op.
// Complexity: O(bucketCount + n).
func (m *HashMap) Free() {
	if m == nil || m.buckets == nil {
		return
	}
	for i, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			e.next = nil
			e.value.Release()
			e = next
		}
		m.buckets[i] = nil
	}
	m.buckets = nil
	m.count = 0
}

// Len returns the number of stored entries (0 for nil or freed maps).
func (m *HashMap) Len() int {
	if m == nil {
		return 0
	}

	return m.count
}

// BucketCount returns the fixed number of buckets (0 for nil or freed maps).
func (m *HashMap) BucketCount() int {
	if m == nil {
		return 0
	}

	return len(m.buckets)
}

// ChainLen returns the number of entries chained in bucket i.
// Out-of-range indices report 0.
// Complexity: O(L).
func (m *HashMap) ChainLen(i int) int {
	if m == nil || i < 0 || i >= len(m.buckets) {
		return 0
	}
	n := 0
	for e := m.buckets[i]; e != nil; e = e.next {
		n++
	}

	return n
}

// Stats walks all buckets and summarizes their occupancy.
// Complexity: O(bucketCount + n).
func (m *HashMap) Stats() Stats {
	s := Stats{Buckets: m.BucketCount(), Entries: m.Len()}
	for i := 0; i < s.Buckets; i++ {
		l := m.ChainLen(i)
		if l == 0 {
			continue
		}
		s.UsedBuckets++
		if l > s.LongestChain {
			s.LongestChain = l
		}
	}
	if s.Buckets > 0 {
		s.LoadFactor = float64(s.Entries) / float64(s.Buckets)
	}

	return s
}
