// Package hashmap implements a fixed-size chained hash table keyed by strings,
// whose values are opaque core.Value payloads with per-entry ownership.
//
// What:
//
//   - HashMap: bucketCount singly linked chains chosen once at construction.
//     The table is never resized or rehashed.
//   - Hash: the DJB2 string hash (seed 5381, multiplier 33) used for bucket
//     indexing: index = Hash(key) mod bucketCount.
//   - Insert updates in place when the key already exists, so a chain never
//     holds two entries with the same key. New keys are prepended.
//   - Owned values (core.Own) are released when superseded by Insert,
//     unlinked by Remove, or dropped by Free. Borrowed values (core.Borrow)
//     are never touched.
//
// Key matching:
//
//   - Default: exact string equality.
//   - WithLegacyKeyMatch(): the stored key matches when it starts with the
//     probe key, reproducing a truncated comparison that bounds the compare
//     length by the probe only. Keys "ab" and "abc" in the same bucket then
//     alias each other. Provided for compatibility tests, not new code.
//
// Complexity:
//
//   - Insert, Search, Lookup, Remove: O(1 + L) where L is the chain length
//     of the target bucket; L degrades to n under heavy collision.
//   - Free, Stats, Dump: O(bucketCount + n).
//
// Concurrency:
//
//   - None. A HashMap must not be used from several goroutines without an
//     external lock around every call.
//
// Errors:
//
//   - ErrZeroBuckets   bucketCount <= 0 passed to New.
//   - ErrNilMap        method called on a nil *HashMap.
//   - ErrMapFreed      mutation attempted after Free.
//   - ErrKeyNotFound   Remove on a key that is not stored.
package hashmap
