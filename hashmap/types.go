// Package hashmap defines the HashMap type, its options and sentinel errors.
package hashmap

import (
	"errors"

	"github.com/katalvlaran/mcore/core"
)

// Sentinel errors for hash map operations.
var (
	// ErrZeroBuckets indicates New was asked for zero or negative buckets.
	ErrZeroBuckets = errors.New("hashmap: bucket count must be positive")

	// ErrNilMap indicates a method was called on a nil *HashMap.
	ErrNilMap = errors.New("hashmap: map is nil")

	// ErrMapFreed indicates the map was already torn down by Free.
	ErrMapFreed = errors.New("hashmap: map is freed")

	// ErrKeyNotFound indicates Remove was called for a key that is not stored.
	ErrKeyNotFound = errors.New("hashmap: key not found")
)

// Option configures a HashMap at construction time.
type Option func(*Options)

// Options holds construction-time behavior switches.
type Options struct {
	// LegacyKeyMatch enables prefix matching of stored keys against the
	// probe key instead of exact equality. Default false.
	LegacyKeyMatch bool
}

// DefaultOptions returns Options with exact key matching.
func DefaultOptions() Options {
	return Options{LegacyKeyMatch: false}
}

// WithLegacyKeyMatch makes every lookup treat a stored key as equal to the
// probe when the stored key starts with the probe.
func WithLegacyKeyMatch() Option {
	return func(o *Options) { o.LegacyKeyMatch = true }
}

// entry is one key/value pair in a bucket chain.
type entry struct {
	key   string
	value core.Value
	next  *entry
}

// HashMap is a fixed-bucket chained hash table.
//
// buckets[i] is the head of the chain for index i; a nil head is an empty
// bucket. A nil buckets slice marks a freed map.
type HashMap struct {
	buckets []*entry
	count   int
	opts    Options
}

// Stats is a point-in-time summary of bucket occupancy.
type Stats struct {
	Buckets      int     // configured bucket count
	Entries      int     // stored key/value pairs
	UsedBuckets  int     // buckets holding at least one entry
	LongestChain int     // length of the longest chain
	LoadFactor   float64 // Entries / Buckets
}

// New allocates a HashMap with bucketCount empty buckets.
// Returns ErrZeroBuckets if bucketCount <= 0.
// Complexity: O(bucketCount).
func New(bucketCount int, opts ...Option) (*HashMap, error) {
	if bucketCount <= 0 {
		return nil, ErrZeroBuckets
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &HashMap{
		buckets: make([]*entry, bucketCount),
		opts:    o,
	}, nil
}
