package scenario

import (
	"fmt"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mcore/config"
	"github.com/katalvlaran/mcore/core"
	"github.com/katalvlaran/mcore/hashmap"
	"github.com/katalvlaran/mcore/report"
)

func indexKey(i int) string {
	return fmt.Sprintf("Index: %d", i)
}

func hashCases() []Case {
	return []Case{
		{Name: "InitAndFree", Run: hashInitAndFree},
		{Name: "BigSize", Run: hashBigSize},
		{Name: "DynamicInsertion", Run: hashDynamicInsertion},
		{Name: "SearchAndRemove", Run: hashSearchAndRemove},
		{Name: "UpdateInPlace", Run: hashUpdateInPlace},
		{Name: "PrefixKeys", Run: hashPrefixKeys},
	}
}

func hashInitAndFree(r *report.Reporter, cfg *config.Config) {
	m, err := hashmap.New(cfg.Hash.Buckets)
	if !r.Check("InitAndFree: New", assert.NoError(r, err)) {
		return
	}
	r.Check("InitAndFree: bucket count", assert.Equal(r, cfg.Hash.Buckets, m.BucketCount()))
	m.Free()
	r.Check("InitAndFree: freed map rejects insert",
		assert.ErrorIs(r, m.Insert("k", core.Borrow(nil)), hashmap.ErrMapFreed))
	_, err = hashmap.New(0)
	r.Check("InitAndFree: zero buckets rejected", assert.ErrorIs(r, err, hashmap.ErrZeroBuckets))
}

func hashBigSize(r *report.Reporter, cfg *config.Config) {
	n := cfg.Hash.BigSize
	m, err := hashmap.New(n)
	if !r.Check("BigSize: New", assert.NoError(r, err)) {
		return
	}
	defer m.Free()

	inserts := 0
	for i := 0; i < n; i++ {
		k := indexKey(i)
		if m.Insert(k, core.Borrow(k)) == nil {
			inserts++
		}
	}
	r.Check("BigSize: successful inserts", assert.Equal(r, n, inserts))
	r.Check("BigSize: live entries", assert.Equal(r, n, m.Len()))
}

func hashDynamicInsertion(r *report.Reporter, cfg *config.Config) {
	n := cfg.Scenario.DynamicCount
	m, err := hashmap.New(cfg.Hash.Buckets)
	if !r.Check("DynamicInsertion: New", assert.NoError(r, err)) {
		return
	}

	released := 0
	inserts := 0
	for i := 0; i < n; i++ {
		k := indexKey(i)
		if m.Insert(k, core.Own(k, func(any) { released++ })) == nil {
			inserts++
		}
	}
	r.Check("DynamicInsertion: successful inserts", assert.Equal(r, n, inserts))
	m.Free()
	r.Check("DynamicInsertion: every owned value released on free", assert.Equal(r, n, released))
}

func hashSearchAndRemove(r *report.Reporter, cfg *config.Config) {
	n, k := cfg.Scenario.DynamicCount, cfg.Scenario.RemoveCount
	m, err := hashmap.New(cfg.Hash.Buckets)
	if !r.Check("SearchAndRemove: New", assert.NoError(r, err)) {
		return
	}
	defer m.Free()

	inserts := 0
	for i := 0; i < n; i++ {
		if m.Insert(indexKey(i), core.Borrow(indexKey(i))) == nil {
			inserts++
		}
	}
	r.Check("SearchAndRemove: successful inserts", assert.Equal(r, n, inserts))

	removes := 0
	for i := 0; i < k; i++ {
		if m.Remove(indexKey(i)) == nil {
			removes++
		}
		v, ok := m.Search(indexKey(i))
		r.Check(fmt.Sprintf("SearchAndRemove: %q absent after remove", indexKey(i)),
			assert.False(r, ok) && assert.Nil(r, v))
	}
	r.Check("SearchAndRemove: remaining entries", assert.Equal(r, n-k, inserts-removes))
	r.Check("SearchAndRemove: map length", assert.Equal(r, n-k, m.Len()))
	r.Check("SearchAndRemove: absent key rejected",
		assert.ErrorIs(r, m.Remove(indexKey(0)), hashmap.ErrKeyNotFound))
}

func hashUpdateInPlace(r *report.Reporter, cfg *config.Config) {
	m, err := hashmap.New(cfg.Hash.Buckets)
	if !r.Check("UpdateInPlace: New", assert.NoError(r, err)) {
		return
	}
	defer m.Free()

	released := map[any]int{}
	hook := func(d any) { released[d]++ }
	_ = m.Insert("key", core.Own("old", hook))
	_ = m.Insert("key", core.Own("new", hook))

	v, _ := m.Search("key")
	r.Check("UpdateInPlace: value replaced", assert.Equal(r, "new", v))
	r.Check("UpdateInPlace: single entry", assert.Equal(r, 1, m.Len()))
	r.Check("UpdateInPlace: superseded value released once", assert.Equal(r, 1, released["old"]))
	r.Check("UpdateInPlace: current value kept", assert.Zero(r, released["new"]))
}

func hashPrefixKeys(r *report.Reporter, _ *config.Config) {
	exact, _ := hashmap.New(1)
	legacy, _ := hashmap.New(1, hashmap.WithLegacyKeyMatch())
	defer exact.Free()
	defer legacy.Free()

	_ = exact.Insert("abc", core.Borrow("long"))
	_ = legacy.Insert("abc", core.Borrow("long"))

	_, ok := exact.Search("ab")
	r.Check("PrefixKeys: exact match keeps \"ab\" and \"abc\" apart", assert.False(r, ok))
	_, ok = legacy.Search("ab")
	r.Check("PrefixKeys: legacy match aliases \"ab\" to \"abc\"", assert.True(r, ok))
}
