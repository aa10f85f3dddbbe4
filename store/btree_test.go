package store

import (
	"testing"

	"github.com/retok/revenue/revenuetest/assert"
)

func makeMemStore() (CacheableKVStore, func()) {
	return MemStore(), func() {}
}

func TestBTreeCacheSuite(t *testing.T) {
	NewKVStoreSuite(makeMemStore).Run(t)
}

// TestBTreeCacheDevNull makes sure writes to a black hole base are
// only visible in the cache layers above it.
func TestBTreeCacheDevNull(t *testing.T) {
	devnull := BTreeCacheable{EmptyKVStore{}}
	base := devnull.CacheWrap()

	k, v := []byte("french"), []byte("fry")
	assert.Nil(t, base.Set(k, v))
	got, err := base.Get(k)
	assert.Nil(t, err)
	assert.Equal(t, v, got)

	assert.Nil(t, base.Write())
	got, err = devnull.Get(k)
	assert.Nil(t, err)
	assert.Equal(t, []byte(nil), got)
}

// TestBTreeCacheNestedDiscard checks that discarding an inner layer keeps
// the outer layer intact, which is what savepoints rely on.
func TestBTreeCacheNestedDiscard(t *testing.T) {
	db := MemStore()
	assert.Nil(t, db.Set([]byte("a"), []byte("1")))

	outer := db.CacheWrap()
	assert.Nil(t, outer.Set([]byte("b"), []byte("2")))

	inner := outer.CacheWrap()
	assert.Nil(t, inner.Set([]byte("a"), []byte("changed")))
	assert.Nil(t, inner.Delete([]byte("b")))
	inner.Discard()

	got, err := outer.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), got)
	has, err := outer.Has([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, true, has)

	assert.Nil(t, outer.Write())
	got, err = db.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("2"), got)
}
