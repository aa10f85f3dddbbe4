package store

import (
	"bytes"
	"crypto/rand"
	"sort"
	"testing"

	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest/assert"
)

// StoreBuilder returns a fresh, empty store and a function releasing it.
type StoreBuilder func() (base CacheableKVStore, cleanup func())

// KVStoreSuite holds the checks every CacheableKVStore implementation must
// pass. Backends only provide the builder; the btree and iavl packages both
// run it.
type KVStoreSuite struct {
	build StoreBuilder
}

func NewKVStoreSuite(build StoreBuilder) *KVStoreSuite {
	return &KVStoreSuite{build: build}
}

// Run executes every check of the suite as a subtest.
func (s *KVStoreSuite) Run(t *testing.T) {
	t.Run("cache layers", s.CacheLayers)
	t.Run("cache overrides", s.CacheOverrides)
	t.Run("random ranges", s.RandomRanges)
	t.Run("shadowed ranges", s.ShadowedRanges)
}

// CacheLayers walks a base store through a series of cache wraps, writes
// and discards, checking visibility in every layer after each step.
func (s *KVStoreSuite) CacheLayers(t *testing.T) {
	base, cleanup := s.build()
	defer cleanup()

	income := Pair([]byte("income:0001"), []byte("100"))
	holder := Pair([]byte("holder:alice"), []byte("250000"))
	pending := Pair([]byte("pending:bob"), []byte("7"))

	assertModels(t, base, Pair(income.Key, nil))
	assert.Nil(t, base.Set(income.Key, income.Value))
	assertModels(t, base, income)

	// writes to a cache stay there until flushed
	first := base.CacheWrap()
	assertModels(t, first, income, Pair(holder.Key, nil))
	assert.Nil(t, first.Set(holder.Key, holder.Value))
	assertModels(t, first, income, holder)
	assertModels(t, base, Pair(holder.Key, nil))
	assert.Nil(t, first.Write())
	assertModels(t, base, income, holder)

	dropped := base.CacheWrap()
	assert.Nil(t, dropped.Set(pending.Key, pending.Value))
	assertModels(t, dropped, income, holder, pending)
	dropped.Discard()
	assertModels(t, base, Pair(pending.Key, nil))

	// a delete in a later layer is visible to an earlier, discarded one
	// because reads fall through to the base
	second := base.CacheWrap()
	assert.Nil(t, second.Delete(income.Key))
	assert.Nil(t, second.Write())
	assertModels(t, dropped, Pair(income.Key, nil), holder, Pair(pending.Key, nil))
}

// CacheOverrides checks that a child layer can replace and delete values
// held by its parent without the parent noticing before a write.
func (s *KVStoreSuite) CacheOverrides(t *testing.T) {
	ks := randKeys(4, 16)
	vs := randKeys(6, 40)

	cases := map[string]struct {
		parent      []Op
		child       []Op
		inParent    []Model
		afterCommit []Model
	}{
		"replace, delete and add": {
			parent:      []Op{SetOp(ks[1], vs[1]), SetOp(ks[2], vs[2])},
			child:       []Op{SetOp(ks[1], vs[4]), SetOp(ks[3], vs[5]), DelOp(ks[2])},
			inParent:    []Model{Pair(ks[1], vs[1]), Pair(ks[2], vs[2]), Pair(ks[3], nil)},
			afterCommit: []Model{Pair(ks[1], vs[4]), Pair(ks[2], nil), Pair(ks[3], vs[5])},
		},
		"delete then set again": {
			parent:      []Op{SetOp(ks[0], vs[0])},
			child:       []Op{DelOp(ks[0]), SetOp(ks[0], vs[3])},
			inParent:    []Model{Pair(ks[0], vs[0])},
			afterCommit: []Model{Pair(ks[0], vs[3])},
		},
		"delete of a missing key": {
			child:       []Op{DelOp(ks[2])},
			inParent:    []Model{Pair(ks[2], nil)},
			afterCommit: []Model{Pair(ks[2], nil)},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := s.build()
			defer cleanup()

			applyOps(t, parent, tc.parent)
			child := parent.CacheWrap()
			applyOps(t, child, tc.child)

			assertModels(t, parent, tc.inParent...)
			assertModels(t, child, tc.afterCommit...)
			assert.Nil(t, child.Write())
			assertModels(t, parent, tc.afterCommit...)
		})
	}
}

// RandomRanges iterates random data spread over a parent and a child
// layer, including deletes of keys that were never written.
func (s *KVStoreSuite) RandomRanges(t *testing.T) {
	const size = 40

	childSet := randModels(size, 8, 32)
	childOps := append(setOps(childSet...), delOps(randModels(10, 8, 32)...)...)
	parentSet := randModels(size, 8, 32)
	parentOps := append(setOps(parentSet...), delOps(randModels(10, 8, 32)...)...)

	own := sortModels(childSet)
	all := sortModels(append(childSet, parentSet...))

	cases := map[string]layeredCase{
		"child over an empty parent": {
			child:  childOps,
			ranges: boundedRanges(own, 5, 12, 30),
		},
		"child merged with parent": {
			parent: parentOps,
			child:  childOps,
			ranges: boundedRanges(all, 9, 33, 71),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.build()
			defer cleanup()
			tc.check(t, base)
		})
	}
}

// ShadowedRanges covers iteration where child entries replace or delete
// entries of the parent.
func (s *KVStoreSuite) ShadowedRanges(t *testing.T) {
	ms := randModels(6, 20, 64)
	a, a2, b, b2, c, d := ms[0], ms[1], ms[2], ms[3], ms[4], ms[5]
	a2.Key = a.Key
	b2.Key = b.Key

	plain := sortModels([]Model{a, b, c})
	replaced := sortModels([]Model{a2, b2, c, d})

	cases := map[string]layeredCase{
		"child only": {
			child:  setOps(a, b, c),
			ranges: boundedRanges(plain, 0, 1, 2),
		},
		"parent only": {
			parent: setOps(a, b, c),
			ranges: boundedRanges(plain, 0, 1, 2),
		},
		"split across layers": {
			parent: setOps(a, b),
			child:  setOps(c),
			ranges: boundedRanges(plain, 0, 1, 2),
		},
		"child values win": {
			parent: setOps(a, b, c),
			child:  setOps(a2, b2, d),
			ranges: boundedRanges(replaced, 0, 1, 3),
		},
		"child deletes hide parent": {
			parent: setOps(a, c, d),
			child:  delOps(a, b, d),
			ranges: []keyRange{
				{want: []Model{c}},
				{end: c.Key},
				{start: c.Key, reverse: true, want: []Model{c}},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.build()
			defer cleanup()
			tc.check(t, base)
		})
	}
}

// assertModels checks Get and Has for every model. A nil value means the
// key must be absent.
func assertModels(t testing.TB, kv ReadOnlyKVStore, models ...Model) {
	t.Helper()
	for _, m := range models {
		got, err := kv.Get(m.Key)
		assert.Nil(t, err)
		assert.Equal(t, m.Value, got)
		has, err := kv.Has(m.Key)
		assert.Nil(t, err)
		assert.Equal(t, m.Value != nil, has)
	}
}

func applyOps(t testing.TB, out SetDeleter, ops []Op) {
	t.Helper()
	for _, op := range ops {
		assert.Nil(t, op.Apply(out))
	}
}

// layeredCase loads parent ops into the base, child ops into a cache on
// top of it, and then iterates the cache.
type layeredCase struct {
	parent []Op
	child  []Op
	ranges []keyRange
}

type keyRange struct {
	start   []byte
	end     []byte
	reverse bool
	want    []Model
}

func (c layeredCase) check(t testing.TB, base CacheableKVStore) {
	t.Helper()
	applyOps(t, base, c.parent)
	child := base.CacheWrap()
	applyOps(t, child, c.child)

	for _, r := range c.ranges {
		var (
			it  Iterator
			err error
		)
		if r.reverse {
			it, err = child.ReverseIterator(r.start, r.end)
		} else {
			it, err = child.Iterator(r.start, r.end)
		}
		assert.Nil(t, err)

		for i, want := range r.want {
			key, value, err := it.Next()
			assert.Nil(t, err)
			if !bytes.Equal(want.Key, key) {
				t.Fatalf("entry %d: want key %X, got %X", i, want.Key, key)
			}
			assert.Equal(t, want.Value, value)
		}
		if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
			t.Fatalf("want iterator done, got %+v", err)
		}
		it.Release()
	}
}

// boundedRanges builds the open, start bound, end bound and two sided
// ranges over sorted, in both directions. lo < mid < hi must index sorted.
func boundedRanges(sorted []Model, lo, mid, hi int) []keyRange {
	var res []keyRange
	for _, rev := range []bool{false, true} {
		order := func(ms []Model) []Model {
			if rev {
				return reversed(ms)
			}
			return ms
		}
		res = append(res,
			keyRange{reverse: rev, want: order(sorted)},
			keyRange{start: sorted[mid].Key, reverse: rev, want: order(sorted[mid:])},
			keyRange{end: sorted[mid].Key, reverse: rev, want: order(sorted[:mid])},
			keyRange{start: sorted[lo].Key, end: sorted[hi].Key, reverse: rev, want: order(sorted[lo:hi])},
		)
	}
	return res
}

func randBytes(length int) []byte {
	res := make([]byte, length)
	if _, err := rand.Read(res); err != nil {
		panic(err)
	}
	return res
}

func randKeys(count, size int) [][]byte {
	res := make([][]byte, count)
	for i := range res {
		res[i] = randBytes(size)
	}
	return res
}

func randModels(count, keySize, valueSize int) []Model {
	res := make([]Model, count)
	for i := range res {
		res[i] = Pair(randBytes(keySize), randBytes(valueSize))
	}
	return res
}

func reversed(models []Model) []Model {
	res := make([]Model, len(models))
	for i, m := range models {
		res[len(models)-1-i] = m
	}
	return res
}

// sortModels returns a copy of models ordered by key.
func sortModels(models []Model) []Model {
	res := append([]Model(nil), models...)
	sort.Slice(res, func(i, j int) bool {
		return bytes.Compare(res[i].Key, res[j].Key) < 0
	})
	return res
}

func setOps(ms ...Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = SetOp(m.Key, m.Value)
	}
	return res
}

func delOps(ms ...Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = DelOp(m.Key)
	}
	return res
}
