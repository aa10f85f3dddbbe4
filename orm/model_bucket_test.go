package orm

import (
	"testing"

	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest/assert"
	"github.com/retok/revenue/store"
	amino "github.com/tendermint/go-amino"
)

var testCdc = amino.NewCodec()

type Counter struct {
	Count int64
}

func (c *Counter) Marshal() ([]byte, error) {
	return testCdc.MarshalBinaryBare(c)
}

func (c *Counter) Unmarshal(raw []byte) error {
	return testCdc.UnmarshalBinaryBare(raw, c)
}

func (c *Counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrInvalidModel, "negative count")
	}
	return nil
}

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	if _, err := b.Put(db, []byte("c1"), &Counter{Count: 1}); err != nil {
		t.Fatalf("cannot save counter instance: %s", err)
	}

	var c1 Counter
	if err := b.One(db, []byte("c1"), &c1); err != nil {
		t.Fatalf("cannot get c1 counter: %s", err)
	}
	if c1.Count != 1 {
		t.Fatalf("unexpected counter state: %d", c1.Count)
	}
	assert.Nil(t, b.Has(db, []byte("c1")))

	if err := b.Delete(db, []byte("c1")); err != nil {
		t.Fatalf("cannot delete c1 counter: %s", err)
	}
	if err := b.Delete(db, []byte("unknown")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error when deleting unexisting instance: %s", err)
	}
	if err := b.One(db, []byte("c1"), &c1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown model get: %s", err)
	}
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("c1")))
}

func TestModelBucketPutSequence(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	k1, err := b.Put(db, nil, &Counter{Count: 1})
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(1), k1)
	k2, err := b.Put(db, nil, &Counter{Count: 2})
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(2), k2)

	// a model that does not validate is refused
	_, err = b.Put(db, nil, &Counter{Count: -1})
	assert.IsErr(t, errors.ErrInvalidModel, err)

	// a shared sequence produces keys unique across buckets
	seq := NewSequence("shared", "id")
	other := NewModelBucket("others", WithIDSequence(seq))
	k3, err := other.Put(db, nil, &Counter{Count: 3})
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(1), k3)
}

func TestModelBucketPrefixScan(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")
	neighbour := NewModelBucket("cntsx")

	for _, k := range []string{"a1", "a2", "b1"} {
		_, err := b.Put(db, []byte(k), &Counter{Count: int64(len(k))})
		assert.Nil(t, err)
	}
	_, err := neighbour.Put(db, []byte("a3"), &Counter{Count: 9})
	assert.Nil(t, err)

	cases := map[string]struct {
		prefix   string
		reverse  bool
		wantKeys []string
	}{
		"all":            {prefix: "", wantKeys: []string{"a1", "a2", "b1"}},
		"prefix":         {prefix: "a", wantKeys: []string{"a1", "a2"}},
		"prefix reverse": {prefix: "a", reverse: true, wantKeys: []string{"a2", "a1"}},
		"no match":       {prefix: "c", wantKeys: nil},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			it, err := b.PrefixScan(db, []byte(tc.prefix), tc.reverse)
			assert.Nil(t, err)
			defer it.Release()

			var keys []string
			for {
				var c Counter
				key, err := it.Load(&c)
				if errors.ErrIteratorDone.Is(err) {
					break
				}
				assert.Nil(t, err)
				keys = append(keys, string(key))
			}
			assert.Equal(t, tc.wantKeys, keys)
		})
	}
}
