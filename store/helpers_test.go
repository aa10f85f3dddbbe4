package store

import (
	"testing"

	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest/assert"
)

// TestSliceIterator makes sure the basic slice iterator works.
func TestSliceIterator(t *testing.T) {
	const size = 10

	models := randModels(size, 8, 40)

	it := NewSliceIterator(models)
	for i := 0; i < size; i++ {
		k, v, err := it.Next()
		assert.Nil(t, err)
		assert.Equal(t, models[i].Key, k)
		assert.Equal(t, models[i].Value, v)
	}
	_, _, err := it.Next()
	assert.IsErr(t, errors.ErrIteratorDone, err)

	it = NewSliceIterator(models)
	it.Release()
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("released iterator must be done, got %+v", err)
	}
}

func TestNonAtomicBatch(t *testing.T) {
	db := MemStore()
	b := NewNonAtomicBatch(db)
	assert.Nil(t, b.Set([]byte("a"), []byte("1")))
	assert.Nil(t, b.Delete([]byte("b")))
	assert.Equal(t, 2, len(b.ShowOps()))

	has, err := db.Has([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)

	assert.Nil(t, b.Write())
	assert.Equal(t, 0, len(b.ShowOps()))
	has, err = db.Has([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, true, has)
}
