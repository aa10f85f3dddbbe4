package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/retok/revenue/errors"
)

// ascendBtree collects all items within [start, end) in ascending order.
// nil start or end means the range is open on that side.
func ascendBtree(bt *btree.BTree, start, end []byte) []keyer {
	var res []keyer
	collect := func(item btree.Item) bool {
		res = append(res, item.(keyer))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return res
}

// descendBtree collects all items within [start, end) in descending order.
func descendBtree(bt *btree.BTree, start, end []byte) []keyer {
	res := ascendBtree(bt, start, end)
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

// mergeIterator combines the items of a cache layer with the iterator of
// the layer below. Items of the cache layer shadow the parent entries with
// the same key, deleted items hide them.
type mergeIterator struct {
	items   []keyer
	idx     int
	reverse bool

	parent     Iterator
	parentKey  []byte
	parentVal  []byte
	parentDone bool
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(items []keyer, parent Iterator, reverse bool) (*mergeIterator, error) {
	it := &mergeIterator{
		items:   items,
		reverse: reverse,
		parent:  parent,
	}
	if err := it.advanceParent(); err != nil {
		parent.Release()
		return nil, err
	}
	return it, nil
}

func (i *mergeIterator) advanceParent() error {
	if i.parentDone {
		return nil
	}
	key, value, err := i.parent.Next()
	switch {
	case err == nil:
		i.parentKey, i.parentVal = key, value
	case errors.ErrIteratorDone.Is(err):
		i.parentDone = true
		i.parentKey, i.parentVal = nil, nil
	default:
		return err
	}
	return nil
}

// Next returns the next key value pair in iteration order. Returns
// ErrIteratorDone when both layers are exhausted.
func (i *mergeIterator) Next() (key, value []byte, err error) {
	for {
		hasOwn := i.idx < len(i.items)
		if !hasOwn && i.parentDone {
			return nil, nil, errors.ErrIteratorDone
		}

		if !hasOwn {
			key, value = i.parentKey, i.parentVal
			if err := i.advanceParent(); err != nil {
				return nil, nil, err
			}
			return key, value, nil
		}

		own := i.items[i.idx]
		if !i.parentDone {
			cmp := bytes.Compare(own.Key(), i.parentKey)
			if i.reverse {
				cmp = -cmp
			}
			if cmp > 0 {
				// Parent entry comes first.
				key, value = i.parentKey, i.parentVal
				if err := i.advanceParent(); err != nil {
					return nil, nil, err
				}
				return key, value, nil
			}
			if cmp == 0 {
				// Shadowed by our own entry.
				if err := i.advanceParent(); err != nil {
					return nil, nil, err
				}
			}
		}

		i.idx++
		if item, ok := own.(setItem); ok {
			return item.Key(), item.value, nil
		}
		// deleted, keep looking
	}
}

// Release releases the Iterator.
func (i *mergeIterator) Release() {
	i.items = nil
	i.parent.Release()
}
