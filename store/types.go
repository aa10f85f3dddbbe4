// nolint
package store

import "github.com/retok/revenue"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = revenue.ReadOnlyKVStore
type SetDeleter = revenue.SetDeleter
type KVStore = revenue.KVStore
type Batch = revenue.Batch
type Iterator = revenue.Iterator
type CacheableKVStore = revenue.CacheableKVStore
type KVCacheWrap = revenue.KVCacheWrap
type CommitKVStore = revenue.CommitKVStore
type CommitID = revenue.CommitID
