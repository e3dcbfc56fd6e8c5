package mcdb

import (
	"github.com/blockvault/mcworld"
	"github.com/df-mc/goleveldb/leveldb/iterator"
)

// SubchunkIterator is DB's implementation of mcworld.SubchunkPositionIterator:
// a forward walk over the underlying leveldb iterator, decoding each key
// and silently skipping the ones that are not shaped like block records.
type SubchunkIterator struct {
	db   *DB
	iter iterator.Iterator
	done bool
}

// Next advances the iterator. See mcworld.SubchunkPositionIterator for the
// ok/err contract.
func (it *SubchunkIterator) Next() (pos mcworld.SubchunkPos, ok bool, err error) {
	if it.done {
		return mcworld.SubchunkPos{}, false, nil
	}
	for it.iter.Next() {
		key := it.iter.Key()
		p, isBlockRecord, err := decodeKey(key)
		if err != nil {
			it.done = true
			it.db.conf.log().Warnf("mcdb: stopping iteration: %v", err)
			return mcworld.SubchunkPos{}, false, err
		}
		if !isBlockRecord {
			continue
		}
		return p, true, nil
	}
	it.done = true
	return mcworld.SubchunkPos{}, false, nil
}

// Release frees the underlying leveldb iterator. Safe to call multiple
// times.
func (it *SubchunkIterator) Release() {
	if it.iter != nil {
		it.iter.Release()
		it.iter = nil
	}
}
