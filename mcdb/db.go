package mcdb

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/blockvault/mcworld"
	"github.com/blockvault/mcworld/chunk"
	"github.com/df-mc/atomic"
	"github.com/df-mc/goleveldb/leveldb"
)

// DB implements mcworld.Provider for the on-disk world format: a leveldb
// database whose keys are encoded subchunk positions (see key.go) and whose
// values are version-8 subchunk records (see package chunk).
type DB struct {
	conf   Config
	ldb    *leveldb.DB
	dir    string
	closed atomic.Bool
}

// LoadSubchunk returns the subchunk at pos, or nil if no record exists.
func (db *DB) LoadSubchunk(pos mcworld.SubchunkPos) (*chunk.Subchunk, error) {
	if db.closed.Load() {
		return nil, ErrClosed
	}
	data, err := db.ldb.Get(encodeKey(pos), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mcdb: load subchunk %s: %w", pos, err)
	}
	sub, err := chunk.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("mcdb: load subchunk %s: %w", pos, err)
	}
	return sub, nil
}

// SaveSubchunk serialises sub and writes it to pos, overwriting any
// existing record.
func (db *DB) SaveSubchunk(pos mcworld.SubchunkPos, sub *chunk.Subchunk) error {
	if db.closed.Load() {
		return ErrClosed
	}
	buf := bytes.NewBuffer(nil)
	if err := chunk.Encode(buf, sub); err != nil {
		return fmt.Errorf("mcdb: save subchunk %s: %w", pos, err)
	}
	if err := db.ldb.Put(encodeKey(pos), buf.Bytes(), nil); err != nil {
		return fmt.Errorf("mcdb: save subchunk %s: %w", pos, err)
	}
	return nil
}

// DeleteSubchunk removes the record at pos. It is not an error for no
// record to exist there.
func (db *DB) DeleteSubchunk(pos mcworld.SubchunkPos) error {
	if db.closed.Load() {
		return ErrClosed
	}
	if err := db.ldb.Delete(encodeKey(pos), nil); err != nil {
		return fmt.Errorf("mcdb: delete subchunk %s: %w", pos, err)
	}
	return nil
}

// IterSubchunkPositions returns a fresh iterator over every subchunk
// record's position. The iterator borrows db and must not be used once db
// is closed.
func (db *DB) IterSubchunkPositions() mcworld.SubchunkPositionIterator {
	return &SubchunkIterator{db: db, iter: db.ldb.NewIterator(nil, nil)}
}

// Close releases the underlying leveldb handle. Calling Close twice returns
// ErrClosed the second time.
func (db *DB) Close() error {
	if db.closed.Swap(true) {
		return ErrClosed
	}
	db.conf.log().Debugf("mcdb: closing world at %s", db.dir)
	return db.ldb.Close()
}
