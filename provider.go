package mcworld

import "github.com/blockvault/mcworld/chunk"

// Provider is the raw store contract a World is built on: structured
// subchunk positions in, raw decoded Subchunk records out. package mcdb's
// DB is the only implementation this repository ships, wrapping an
// embedded leveldb engine, but World depends only on this interface so
// that a test fake — or an entirely different on-disk engine — can stand
// in for it without World or package mcdb needing to know about each
// other.
type Provider interface {
	// LoadSubchunk returns the subchunk at pos, or nil if no record exists
	// for it. A non-nil error means the record exists but could not be
	// decoded, or the underlying store failed.
	LoadSubchunk(pos SubchunkPos) (*chunk.Subchunk, error)
	// SaveSubchunk writes sub to pos, creating or overwriting any existing
	// record.
	SaveSubchunk(pos SubchunkPos, sub *chunk.Subchunk) error
	// DeleteSubchunk removes the record at pos. It is not an error for no
	// record to exist there.
	DeleteSubchunk(pos SubchunkPos) error
	// IterSubchunkPositions returns a fresh iterator over every subchunk
	// record's position in the store. The iterator borrows the Provider
	// and must not be used after the Provider is closed.
	IterSubchunkPositions() SubchunkPositionIterator
	// Close releases any resources the Provider holds.
	Close() error
}

// SubchunkPositionIterator walks the positions of every subchunk record a
// Provider holds, forward and one-shot.
type SubchunkPositionIterator interface {
	// Next advances the iterator. ok is false once iteration is exhausted,
	// with err nil. A non-nil err means a malformed record was
	// encountered; the iterator is done after returning it and every
	// subsequent call returns ok=false, err=nil.
	Next() (pos SubchunkPos, ok bool, err error)
	// Release frees the iterator's resources. Safe to call multiple
	// times.
	Release()
}
