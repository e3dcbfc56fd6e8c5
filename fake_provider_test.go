package mcworld

import (
	"sort"

	"github.com/blockvault/mcworld/chunk"
)

// fakeProvider is an in-memory Provider used to exercise World's cache and
// translation logic without involving package mcdb or real disk I/O.
type fakeProvider struct {
	records map[SubchunkPos]*chunk.Subchunk
	closed  bool
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{records: make(map[SubchunkPos]*chunk.Subchunk)}
}

func (p *fakeProvider) LoadSubchunk(pos SubchunkPos) (*chunk.Subchunk, error) {
	return p.records[pos], nil
}

func (p *fakeProvider) SaveSubchunk(pos SubchunkPos, sub *chunk.Subchunk) error {
	p.records[pos] = sub
	return nil
}

func (p *fakeProvider) DeleteSubchunk(pos SubchunkPos) error {
	delete(p.records, pos)
	return nil
}

func (p *fakeProvider) IterSubchunkPositions() SubchunkPositionIterator {
	positions := make([]SubchunkPos, 0, len(p.records))
	for pos := range p.records {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if a.Dimension != b.Dimension {
			return a.Dimension < b.Dimension
		}
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.Y < b.Y
	})
	return &fakeIterator{positions: positions}
}

func (p *fakeProvider) Close() error {
	p.closed = true
	return nil
}

type fakeIterator struct {
	positions []SubchunkPos
	i         int
}

func (it *fakeIterator) Next() (pos SubchunkPos, ok bool, err error) {
	if it.i >= len(it.positions) {
		return SubchunkPos{}, false, nil
	}
	pos = it.positions[it.i]
	it.i++
	return pos, true, nil
}

func (it *fakeIterator) Release() {}

// singleStorageSubchunk returns a Subchunk with a single layer filled
// uniformly with the named block (val 0) and no second layer, as produced by a chunk that never had
// waterlogging or similar overlay state recorded on disk.
func singleStorageSubchunk(name string) *chunk.Subchunk {
	return &chunk.Subchunk{Storages: []chunk.BlockStorage{
		{Palette: []chunk.PaletteEntry{{Name: name}}},
	}}
}
