package mcworld

// ChunkIterator walks every distinct ChunkPos whose subchunk_y == 0 record
// exists in the store, derived by filtering the store's raw subchunk
// iteration down to those records. A chunk with records only at other
// subchunk Y values is not yielded.
type ChunkIterator struct {
	sub SubchunkPositionIterator
}

// IterChunks returns a fresh ChunkIterator over the world's store. Callers
// must call Release when done with it.
func (w *World) IterChunks() *ChunkIterator {
	return &ChunkIterator{sub: w.store.IterSubchunkPositions()}
}

// Next advances the iterator. See SubchunkPositionIterator.Next for the
// ok/err contract; Next here additionally skips every subchunk position
// whose Y is not 0.
func (it *ChunkIterator) Next() (pos ChunkPos, ok bool, err error) {
	for {
		sp, ok, err := it.sub.Next()
		if err != nil {
			return ChunkPos{}, false, err
		}
		if !ok {
			return ChunkPos{}, false, nil
		}
		if sp.Y != 0 {
			continue
		}
		return sp.Chunk(), true, nil
	}
}

// Release frees the iterator's resources.
func (it *ChunkIterator) Release() {
	it.sub.Release()
}
