package mcworld

// WorldSubchunk is the in-memory, fully translated form of one subchunk
// layer pair: every cell already resolved to a BlockInfo, rather than a
// palette index. The world view builds this eagerly on load because
// downstream bulk scans benefit from uniform cells far more often than they
// benefit from the smaller, lazily-translated palette representation.
type WorldSubchunk struct {
	Layer1, Layer2 [4096]BlockInfo
}

// airSubchunk returns a WorldSubchunk with both layers filled with air,
// used both for a freshly added chunk and for any subchunk missing from an
// otherwise-present chunk on disk.
func airSubchunk() WorldSubchunk {
	var s WorldSubchunk
	for i := range s.Layer1 {
		s.Layer1[i] = AirInfo
		s.Layer2[i] = AirInfo
	}
	return s
}

// Chunk is the in-memory assembly of a full column: 16 stacked subchunks,
// indexed by subchunk Y.
type Chunk struct {
	Subchunks [16]WorldSubchunk
}

// newAirChunk returns a Chunk with every subchunk filled with air, as used
// by World.AddChunk.
func newAirChunk() *Chunk {
	c := &Chunk{}
	for i := range c.Subchunks {
		c.Subchunks[i] = airSubchunk()
	}
	return c
}
