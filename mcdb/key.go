package mcdb

import (
	"encoding/binary"
	"fmt"

	"github.com/blockvault/mcworld"
)

// blockRecordPrefix is the tag byte every subchunk block record carries at
// the penultimate position of its key, regardless of dimension.
const blockRecordPrefix = 0x2F

// encodeKey builds the leveldb key for pos: 10 bytes for the overworld
// (x, z, prefix, subchunk_y), 14 bytes otherwise (x, z, dimension, prefix,
// subchunk_y), all little-endian.
func encodeKey(pos mcworld.SubchunkPos) []byte {
	if pos.Dimension == mcworld.Overworld {
		key := make([]byte, 10)
		binary.LittleEndian.PutUint32(key[0:4], uint32(pos.X))
		binary.LittleEndian.PutUint32(key[4:8], uint32(pos.Z))
		key[8] = blockRecordPrefix
		key[9] = pos.Y
		return key
	}
	key := make([]byte, 14)
	binary.LittleEndian.PutUint32(key[0:4], uint32(pos.X))
	binary.LittleEndian.PutUint32(key[4:8], uint32(pos.Z))
	binary.LittleEndian.PutUint32(key[8:12], uint32(pos.Dimension))
	key[12] = blockRecordPrefix
	key[13] = pos.Y
	return key
}

// decodeKey attempts to parse key as a subchunk block record. ok is false
// and err is nil when key simply isn't shaped like a block record (wrong
// length, or the wrong byte at the prefix position) — the caller should
// silently skip it, not treat it as an error. ok is true and err is non-nil
// when key is the right length and carries the prefix byte, but the
// dimension discriminant it encodes is unrecognised; this is the one
// situation in which the iterator surfaces an error.
func decodeKey(key []byte) (pos mcworld.SubchunkPos, ok bool, err error) {
	switch len(key) {
	case 10:
		if key[8] != blockRecordPrefix {
			return mcworld.SubchunkPos{}, false, nil
		}
		x := int32(binary.LittleEndian.Uint32(key[0:4]))
		z := int32(binary.LittleEndian.Uint32(key[4:8]))
		return mcworld.SubchunkPos{X: x, Z: z, Y: key[9], Dimension: mcworld.Overworld}, true, nil
	case 14:
		if key[12] != blockRecordPrefix {
			return mcworld.SubchunkPos{}, false, nil
		}
		x := int32(binary.LittleEndian.Uint32(key[0:4]))
		z := int32(binary.LittleEndian.Uint32(key[4:8]))
		dimID := binary.LittleEndian.Uint32(key[8:12])
		dim, ok := mcworld.DimensionByID(dimID)
		if !ok {
			return mcworld.SubchunkPos{}, true, fmt.Errorf("%w: unrecognised dimension id %d", ErrFormat, dimID)
		}
		return mcworld.SubchunkPos{X: x, Z: z, Y: key[13], Dimension: dim}, true, nil
	default:
		return mcworld.SubchunkPos{}, false, nil
	}
}
