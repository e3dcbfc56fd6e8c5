package chunk

import (
	"encoding/binary"
	"fmt"
	"io"
)

// indexCount is the number of voxel cells packed per block storage: the
// 16x16x16 cells of a single subchunk layer.
const indexCount = 4096

// validBitWidths holds the legal bits-per-block widths for a packed index
// stream, in ascending order. 7 and 9-15 are deliberately absent: they pack
// no cleaner than the neighbouring power-of-two-friendly width and the
// format never emits them.
var validBitWidths = [...]uint8{1, 2, 3, 4, 5, 6, 8, 16}

// bitsForPaletteSize returns the smallest legal bits-per-block width b such
// that 2^b >= n, the number of distinct entries in a palette.
func bitsForPaletteSize(n int) (uint8, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: palette must have at least one entry", ErrFormat)
	}
	if n > 1<<16 {
		// A palette this large can never be indexed by any legal width;
		// this is a corrupted-state condition, not a recoverable format
		// error, since the caller built the palette itself.
		panic(fmt.Sprintf("chunk: palette of %d entries exceeds the maximum of 65536", n))
	}
	for _, b := range validBitWidths {
		if uint64(1)<<b >= uint64(n) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: no legal bits-per-block width fits a palette of %d entries", ErrFormat, n)
}

// indicesPerWord returns how many palette indices of the given width fit in
// one 32-bit word.
func indicesPerWord(bitsPerBlock uint8) int {
	return 32 / int(bitsPerBlock)
}

// packedWordCount returns the number of 32-bit words needed to hold
// indexCount indices packed at the given width.
func packedWordCount(bitsPerBlock uint8) int {
	perWord := indicesPerWord(bitsPerBlock)
	return (indexCount + perWord - 1) / perWord
}

// packedByteLen returns the number of bytes the packed index stream occupies
// on disk for the given width.
func packedByteLen(bitsPerBlock uint8) int {
	return packedWordCount(bitsPerBlock) * 4
}

// packIndices serialises indices (exactly indexCount of them) into a stream
// of 32-bit little-endian words at the given width. Indices are packed
// low-bits-first within each word: the first logical index occupies the
// lowest bitsPerBlock bits of the first word, the second the next
// bitsPerBlock bits, and so on. Bits beyond the last used index in the final
// word are left zero.
func packIndices(indices []uint16, bitsPerBlock uint8) []byte {
	perWord := indicesPerWord(bitsPerBlock)
	words := make([]uint32, packedWordCount(bitsPerBlock))
	for i, idx := range indices {
		w := i / perWord
		shift := uint(i%perWord) * uint(bitsPerBlock)
		words[w] |= uint32(idx) << shift
	}
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}

// unpackIndices reads a packed index stream at the given width from r,
// consuming exactly packedByteLen(bitsPerBlock) bytes, and returns the
// indexCount decoded indices. Trailing unused slots in the last word are
// discarded.
func unpackIndices(r io.Reader, bitsPerBlock uint8) ([]uint16, error) {
	data := make([]byte, packedByteLen(bitsPerBlock))
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: reading packed indices (width %d): %v", ErrFormat, bitsPerBlock, err)
	}
	perWord := indicesPerWord(bitsPerBlock)
	mask := uint32(1)<<bitsPerBlock - 1
	out := make([]uint16, indexCount)
	for i := range out {
		word := binary.LittleEndian.Uint32(data[(i/perWord)*4:])
		shift := uint(i%perWord) * uint(bitsPerBlock)
		out[i] = uint16((word >> shift) & mask)
	}
	return out, nil
}

// legalBitWidth reports whether b is one of the widths the format allows.
func legalBitWidth(b uint8) bool {
	for _, v := range validBitWidths {
		if v == b {
			return true
		}
	}
	return false
}
