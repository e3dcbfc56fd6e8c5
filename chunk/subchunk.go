package chunk

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// version is the only subchunk format version this library reads or writes.
// Other versions (the game has used several over its lifetime) are rejected
// outright: the spec this codec implements covers disk version 8 only.
const version = 8

// BlockStorage is one layer of one subchunk: a dense index per voxel cell
// plus the palette those indices are drawn from.
type BlockStorage struct {
	// Blocks holds one palette index per voxel, ordered by
	// 256*x + 16*z + y (all taken mod 16). Every value is < len(Palette).
	Blocks  [indexCount]uint16
	Palette []PaletteEntry
}

// Subchunk is the decoded form of one 16x16x16 on-disk subchunk record: one
// or two stacked BlockStorage layers. A single-storage Subchunk means the
// second layer is implicit air; the world view is responsible for
// materialising that, not this package.
type Subchunk struct {
	Storages []BlockStorage
}

// Decode parses a single subchunk record. It fails if the version byte is
// not 8, if the storage count is not 1 or 2, if any storage carries the
// network-format flag, has an illegal bits-per-block width, an empty
// palette, a palette index out of range, or if data is left over once the
// last palette entry has been read.
func Decode(data []byte) (*Subchunk, error) {
	r := bytes.NewReader(data)

	ver, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: reading version: %v", ErrFormat, err)
	}
	if ver != version {
		return nil, fmt.Errorf("%w: unsupported subchunk version %d", ErrFormat, ver)
	}

	numStorages, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: reading storage count: %v", ErrFormat, err)
	}
	if numStorages != 1 && numStorages != 2 {
		return nil, fmt.Errorf("%w: invalid storage count %d, want 1 or 2", ErrFormat, numStorages)
	}

	sub := &Subchunk{Storages: make([]BlockStorage, numStorages)}
	for i := range sub.Storages {
		storage, err := decodeBlockStorage(r)
		if err != nil {
			return nil, err
		}
		sub.Storages[i] = storage
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after last palette entry", ErrFormat, r.Len())
	}
	return sub, nil
}

func decodeBlockStorage(r *bytes.Reader) (BlockStorage, error) {
	format, err := r.ReadByte()
	if err != nil {
		return BlockStorage{}, fmt.Errorf("%w: reading storage format byte: %v", ErrFormat, err)
	}
	if format&1 != 0 {
		return BlockStorage{}, fmt.Errorf("%w: network-format subchunk is not supported on disk", ErrFormat)
	}
	bitsPerBlock := format >> 1
	if !legalBitWidth(bitsPerBlock) {
		return BlockStorage{}, fmt.Errorf("%w: illegal bits-per-block %d", ErrFormat, bitsPerBlock)
	}

	indices, err := unpackIndices(r, bitsPerBlock)
	if err != nil {
		return BlockStorage{}, err
	}

	var paletteLen uint32
	if err := binary.Read(r, binary.LittleEndian, &paletteLen); err != nil {
		return BlockStorage{}, fmt.Errorf("%w: reading palette length: %v", ErrFormat, err)
	}
	if paletteLen == 0 {
		return BlockStorage{}, fmt.Errorf("%w: palette is empty", ErrFormat)
	}
	if paletteLen > 1<<16 {
		return BlockStorage{}, fmt.Errorf("%w: palette of %d entries exceeds the maximum of 65536", ErrFormat, paletteLen)
	}

	dec := nbt.NewDecoderWithEncoding(r, nbt.LittleEndian)
	palette, err := decodePaletteEntries(dec, int(paletteLen))
	if err != nil {
		return BlockStorage{}, err
	}

	for _, idx := range indices {
		if int(idx) >= len(palette) {
			return BlockStorage{}, fmt.Errorf("%w: block index %d out of range for palette of %d entries", ErrFormat, idx, len(palette))
		}
	}

	var blocks [indexCount]uint16
	copy(blocks[:], indices)
	return BlockStorage{Blocks: blocks, Palette: palette}, nil
}

// Encode serialises sub as a version-8 subchunk record. It picks the
// smallest legal bits-per-block width for each layer's palette
// independently, so the two layers of a subchunk may be packed at
// different widths.
func Encode(w io.Writer, sub *Subchunk) error {
	if len(sub.Storages) != 1 && len(sub.Storages) != 2 {
		return fmt.Errorf("chunk: subchunk must have 1 or 2 storages, got %d", len(sub.Storages))
	}
	if _, err := w.Write([]byte{version, byte(len(sub.Storages))}); err != nil {
		return fmt.Errorf("writing subchunk header: %w", err)
	}
	for _, storage := range sub.Storages {
		if err := encodeBlockStorage(w, storage); err != nil {
			return err
		}
	}
	return nil
}

func encodeBlockStorage(w io.Writer, storage BlockStorage) error {
	if len(storage.Palette) == 0 {
		return fmt.Errorf("chunk: cannot encode a block storage with an empty palette")
	}
	if len(storage.Palette) > 1<<16 {
		// The world view builds this palette itself from at most 4096
		// distinct values; a palette this large indicates corrupted
		// in-memory state, not a recoverable encoding error.
		panic(fmt.Sprintf("chunk: palette of %d entries exceeds the maximum of 65536", len(storage.Palette)))
	}

	bitsPerBlock, err := bitsForPaletteSize(len(storage.Palette))
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte{bitsPerBlock << 1}); err != nil {
		return fmt.Errorf("writing storage format byte: %w", err)
	}
	if _, err := w.Write(packIndices(storage.Blocks[:], bitsPerBlock)); err != nil {
		return fmt.Errorf("writing packed indices: %w", err)
	}

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(storage.Palette)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("writing palette length: %w", err)
	}

	enc := nbt.NewEncoderWithEncoding(w, nbt.LittleEndian)
	for _, entry := range storage.Palette {
		if err := encodePaletteEntry(enc, entry); err != nil {
			return fmt.Errorf("encoding palette entry: %w", err)
		}
	}
	return nil
}
