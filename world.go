package mcworld

import (
	"fmt"

	"github.com/blockvault/mcworld/chunk"
	"github.com/df-mc/atomic"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// World composes a raw Provider, a block-name table and a dirty chunk
// cache into the read/modify/persist primitives callers actually want:
// block-level get/set, whole-chunk add/delete, and a batched save.
//
// World is not safe for concurrent use. Exactly one logical owner should
// hold a *World at a time.
type World struct {
	conf   Config
	store  Provider
	names  *NameTable
	cache  map[ChunkPos]*Chunk // nil value = chunk scheduled for deletion.
	closed atomic.Bool
}

// New returns a World backed by store. The returned World owns store and
// will close it when Close is called.
func New(store Provider, conf ...Config) *World {
	var c Config
	if len(conf) > 0 {
		c = conf[0]
	}
	return &World{
		conf:  c,
		store: store,
		names: NewNameTable(),
		cache: make(map[ChunkPos]*Chunk),
	}
}

// BlockID interns name into the world's global block-name table, returning
// its compact id. Calling BlockID twice with the same name always returns
// the same id.
func (w *World) BlockID(name string) BlockId {
	return w.names.GetID(name)
}

// BlockName returns the name id was interned from.
func (w *World) BlockName(id BlockId) string {
	return w.names.GetName(id)
}

// GetBlock returns the BlockData at pos. A nil result with a nil error
// means the chunk containing pos does not exist on disk and has not been
// added, or has been scheduled for deletion with DeleteChunk. Absence on
// disk is never cached, so a retried GetBlock re-attempts the load.
func (w *World) GetBlock(pos WorldPos) (*BlockData, error) {
	if w.closed.Load() {
		return nil, ErrClosed
	}
	cp := pos.Chunk()
	c, cached := w.cache[cp]
	if !cached {
		loaded, err := w.loadChunk(cp)
		if err != nil {
			return nil, err
		}
		if loaded == nil {
			return nil, nil
		}
		w.cache[cp] = loaded
		c = loaded
	}
	if c == nil {
		// Scheduled for deletion: reads see it as absent until re-added.
		return nil, nil
	}
	sub := c.Subchunks[pos.Y/16]
	off := pos.offset()
	return &BlockData{Layer1: sub.Layer1[off], Layer2: sub.Layer2[off]}, nil
}

// SetBlock writes data at pos. The chunk containing pos must already be
// loaded or added (via a prior GetBlock or AddChunk); writing to
// a chunk that has never been loaded, or one scheduled for deletion, is a
// programming error and panics, since it indicates corrupted caller state
// rather than a recoverable condition.
func (w *World) SetBlock(pos WorldPos, data BlockData) error {
	if w.closed.Load() {
		return ErrClosed
	}
	cp := pos.Chunk()
	c, cached := w.cache[cp]
	if !cached || c == nil {
		panic(fmt.Sprintf("mcworld: SetBlock: chunk %s is not loaded", cp))
	}
	sub := &c.Subchunks[pos.Y/16]
	off := pos.offset()
	sub.Layer1[off] = data.Layer1
	sub.Layer2[off] = data.Layer2
	return nil
}

// AddChunk installs a freshly created, all-air chunk at pos in the cache,
// overwriting whatever was cached there before (including a prior
// scheduled deletion).
func (w *World) AddChunk(pos ChunkPos) error {
	if w.closed.Load() {
		return ErrClosed
	}
	w.cache[pos] = newAirChunk()
	return nil
}

// DeleteChunk schedules the chunk at pos for deletion. Subsequent GetBlock
// calls within it return (nil, nil) until AddChunk re-creates it. Save
// does not remove the scheduled deletion from the cache.
func (w *World) DeleteChunk(pos ChunkPos) error {
	if w.closed.Load() {
		return ErrClosed
	}
	w.cache[pos] = nil
	return nil
}

// CachedChunks returns every ChunkPos currently held in the dirty cache,
// in a deterministic (sorted) order. It does not distinguish materialised
// chunks from ones scheduled for deletion; pair it with GetBlock or direct
// inspection if that distinction matters to the caller.
func (w *World) CachedChunks() []ChunkPos {
	positions := maps.Keys(w.cache)
	slices.SortFunc(positions, func(a, b ChunkPos) int {
		if a.Dimension != b.Dimension {
			if a.Dimension < b.Dimension {
				return -1
			}
			return 1
		}
		if a.X != b.X {
			if a.X < b.X {
				return -1
			}
			return 1
		}
		if a.Z != b.Z {
			if a.Z < b.Z {
				return -1
			}
			return 1
		}
		return 0
	})
	return positions
}

// Save walks the dirty cache and writes every entry back to the store: a
// materialised chunk as 16 freshly encoded subchunks, a chunk scheduled for
// deletion as 16 deletes. Save is not atomic — it issues puts and deletes
// one at a time in cache order, and a failure partway through leaves
// whatever was already written in place. Save does not clear the cache.
func (w *World) Save() error {
	if w.closed.Load() {
		return ErrClosed
	}
	positions := w.CachedChunks()
	written, deleted := 0, 0
	for _, cp := range positions {
		c := w.cache[cp]
		if c == nil {
			if err := w.deleteChunkRecords(cp); err != nil {
				return err
			}
			deleted++
			continue
		}
		if err := w.saveChunkRecords(cp, c); err != nil {
			return err
		}
		written++
	}
	w.conf.log().Debugf("mcworld: save: wrote %d chunks, deleted %d chunks", written, deleted)
	return nil
}

// Close closes the underlying Provider. It does not implicitly Save;
// callers that want pending mutations persisted must Save before Close.
func (w *World) Close() error {
	if w.closed.Swap(true) {
		return ErrClosed
	}
	return w.store.Close()
}

func (w *World) loadChunk(cp ChunkPos) (*Chunk, error) {
	pos0 := SubchunkPos{X: cp.X, Z: cp.Z, Y: 0, Dimension: cp.Dimension}
	raw0, err := w.store.LoadSubchunk(pos0)
	if err != nil {
		return nil, fmt.Errorf("mcworld: load chunk %s: %w", cp, err)
	}
	if raw0 == nil {
		return nil, nil
	}

	c := &Chunk{}
	if err := w.translateInto(c, 0, raw0); err != nil {
		return nil, fmt.Errorf("mcworld: load chunk %s: %w", cp, err)
	}
	for sy := uint8(1); sy < 16; sy++ {
		pos := SubchunkPos{X: cp.X, Z: cp.Z, Y: sy, Dimension: cp.Dimension}
		raw, err := w.store.LoadSubchunk(pos)
		if err != nil {
			return nil, fmt.Errorf("mcworld: load chunk %s: %w", cp, err)
		}
		if raw == nil {
			w.conf.log().Debugf("mcworld: subchunk %s missing, materialising as air", pos)
			c.Subchunks[sy] = airSubchunk()
			continue
		}
		if err := w.translateInto(c, sy, raw); err != nil {
			return nil, fmt.Errorf("mcworld: load chunk %s: %w", cp, err)
		}
	}
	return c, nil
}

// translateInto resolves raw's palette(s) through the global name table and
// stores the resulting cells into c.Subchunks[sy]. A subchunk with only one
// storage has its second layer materialised as air.
func (w *World) translateInto(c *Chunk, sy uint8, raw *chunk.Subchunk) error {
	var sub WorldSubchunk
	layer1, err := w.translateStorage(raw.Storages[0])
	if err != nil {
		return err
	}
	sub.Layer1 = layer1
	if len(raw.Storages) == 2 {
		layer2, err := w.translateStorage(raw.Storages[1])
		if err != nil {
			return err
		}
		sub.Layer2 = layer2
	} else {
		for i := range sub.Layer2 {
			sub.Layer2[i] = AirInfo
		}
	}
	c.Subchunks[sy] = sub
	return nil
}

func (w *World) translateStorage(s chunk.BlockStorage) ([4096]BlockInfo, error) {
	ids := make([]BlockId, len(s.Palette))
	for i, e := range s.Palette {
		ids[i] = w.names.GetID(e.Name)
	}
	var out [4096]BlockInfo
	for i, idx := range s.Blocks {
		out[i] = BlockInfo{ID: ids[idx], Val: uint16(s.Palette[idx].Val)}
	}
	return out, nil
}

func (w *World) deleteChunkRecords(cp ChunkPos) error {
	for sy := uint8(0); sy < 16; sy++ {
		pos := SubchunkPos{X: cp.X, Z: cp.Z, Y: sy, Dimension: cp.Dimension}
		if err := w.store.DeleteSubchunk(pos); err != nil {
			return fmt.Errorf("mcworld: save: delete %s: %w", pos, err)
		}
	}
	return nil
}

func (w *World) saveChunkRecords(cp ChunkPos, c *Chunk) error {
	for sy := uint8(0); sy < 16; sy++ {
		raw := buildRawSubchunk(w.names, c.Subchunks[sy])
		pos := SubchunkPos{X: cp.X, Z: cp.Z, Y: sy, Dimension: cp.Dimension}
		if err := w.store.SaveSubchunk(pos, raw); err != nil {
			return fmt.Errorf("mcworld: save: write %s: %w", pos, err)
		}
	}
	return nil
}

// buildRawSubchunk rebuilds a fresh, minimal palette per layer from the set
// of distinct BlockInfo values actually present in it. The resulting
// palette order has no relationship to whatever palette the subchunk was
// last loaded with; any deterministic order is acceptable, since nothing
// downstream depends on palette index stability across a save.
func buildRawSubchunk(names *NameTable, sub WorldSubchunk) *chunk.Subchunk {
	return &chunk.Subchunk{Storages: []chunk.BlockStorage{
		buildStorage(names, sub.Layer1),
		buildStorage(names, sub.Layer2),
	}}
}

func buildStorage(names *NameTable, layer [4096]BlockInfo) chunk.BlockStorage {
	indexOf := make(map[BlockInfo]int, 16)
	var palette []chunk.PaletteEntry
	var blocks [4096]uint16
	for i, info := range layer {
		idx, ok := indexOf[info]
		if !ok {
			idx = len(palette)
			indexOf[info] = idx
			palette = append(palette, chunk.PaletteEntry{
				Name: names.GetName(info.ID),
				Val:  int16(info.Val),
			})
		}
		blocks[i] = uint16(idx)
	}
	return chunk.BlockStorage{Blocks: blocks, Palette: palette}
}
