package mcworld

import "fmt"

// ChunkPos identifies a 16x256x16 column of a world: the x/z position of
// the column in chunk units, plus the dimension it belongs to (the same
// (x,z) pair names different columns in different dimensions).
type ChunkPos struct {
	X, Z      int32
	Dimension Dimension
}

func (p ChunkPos) String() string {
	return fmt.Sprintf("ChunkPos{%d, %d, %s}", p.X, p.Z, p.Dimension)
}

// SubchunkPos identifies one 16x16x16 cell stack within a chunk: the
// chunk's (x,z), a Y index in [0,16) selecting which of the 16 stacked
// subchunks, and the dimension.
type SubchunkPos struct {
	X, Z      int32
	Y         uint8
	Dimension Dimension
}

func (p SubchunkPos) String() string {
	return fmt.Sprintf("SubchunkPos{%d, %d, y=%d, %s}", p.X, p.Z, p.Y, p.Dimension)
}

// Chunk returns the ChunkPos the subchunk belongs to.
func (p SubchunkPos) Chunk() ChunkPos {
	return ChunkPos{X: p.X, Z: p.Z, Dimension: p.Dimension}
}

// WorldPos identifies a single voxel: block-granularity x/y/z plus
// dimension. Y ranges over [0,255] — exactly the 16 subchunks stacked in a
// column.
type WorldPos struct {
	X         int32
	Y         uint8
	Z         int32
	Dimension Dimension
}

// Chunk returns the ChunkPos the voxel's column belongs to, using
// floor-division (toward negative infinity) on X and Z.
func (p WorldPos) Chunk() ChunkPos {
	return ChunkPos{X: floorDiv16(p.X), Z: floorDiv16(p.Z), Dimension: p.Dimension}
}

// Subchunk returns the SubchunkPos of the 16x16x16 cell stack containing
// the voxel.
func (p WorldPos) Subchunk() SubchunkPos {
	cp := p.Chunk()
	return SubchunkPos{X: cp.X, Z: cp.Z, Y: p.Y / 16, Dimension: p.Dimension}
}

// Neighbors returns the six face-adjacent positions of p, in a fixed
// (+x, -x, +y, -y, +z, -z) order. It is pure coordinate arithmetic — Y is
// a uint8 and wraps around, so the +y neighbor of Y=255 has Y=0 and the -y
// neighbor of Y=0 has Y=255; a caller walking neighbors near the top or
// bottom of the world must account for that itself.
func (p WorldPos) Neighbors() [6]WorldPos {
	return [6]WorldPos{
		{X: p.X + 1, Y: p.Y, Z: p.Z, Dimension: p.Dimension},
		{X: p.X - 1, Y: p.Y, Z: p.Z, Dimension: p.Dimension},
		{X: p.X, Y: p.Y + 1, Z: p.Z, Dimension: p.Dimension},
		{X: p.X, Y: p.Y - 1, Z: p.Z, Dimension: p.Dimension},
		{X: p.X, Y: p.Y, Z: p.Z + 1, Dimension: p.Dimension},
		{X: p.X, Y: p.Y, Z: p.Z - 1, Dimension: p.Dimension},
	}
}

// offset returns the index of the voxel within its subchunk's 4096-cell
// block/palette-index arrays: 256*(x mod 16) + 16*(z mod 16) + (y mod 16).
func (p WorldPos) offset() int {
	return 256*int(mod16(p.X)) + 16*int(mod16(p.Z)) + int(p.Y%16)
}

// floorDiv16 computes floor(n/16), i.e. division that rounds toward
// negative infinity rather than toward zero. This is the convention the
// on-disk chunk coordinates use: chunk_pos(-1) == -1, not 0.
func floorDiv16(n int32) int32 {
	q := n / 16
	if r := n % 16; r != 0 && n < 0 {
		return q - 1
	}
	return q
}

// mod16 returns n mod 16 in the mathematical sense, i.e. a result in
// [0,16) even for negative n.
func mod16(n int32) int32 {
	m := n % 16
	if m < 0 {
		m += 16
	}
	return m
}
