package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stonebound/voxelterra/world/chunk"
)

// chunkShift is the power of two matching chunk.Size, used for floor division
// of block coordinates by the chunk edge length.
const chunkShift = 4

// ChunkPos holds the position of a chunk in chunk space: one step on any axis
// is chunk.Size blocks in world space. It is the key type of the world's
// chunk index.
type ChunkPos [3]int32

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 { return p[0] }

// Y returns the Y coordinate of the chunk position.
func (p ChunkPos) Y() int32 { return p[1] }

// Z returns the Z coordinate of the chunk position.
func (p ChunkPos) Z() int32 { return p[2] }

// BlockPos holds the position of a block in world space.
type BlockPos [3]int

// X returns the X coordinate of the block position.
func (p BlockPos) X() int { return p[0] }

// Y returns the Y coordinate of the block position.
func (p BlockPos) Y() int { return p[1] }

// Z returns the Z coordinate of the block position.
func (p BlockPos) Z() int { return p[2] }

// chunkPosFromBlockPos returns the position of the chunk holding the block
// position passed. Arithmetic shifting floors correctly for negative
// coordinates.
func chunkPosFromBlockPos(p BlockPos) ChunkPos {
	return ChunkPos{int32(p[0] >> chunkShift), int32(p[1] >> chunkShift), int32(p[2] >> chunkShift)}
}

// localPos returns the coordinates of the block position within its chunk.
func localPos(p BlockPos) (x, y, z int) {
	return p[0] & (chunk.Size - 1), p[1] & (chunk.Size - 1), p[2] & (chunk.Size - 1)
}

// blockPosFromVec3 floors a world-space vector to the block containing it.
func blockPosFromVec3(v mgl64.Vec3) BlockPos {
	return BlockPos{int(math.Floor(v[0])), int(math.Floor(v[1])), int(math.Floor(v[2]))}
}

// faces holds the six axis-aligned neighbour offsets used by the neighbour
// notification protocol.
var faces = [6]ChunkPos{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// add returns the chunk position offset by o.
func (p ChunkPos) add(o ChunkPos) ChunkPos {
	return ChunkPos{p[0] + o[0], p[1] + o[1], p[2] + o[2]}
}

// Range is the inclusive vertical block range of a world. Terrain heights are
// clamped into it and chunks are only kept for vertical chunk coordinates
// intersecting it.
type Range [2]int

// Min returns the lowest block Y of the range.
func (r Range) Min() int { return r[0] }

// Max returns the highest block Y of the range.
func (r Range) Max() int { return r[1] }

// minChunkY and maxChunkY are the vertical chunk coordinates covering the
// range.
func (r Range) minChunkY() int32 { return int32(r[0] >> chunkShift) }
func (r Range) maxChunkY() int32 { return int32(r[1] >> chunkShift) }
