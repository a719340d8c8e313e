// Package chunk provides the dense block storage that makes up a world. A
// chunk is a fixed-size cube of voxels addressed by local coordinates.
package chunk

import (
	"fmt"
	"sync/atomic"

	"github.com/stonebound/voxelterra/world/block"
)

const (
	// Size is the edge length of a cubic chunk in voxels.
	Size = 16
	// Volume is the number of voxels held by one chunk.
	Volume = Size * Size * Size
)

// Chunk is a cube of Size³ voxels. The zero value of its buffer is all Air.
// A Chunk is owned by a single writer at a time: the generator and vegetation
// pass fill it before it is published to a world, after which all mutation
// goes through the world's SetBlock.
type Chunk struct {
	blocks [Volume]block.Block

	// dirty marks the chunk as needing a mesh rebuild. It is set when the
	// chunk's blocks change or when a direct neighbour appears or disappears,
	// since either changes which faces of this chunk are externally visible.
	dirty atomic.Bool
}

// New returns an empty chunk. A fresh chunk is marked dirty, as it always
// needs its first mesh build once published.
func New() *Chunk {
	c := &Chunk{}
	c.dirty.Store(true)
	return c
}

// index linearises local coordinates into the block buffer. Consecutive x
// values are adjacent; a step in y advances by Size and a step in z by Size².
func index(x, y, z int) int {
	return x + Size*(y+Size*z)
}

// Inside reports whether the local coordinates passed address a voxel within
// the chunk.
func Inside(x, y, z int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size && z >= 0 && z < Size
}

// Block returns the block at the local coordinates passed. The coordinates
// must be inside the chunk.
func (c *Chunk) Block(x, y, z int) block.Block {
	return c.blocks[index(x, y, z)]
}

// SetBlock sets the block at the local coordinates passed. The coordinates
// must be inside the chunk.
func (c *Chunk) SetBlock(x, y, z int, b block.Block) {
	c.blocks[index(x, y, z)] = b
}

// HighestBlock returns the local y of the topmost non-air voxel in the column
// at (x, z). The bool returned is false if the column holds only air.
func (c *Chunk) HighestBlock(x, z int) (int, bool) {
	for y := Size - 1; y >= 0; y-- {
		if c.blocks[index(x, y, z)] != block.Air {
			return y, true
		}
	}
	return 0, false
}

// Dirty reports whether the chunk needs a mesh rebuild.
func (c *Chunk) Dirty() bool {
	return c.dirty.Load()
}

// MarkDirty flags the chunk as needing a mesh rebuild.
func (c *Chunk) MarkDirty() {
	c.dirty.Store(true)
}

// ClearDirty resets the mesh rebuild flag. It is called by the mesh building
// collaborator once it has consumed the chunk.
func (c *Chunk) ClearDirty() {
	c.dirty.Store(false)
}

// chunkVersion is the serialisation version written by Encode. Bump it when
// the buffer layout or the block enumeration changes incompatibly.
const chunkVersion = 1

// Encode serialises the chunk's block buffer for storage.
func (c *Chunk) Encode() []byte {
	data := make([]byte, 1+Volume)
	data[0] = chunkVersion
	for i, b := range c.blocks {
		data[1+i] = byte(b)
	}
	return data
}

// Decode parses a chunk previously serialised with Encode. An error is
// returned if the data has an unknown version, the wrong length or holds
// block values outside the known enumeration.
func Decode(data []byte) (*Chunk, error) {
	if len(data) != 1+Volume {
		return nil, fmt.Errorf("decode chunk: %v bytes, expected %v", len(data), 1+Volume)
	}
	if data[0] != chunkVersion {
		return nil, fmt.Errorf("decode chunk: unknown version %v", data[0])
	}
	c := New()
	for i, v := range data[1:] {
		b := block.Block(v)
		if !b.Valid() {
			return nil, fmt.Errorf("decode chunk: invalid block %v at index %v", v, i)
		}
		c.blocks[i] = b
	}
	return c, nil
}
