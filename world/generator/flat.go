// Package generator provides simple world generators complementing the full
// terrain engine in terragen.
package generator

import (
	"github.com/stonebound/voxelterra/world"
	"github.com/stonebound/voxelterra/world/block"
	"github.com/stonebound/voxelterra/world/chunk"
)

// Flat generates a world of horizontal layers: layer i is placed at world
// height i, everything above is air. It is predictable everywhere, which
// makes it the generator of choice for world manager tests.
type Flat struct {
	layers []block.Block
}

// NewFlat creates a Flat generator from the layers passed, ordered bottom to
// top starting at world height 0.
func NewFlat(layers ...block.Block) Flat {
	return Flat{layers: layers}
}

// GenerateChunk ...
func (f Flat) GenerateChunk(pos world.ChunkPos, c *chunk.Chunk) {
	baseY := int(pos.Y()) * chunk.Size
	for y := 0; y < chunk.Size; y++ {
		wy := baseY + y
		if wy < 0 || wy >= len(f.layers) {
			continue
		}
		b := f.layers[wy]
		if b == block.Air {
			continue
		}
		for x := 0; x < chunk.Size; x++ {
			for z := 0; z < chunk.Size; z++ {
				c.SetBlock(x, y, z, b)
			}
		}
	}
}
