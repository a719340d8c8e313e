// Package populate implements the second generation stage: populators that
// scan a fully generated chunk and stamp structures onto its surface.
package populate

import (
	"github.com/stonebound/voxelterra/world"
	"github.com/stonebound/voxelterra/world/chunk"
)

// Populator mutates a freshly generated chunk in place. A populator runs
// strictly after the chunk's block buffer is complete and is the chunk's
// sole writer while it runs; it never touches other chunks.
type Populator interface {
	Populate(pos world.ChunkPos, c *chunk.Chunk)
}

// floorMod returns a modulo m that is non-negative for negative a, so world
// coordinate grids extend consistently across the origin.
func floorMod(a, m int) int {
	return ((a % m) + m) % m
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
