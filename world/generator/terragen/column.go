package terragen

import (
	"math"

	"github.com/stonebound/voxelterra/world/block"
	"github.com/stonebound/voxelterra/world/chunk"
	"github.com/stonebound/voxelterra/world/generator/terragen/biome"
)

// terrainHeight floors the sampled height to a block height and clamps it
// into the world's vertical range, so extreme noise output can never place
// content outside the addressable space.
func (g *Generator) terrainHeight(s HeightSample) int {
	h := int(math.Floor(s.Height))
	if h < g.conf.Range.Min() {
		h = g.conf.Range.Min()
	}
	if h > g.conf.Range.Max() {
		h = g.conf.Range.Max()
	}
	return h
}

// resolveColumn fills the vertical strip at local (x, z) of a chunk whose
// lowest voxel sits at world height baseY.
func (g *Generator) resolveColumn(c *chunk.Chunk, x, z, baseY int, s HeightSample, dominant biome.ID) {
	h := g.terrainHeight(s)
	for y := 0; y < chunk.Size; y++ {
		if b := g.blockAt(baseY+y, h, s, dominant); b != block.Air {
			c.SetBlock(x, y, z, b)
		}
	}
}

// blockAt classifies the voxel at world height y in a column with its
// surface at terrainHeight. Rules are evaluated bottom to top, first match
// wins.
func (g *Generator) blockAt(y, terrainHeight int, s HeightSample, dominant biome.ID) block.Block {
	switch {
	case y <= g.conf.BedrockDepth:
		return block.Bedrock
	case y > terrainHeight:
		return block.Air
	case y == terrainHeight:
		if s.Normalized >= g.conf.AlpineThreshold || s.Redistributed <= g.conf.SteepThreshold {
			return block.Stone
		}
		if dominant == biome.Desert {
			return block.Sand
		}
		return block.Grass
	case terrainHeight-y <= g.conf.SoilDepth:
		if dominant == biome.Desert && terrainHeight-y <= g.conf.SandDepth {
			return block.Sand
		}
		return block.Dirt
	default:
		return block.Stone
	}
}
