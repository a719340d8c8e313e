package populate

import (
	"github.com/segmentio/fasthash/fnv1a"
	"github.com/stonebound/voxelterra/world"
	"github.com/stonebound/voxelterra/world/block"
	"github.com/stonebound/voxelterra/world/chunk"
	"github.com/stonebound/voxelterra/world/generator/terragen/biome"
)

// canopyLayers is the number of leaf layers stacked above the trunk top;
// canopyRadii are their diamond footprint radii from bottom to top.
const canopyLayers = 3

var canopyRadii = [canopyLayers]int{2, 2, 1}

// Trees stamps oak trees onto flat grass patches. Placement is fully
// deterministic per world seed: each column is accepted or rejected by a
// hash of its world coordinates, thinned further by a spacing grid and a
// dryness filter, and only grows on a 2×2 flat grass patch.
//
// Canopy voxels outside the local chunk are silently skipped; the interior
// margin keeps that loss to the rare tree right at the margin edge.
type Trees struct {
	// Seed feeds the per-column acceptance hash.
	Seed int64
	// Spacing aligns candidate columns to a world-coordinate grid on both
	// axes.
	Spacing int
	// Margin is the number of columns reserved at each chunk edge so a
	// canopy never needs cross-chunk writes.
	Margin int
	// Acceptance is the percentage of hash values that pass the density
	// filter; the remainder of columns are skipped.
	Acceptance uint64
	// DryThreshold rejects columns whose blended desert weight exceeds it.
	DryThreshold float64
	// Field is the biome field consulted for the dryness filter.
	Field biome.Field
}

// DefaultTrees returns the tree pass with its documented defaults: roughly
// one candidate in five passes the density hash before spacing and biome
// filters apply.
func DefaultTrees(seed int64, field biome.Field) Trees {
	return Trees{
		Seed:         seed,
		Spacing:      3,
		Margin:       2,
		Acceptance:   22,
		DryThreshold: 0.55,
		Field:        field,
	}
}

// Populate scans the chunk's interior columns and grows a tree on every
// column passing all filters.
func (t Trees) Populate(pos world.ChunkPos, c *chunk.Chunk) {
	baseX := int(pos.X()) * chunk.Size
	baseZ := int(pos.Z()) * chunk.Size

	for x := t.Margin; x < chunk.Size-t.Margin; x++ {
		for z := t.Margin; z < chunk.Size-t.Margin; z++ {
			wx, wz := baseX+x, baseZ+z

			h, ok := t.accept(wx, wz)
			if !ok {
				continue
			}
			if floorMod(wx, t.Spacing) != 0 || floorMod(wz, t.Spacing) != 0 {
				continue
			}
			if t.Field.Sample(float64(wx), float64(wz)).Desert > t.DryThreshold {
				continue
			}
			y, ok := t.flatGrassPatch(c, x, z)
			if !ok {
				continue
			}

			// The trunk length is derived from the same column hash, keeping
			// tree shapes stable for a seed.
			trunk := 4 + int((h/100)%3)
			if y <= 0 || y+trunk+canopyLayers >= chunk.Size {
				// The tree would poke out of the chunk top, or the surface
				// sits at the chunk floor.
				continue
			}
			t.grow(c, x, y, z, trunk)
		}
	}
}

// accept hashes the column's world coordinates with the seed and applies the
// density threshold. The hash is returned for reuse in shaping the tree.
func (t Trees) accept(wx, wz int) (uint64, bool) {
	h := fnv1a.Init64
	h = fnv1a.AddUint64(h, uint64(int64(wx)))
	h = fnv1a.AddUint64(h, uint64(int64(wz)))
	h = fnv1a.AddUint64(h, uint64(t.Seed))
	return h, h%100 < t.Acceptance
}

// flatGrassPatch verifies the 2×2 patch anchored at local (x, z): the
// topmost non-air, non-leaf block of all four columns must be grass at one
// identical height, which is returned.
func (Trees) flatGrassPatch(c *chunk.Chunk, x, z int) (int, bool) {
	height := -1
	for dx := 0; dx <= 1; dx++ {
		for dz := 0; dz <= 1; dz++ {
			y, b, ok := surface(c, x+dx, z+dz)
			if !ok || b != block.Grass {
				return 0, false
			}
			if height == -1 {
				height = y
			} else if y != height {
				return 0, false
			}
		}
	}
	return height, true
}

// surface returns the topmost block in the local column that is not air and
// not leaves, along with its height.
func surface(c *chunk.Chunk, x, z int) (int, block.Block, bool) {
	for y := chunk.Size - 1; y >= 0; y-- {
		if b := c.Block(x, y, z); !b.Replaceable() {
			return y, b, true
		}
	}
	return 0, block.Air, false
}

// grow places the trunk directly above the surface voxel and the canopy
// layers above the trunk top. Leaves are written only into air; trunk logs
// may replace air or leaves of an earlier tree, never terrain.
func (t Trees) grow(c *chunk.Chunk, x, y, z, trunk int) {
	for i := 1; i <= trunk; i++ {
		if c.Block(x, y+i, z).Replaceable() {
			c.SetBlock(x, y+i, z, block.OakLog)
		}
	}

	top := y + trunk
	for layer, r := range canopyRadii {
		ly := top + 1 + layer
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				if abs(dx)+abs(dz) > r {
					continue
				}
				px, pz := x+dx, z+dz
				if !chunk.Inside(px, ly, pz) {
					continue
				}
				if c.Block(px, ly, pz) == block.Air {
					c.SetBlock(px, ly, pz, block.OakLeaves)
				}
			}
		}
	}
}
