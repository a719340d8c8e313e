package populate

import (
	"bytes"
	"testing"

	"github.com/stonebound/voxelterra/world"
	"github.com/stonebound/voxelterra/world/block"
	"github.com/stonebound/voxelterra/world/chunk"
	"github.com/stonebound/voxelterra/world/generator/terragen/biome"
)

// grassPlane builds a chunk whose every column is dirt up to height h-1 with
// grass at h.
func grassPlane(h int) *chunk.Chunk {
	c := chunk.New()
	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			for y := 0; y < h; y++ {
				c.SetBlock(x, y, z, block.Dirt)
			}
			c.SetBlock(x, h, z, block.Grass)
		}
	}
	return c
}

// denseTrees accepts every candidate column, so placement depends only on the
// terrain underneath.
func denseTrees() Trees {
	return Trees{
		Seed:         1,
		Spacing:      1,
		Margin:       2,
		Acceptance:   100,
		DryThreshold: 1.1, // weights are normalized, so this never rejects
		Field:        biome.DefaultField(),
	}
}

func countBlocks(c *chunk.Chunk, b block.Block) int {
	n := 0
	for x := 0; x < chunk.Size; x++ {
		for y := 0; y < chunk.Size; y++ {
			for z := 0; z < chunk.Size; z++ {
				if c.Block(x, y, z) == b {
					n++
				}
			}
		}
	}
	return n
}

func TestPopulateGrowsTrees(t *testing.T) {
	c := grassPlane(5)
	denseTrees().Populate(world.ChunkPos{0, 0, 0}, c)

	if n := countBlocks(c, block.OakLog); n == 0 {
		t.Fatal("no trunks grown on a flat grass plane")
	}
	if n := countBlocks(c, block.OakLeaves); n == 0 {
		t.Fatal("no canopy grown on a flat grass plane")
	}
	// The first interior anchor has a flat grass patch under it and every
	// candidate is accepted, so its trunk must exist.
	if b := c.Block(2, 6, 2); b != block.OakLog {
		t.Errorf("block above the first anchor is %v, want oak log", b)
	}
	// Terrain is never replaced by tree growth.
	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			if b := c.Block(x, 5, z); b != block.Grass {
				t.Fatalf("surface at (%v, %v) overwritten with %v", x, z, b)
			}
			for y := 0; y < 5; y++ {
				if b := c.Block(x, y, z); b != block.Dirt {
					t.Fatalf("soil at (%v, %v, %v) overwritten with %v", x, y, z, b)
				}
			}
		}
	}
}

func TestPopulateDeterministic(t *testing.T) {
	a, b := grassPlane(5), grassPlane(5)
	tr := denseTrees()
	pos := world.ChunkPos{3, 0, -7}
	tr.Populate(pos, a)
	tr.Populate(pos, b)
	if !bytes.Equal(a.Encode(), b.Encode()) {
		t.Error("tree population not deterministic")
	}
}

func TestPopulateRequiresFlatGrassPatch(t *testing.T) {
	// Stone surface with a single 2x2 grass patch: exactly one anchor
	// qualifies.
	c := chunk.New()
	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			for y := 0; y < 5; y++ {
				c.SetBlock(x, y, z, block.Stone)
			}
			c.SetBlock(x, 5, z, block.Stone)
		}
	}
	for _, p := range [][2]int{{4, 4}, {5, 4}, {4, 5}, {5, 5}} {
		c.SetBlock(p[0], 5, p[1], block.Grass)
	}
	denseTrees().Populate(world.ChunkPos{0, 0, 0}, c)

	if b := c.Block(4, 6, 4); b != block.OakLog {
		t.Errorf("block above the grass patch is %v, want oak log", b)
	}
	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			if c.Block(x, 6, z) == block.OakLog && !(x == 4 && z == 4) {
				t.Errorf("trunk base at (%v, %v) outside the grass patch", x, z)
			}
		}
	}

	// Raising one corner breaks the flatness requirement.
	c2 := chunk.New()
	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			for y := 0; y <= 5; y++ {
				c2.SetBlock(x, y, z, block.Dirt)
			}
			c2.SetBlock(x, 5, z, block.Grass)
		}
	}
	c2.SetBlock(5, 6, 5, block.Grass)
	denseTrees().Populate(world.ChunkPos{0, 0, 0}, c2)
	if c2.Block(4, 6, 4) == block.OakLog || c2.Block(4, 7, 4) == block.OakLog {
		t.Error("tree grown on an uneven patch")
	}
}

func TestPopulateCanopyShape(t *testing.T) {
	c := chunk.New()
	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			c.SetBlock(x, 0, z, block.Dirt)
			c.SetBlock(x, 1, z, block.Grass)
		}
	}
	tr := denseTrees()
	tr.Populate(world.ChunkPos{0, 0, 0}, c)

	// Recompute the trunk length of the tree at the central anchor from the
	// same column hash the pass uses.
	h, ok := tr.accept(8, 8)
	if !ok {
		t.Fatal("acceptance 100 rejected a column")
	}
	trunk := 4 + int((h/100)%3)
	for i := 1; i <= trunk; i++ {
		if b := c.Block(8, 1+i, 8); b != block.OakLog {
			t.Fatalf("trunk voxel %v is %v, want oak log", i, b)
		}
	}
	// Every cell of the diamond footprint holds leaves, or a log where a
	// neighbouring tree's trunk claimed the cell first.
	top := 1 + trunk
	for layer, r := range canopyRadii {
		ly := top + 1 + layer
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				if abs(dx)+abs(dz) > r {
					continue
				}
				if b := c.Block(8+dx, ly, 8+dz); b != block.OakLeaves && b != block.OakLog {
					t.Errorf("canopy layer %v missing leaves at offset (%v, %v): %v", layer, dx, dz, b)
				}
			}
		}
	}
}

func TestPopulateRejectsNearChunkTop(t *testing.T) {
	// Surface so high that trunk plus canopy cannot fit below the chunk top.
	c := grassPlane(9)
	denseTrees().Populate(world.ChunkPos{0, 0, 0}, c)
	if n := countBlocks(c, block.OakLog); n != 0 {
		t.Errorf("%v trunk voxels grown with no vertical room", n)
	}
}

func TestPopulateDensityZero(t *testing.T) {
	c := grassPlane(5)
	tr := denseTrees()
	tr.Acceptance = 0
	tr.Populate(world.ChunkPos{0, 0, 0}, c)
	if n := countBlocks(c, block.OakLog); n != 0 {
		t.Errorf("%v trunk voxels grown with zero acceptance", n)
	}
}

func TestPopulateDrynessFilter(t *testing.T) {
	c := grassPlane(5)
	tr := denseTrees()
	tr.DryThreshold = -1 // any desert weight, including zero, now rejects
	tr.Populate(world.ChunkPos{0, 0, 0}, c)
	if n := countBlocks(c, block.OakLog); n != 0 {
		t.Errorf("%v trunk voxels grown past the dryness filter", n)
	}
}

func TestFloorMod(t *testing.T) {
	for _, tc := range []struct{ a, m, want int }{
		{5, 3, 2}, {-5, 3, 1}, {0, 3, 0}, {-3, 3, 0},
	} {
		if got := floorMod(tc.a, tc.m); got != tc.want {
			t.Errorf("floorMod(%v, %v) = %v, want %v", tc.a, tc.m, got, tc.want)
		}
	}
}
