// Package terragen implements the terrain synthesis engine: seeded fractal
// height sampling, biome-blended shaping parameters and column-wise block
// resolution, orchestrated into a world.Generator.
package terragen

import (
	"github.com/stonebound/voxelterra/world"
	"github.com/stonebound/voxelterra/world/chunk"
	"github.com/stonebound/voxelterra/world/generator/terragen/biome"
	"github.com/stonebound/voxelterra/world/generator/terragen/populate"
)

// biomeSeed separates the biome selection field from the terrain field so the
// two are statistically independent for any world seed.
const biomeSeed = 0x1c8f4d2b

// Config holds the tuning of a terrain generator. The zero value of every
// field selects a documented safe default in New.
type Config struct {
	// Seed selects the world. The terrain field, biome field and vegetation
	// hashing are all derived from it.
	Seed int64
	// Terrain shapes the height field. If zero, DefaultParameters is used.
	// Its Seed field is overwritten with the config's Seed.
	Terrain Parameters
	// Biomes is the biome selection field. If zero, DefaultField is used.
	// Its Seed field is derived from the config's Seed.
	Biomes biome.Field
	// BedrockDepth is the world height at and below which every voxel is
	// bedrock. SoilDepth is the dirt layer thickness below the surface and
	// SandDepth the desert sand depth measured from the surface.
	BedrockDepth int
	SoilDepth    int
	SandDepth    int
	// AlpineThreshold turns surfaces with a normalized height above it to
	// bare stone; SteepThreshold does the same below it on the redistributed
	// value, exposing stone in carved valleys.
	AlpineThreshold float64
	SteepThreshold  float64
	// Range is the world's vertical block range. Terrain heights are clamped
	// into it before any block is placed.
	Range world.Range
	// Populators run over each chunk after its blocks are complete. If nil,
	// the default oak tree pass is used.
	Populators []populate.Populator
}

// Generator generates layered open terrain. It implements world.Generator
// and is safe for concurrent use: generation is pure per chunk.
type Generator struct {
	conf       Config
	populators []populate.Populator
}

// New creates a terrain generator, filling unset config fields with their
// defaults.
func New(conf Config) *Generator {
	if conf.Terrain == (Parameters{}) {
		conf.Terrain = DefaultParameters()
	}
	conf.Terrain.Seed = conf.Seed
	if conf.Biomes == (biome.Field{}) {
		conf.Biomes = biome.DefaultField()
	}
	conf.Biomes.Seed = conf.Seed ^ biomeSeed
	if conf.BedrockDepth == 0 {
		conf.BedrockDepth = 1
	}
	if conf.SoilDepth == 0 {
		conf.SoilDepth = 4
	}
	if conf.SandDepth == 0 {
		conf.SandDepth = 3
	}
	if conf.AlpineThreshold == 0 {
		conf.AlpineThreshold = 0.62
	}
	if conf.SteepThreshold == 0 {
		conf.SteepThreshold = 0.08
	}
	if conf.Range == (world.Range{}) {
		conf.Range = world.Range{0, 255}
	}
	populators := conf.Populators
	if populators == nil {
		populators = []populate.Populator{populate.DefaultTrees(conf.Seed, conf.Biomes)}
	}
	return &Generator{conf: conf, populators: populators}
}

// GenerateChunk fills the chunk at pos column by column and then runs the
// populators over the completed buffer. Columns are independent of one
// another, so the per-column work is trivially parallelisable by generating
// multiple chunks at once.
func (g *Generator) GenerateChunk(pos world.ChunkPos, c *chunk.Chunk) {
	baseX := int(pos.X()) * chunk.Size
	baseY := int(pos.Y()) * chunk.Size
	baseZ := int(pos.Z()) * chunk.Size

	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			wx, wz := float64(baseX+x), float64(baseZ+z)

			weights := g.conf.Biomes.Sample(wx, wz)
			s := SampleHeight(wx, wz, AdjustParameters(g.conf.Terrain, weights))
			g.resolveColumn(c, x, z, baseY, s, weights.Dominant)
		}
	}

	for _, p := range g.populators {
		p.Populate(pos, c)
	}
}
