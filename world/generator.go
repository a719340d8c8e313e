package world

import "github.com/stonebound/voxelterra/world/chunk"

// Generator fills chunks with blocks. Implementations must be safe for
// concurrent calls: the world invokes GenerateChunk from multiple generator
// workers at once, each on a distinct chunk.
type Generator interface {
	// GenerateChunk generates the chunk at the chunk position passed. The
	// chunk is not yet published to the world, so the generator is its sole
	// writer.
	GenerateChunk(pos ChunkPos, c *chunk.Chunk)
}

// NopGenerator is a Generator that generates chunks completely empty.
type NopGenerator struct{}

// GenerateChunk ...
func (NopGenerator) GenerateChunk(ChunkPos, *chunk.Chunk) {}
