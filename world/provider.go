package world

import (
	"errors"

	"github.com/stonebound/voxelterra/world/chunk"
)

// ErrChunkNotFound is returned by a Provider's LoadChunk when no chunk is
// stored at a position, signalling the world to generate it instead.
var ErrChunkNotFound = errors.New("chunk not found")

// Provider loads and stores chunks, typically backed by an on-disk store.
// Worlds call LoadChunk before generating and StoreChunk when chunks are
// evicted or the world closes. Implementations must be safe for concurrent
// LoadChunk calls.
type Provider interface {
	LoadChunk(pos ChunkPos) (*chunk.Chunk, error)
	StoreChunk(pos ChunkPos, c *chunk.Chunk) error
	Close() error
}

// NopProvider is a Provider that stores nothing: every chunk is generated
// anew and evicted chunks are discarded.
type NopProvider struct{}

// LoadChunk ...
func (NopProvider) LoadChunk(ChunkPos) (*chunk.Chunk, error) { return nil, ErrChunkNotFound }

// StoreChunk ...
func (NopProvider) StoreChunk(ChunkPos, *chunk.Chunk) error { return nil }

// Close ...
func (NopProvider) Close() error { return nil }
