package chunkdb

import (
	"errors"
	"testing"

	"github.com/stonebound/voxelterra/world"
	"github.com/stonebound/voxelterra/world/block"
	"github.com/stonebound/voxelterra/world/chunk"
)

func openTestDB(t *testing.T, dir string) *DB {
	t.Helper()
	db, err := Config{}.Open(dir)
	if err != nil {
		t.Fatalf("open chunk db: %v", err)
	}
	return db
}

func TestStoreLoadRoundTrip(t *testing.T) {
	db := openTestDB(t, t.TempDir())
	defer db.Close()

	c := chunk.New()
	c.SetBlock(1, 2, 3, block.Grass)
	c.SetBlock(15, 15, 15, block.OakLog)
	pos := world.ChunkPos{4, 1, -9}

	if err := db.StoreChunk(pos, c); err != nil {
		t.Fatalf("store chunk: %v", err)
	}
	loaded, err := db.LoadChunk(pos)
	if err != nil {
		t.Fatalf("load chunk: %v", err)
	}
	if b := loaded.Block(1, 2, 3); b != block.Grass {
		t.Errorf("loaded block %v, want grass", b)
	}
	if b := loaded.Block(15, 15, 15); b != block.OakLog {
		t.Errorf("loaded block %v, want oak log", b)
	}
}

func TestLoadMissingChunk(t *testing.T) {
	db := openTestDB(t, t.TempDir())
	defer db.Close()

	if _, err := db.LoadChunk(world.ChunkPos{7, 0, 7}); !errors.Is(err, world.ErrChunkNotFound) {
		t.Errorf("load of missing chunk: %v, want ErrChunkNotFound", err)
	}
}

func TestWorldIDStableAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	db := openTestDB(t, dir)
	id := db.ID()
	c := chunk.New()
	c.SetBlock(0, 0, 0, block.Bedrock)
	pos := world.ChunkPos{0, 0, 0}
	if err := db.StoreChunk(pos, c); err != nil {
		t.Fatalf("store chunk: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close chunk db: %v", err)
	}

	db2 := openTestDB(t, dir)
	defer db2.Close()
	if db2.ID() != id {
		t.Errorf("world id changed across reopen: %v != %v", db2.ID(), id)
	}
	loaded, err := db2.LoadChunk(pos)
	if err != nil {
		t.Fatalf("load chunk after reopen: %v", err)
	}
	if b := loaded.Block(0, 0, 0); b != block.Bedrock {
		t.Errorf("persisted block %v, want bedrock", b)
	}
}

func TestChunkKeyDistinctPerAxis(t *testing.T) {
	seen := map[string]world.ChunkPos{}
	for _, pos := range []world.ChunkPos{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {-1, 0, 0}, {0, -1, 0}, {256, 0, 0}, {0, 0, 256},
	} {
		key := string(chunkKey(pos))
		if prev, ok := seen[key]; ok {
			t.Fatalf("positions %v and %v share the key %q", prev, pos, key)
		}
		seen[key] = pos
	}
}
