// Package chunkdb persists chunks in a leveldb key-value store, implementing
// world.Provider. Chunks loaded from the store skip generation entirely, so
// revisiting a region is cheap and deterministic edits survive eviction.
package chunkdb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/google/uuid"
	"github.com/stonebound/voxelterra/world"
	"github.com/stonebound/voxelterra/world/chunk"
)

// idKey stores the world identity record, written once when a store is
// created.
var idKey = []byte("voxelterra:id")

// Config holds the options of a chunk store.
type Config struct {
	// Log is used for non-fatal store events. If nil, slog.Default() is
	// used.
	Log *slog.Logger
}

// DB is a leveldb-backed chunk store.
type DB struct {
	conf Config
	ldb  *leveldb.DB
	id   uuid.UUID
}

// Open opens (or creates) the chunk store in the directory passed.
func (conf Config) Open(dir string) (*DB, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	ldb, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open chunk db: %w", err)
	}
	db := &DB{conf: conf, ldb: ldb}
	if err := db.loadID(); err != nil {
		_ = ldb.Close()
		return nil, err
	}
	return db, nil
}

// loadID reads the world identity record, creating one for a new store.
func (db *DB) loadID() error {
	data, err := db.ldb.Get(idKey, nil)
	switch {
	case err == nil:
		id, err := uuid.FromBytes(data)
		if err != nil {
			return fmt.Errorf("open chunk db: parse world id: %w", err)
		}
		db.id = id
		return nil
	case errors.Is(err, leveldb.ErrNotFound):
		db.id = uuid.New()
		if err := db.ldb.Put(idKey, db.id[:], nil); err != nil {
			return fmt.Errorf("open chunk db: write world id: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("open chunk db: read world id: %w", err)
	}
}

// ID returns the unique identity of the world stored in the database. It is
// stable across reopens.
func (db *DB) ID() uuid.UUID {
	return db.id
}

// LoadChunk implements world.Provider, returning world.ErrChunkNotFound for
// positions never stored.
func (db *DB) LoadChunk(pos world.ChunkPos) (*chunk.Chunk, error) {
	data, err := db.ldb.Get(chunkKey(pos), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, world.ErrChunkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load chunk %v: %w", pos, err)
	}
	c, err := chunk.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load chunk %v: %w", pos, err)
	}
	return c, nil
}

// StoreChunk implements world.Provider.
func (db *DB) StoreChunk(pos world.ChunkPos, c *chunk.Chunk) error {
	if err := db.ldb.Put(chunkKey(pos), c.Encode(), nil); err != nil {
		return fmt.Errorf("store chunk %v: %w", pos, err)
	}
	return nil
}

// Close flushes and closes the underlying database.
func (db *DB) Close() error {
	return db.ldb.Close()
}

// chunkKey builds the database key of a chunk position: a one-byte prefix
// followed by the little-endian coordinate triple.
func chunkKey(pos world.ChunkPos) []byte {
	key := make([]byte, 13)
	key[0] = 'c'
	binary.LittleEndian.PutUint32(key[1:], uint32(pos[0]))
	binary.LittleEndian.PutUint32(key[5:], uint32(pos[1]))
	binary.LittleEndian.PutUint32(key[9:], uint32(pos[2]))
	return key
}
