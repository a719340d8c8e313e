// Package world implements the chunk world manager: an unbounded 3D chunk
// index streamed around a moving view centre, with the neighbour notification
// protocol that keeps derived per-chunk state (face culling meshes) correct
// as chunks appear and disappear.
package world

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brentp/intintmap"
	"github.com/stonebound/voxelterra/world/block"
	"github.com/stonebound/voxelterra/world/chunk"
)

// World owns the chunk index and all chunk lifetimes. A chunk position is
// present in the index if and only if a live, fully generated chunk exists
// for it: chunks are inserted only once their buffers are complete, so
// readers never observe a partially generated chunk.
//
// All index mutation happens under the world's mutex from the goroutine
// calling EnsureRegionLoaded or EvictOutsideRegion; generator workers only
// ever fill chunks that are not yet published.
type World struct {
	conf Config

	queue   chan generationTask
	closing chan struct{}
	running sync.WaitGroup
	o       sync.Once

	mu     sync.Mutex
	chunks map[ChunkPos]*chunk.Chunk

	// heights caches the world-space surface height per (x, z) column, keyed
	// by the packed column coordinates. The cache is rebuilt from scratch
	// whenever the resident chunk set or a block changes.
	heights *intintmap.Map

	// saturation counts how often generation work had to run inline because
	// the worker queue was full. Used to rate-limit backpressure warnings so
	// operators can tune queue and worker sizes.
	saturation        atomic.Uint64
	lastSaturationLog atomic.Uint64
}

// generationTask instructs a generator worker to produce the chunk at pos and
// place it in res[idx]. The task's WaitGroup is decremented once the slot is
// filled (or abandoned due to shutdown).
type generationTask struct {
	pos ChunkPos
	res []*chunk.Chunk
	idx int
	wg  *sync.WaitGroup
}

// noSurface is the cached marker for columns without any non-air block.
const noSurface = math.MinInt64

// EnsureRegionLoaded loads or generates every chunk in the view window
// around centre that is not yet resident. The window spans
// [-ViewDistance, ViewDistance) on the horizontal axes and
// [-VerticalViewDistance, VerticalViewDistance) vertically, intersected with
// the world's vertical range.
//
// Generation is fanned out across the generator workers; the resulting
// chunks are inserted into the index, and their resident neighbours
// notified, only from this call. Re-invoking with the same centre performs
// no redundant generation. The number of newly resident chunks is returned.
func (w *World) EnsureRegionLoaded(centre ChunkPos) int {
	w.mu.Lock()
	var missing []ChunkPos
	w.regionPositions(centre, func(pos ChunkPos) {
		if _, ok := w.chunks[pos]; !ok {
			missing = append(missing, pos)
		}
	})
	w.mu.Unlock()

	if len(missing) == 0 {
		return 0
	}

	res := make([]*chunk.Chunk, len(missing))
	var wg sync.WaitGroup
	for i, pos := range missing {
		wg.Add(1)
		task := generationTask{pos: pos, res: res, idx: i, wg: &wg}
		select {
		case w.queue <- task:
		default:
			// Queue full: run the task inline rather than blocking on a
			// worker, so a saturated queue degrades throughput, not liveness.
			w.handleGeneratorBackpressure()
			w.runGenerationTask(task)
		}
	}
	wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	inserted := 0
	for i, pos := range missing {
		c := res[i]
		if c == nil {
			// Abandoned due to shutdown or a generator panic.
			continue
		}
		w.chunks[pos] = c
		w.notifyNeighbours(pos)
		inserted++
	}
	if inserted > 0 {
		w.resetHeights()
	}
	return inserted
}

// EvictOutsideRegion removes every resident chunk outside the view window
// around centre, notifying each removed chunk's remaining neighbours before
// the chunk is destroyed. Evicted chunks are handed to the provider for
// storage. The number of evicted chunks is returned.
func (w *World) EvictOutsideRegion(centre ChunkPos) int {
	type evicted struct {
		pos ChunkPos
		c   *chunk.Chunk
	}
	var out []evicted

	w.mu.Lock()
	for pos, c := range w.chunks {
		if w.inRegion(pos, centre) {
			continue
		}
		delete(w.chunks, pos)
		w.notifyNeighbours(pos)
		out = append(out, evicted{pos: pos, c: c})
	}
	if len(out) > 0 {
		w.resetHeights()
	}
	w.mu.Unlock()

	for _, e := range out {
		if err := w.conf.Provider.StoreChunk(e.pos, e.c); err != nil {
			w.conf.Log.Error("store chunk: "+err.Error(), "X", e.pos[0], "Y", e.pos[1], "Z", e.pos[2])
		}
	}
	return len(out)
}

// regionPositions visits every chunk position of the view window around
// centre, clamped to the world's vertical range.
func (w *World) regionPositions(centre ChunkPos, f func(pos ChunkPos)) {
	h, v := int32(w.conf.ViewDistance), int32(w.conf.VerticalViewDistance)
	minY, maxY := w.conf.Range.minChunkY(), w.conf.Range.maxChunkY()
	for dx := -h; dx < h; dx++ {
		for dz := -h; dz < h; dz++ {
			for dy := -v; dy < v; dy++ {
				pos := centre.add(ChunkPos{dx, dy, dz})
				if pos[1] < minY || pos[1] > maxY {
					continue
				}
				f(pos)
			}
		}
	}
}

// inRegion reports whether pos lies within the view window around centre.
func (w *World) inRegion(pos, centre ChunkPos) bool {
	h, v := int32(w.conf.ViewDistance), int32(w.conf.VerticalViewDistance)
	dx, dy, dz := pos[0]-centre[0], pos[1]-centre[1], pos[2]-centre[2]
	return dx >= -h && dx < h && dz >= -h && dz < h && dy >= -v && dy < v
}

// notifyNeighbours flags the six axis-aligned neighbours of pos, where
// resident, as needing a mesh rebuild. A chunk's externally visible surface
// depends on which neighbours exist: inserting or removing the chunk at pos
// changes which faces of the neighbours must be rendered even though their
// own blocks did not change. Callers must hold w.mu.
func (w *World) notifyNeighbours(pos ChunkPos) {
	for _, face := range faces {
		if n, ok := w.chunks[pos.add(face)]; ok {
			n.MarkDirty()
		}
	}
}

// Chunk returns the resident chunk at the chunk position passed, if any.
func (w *World) Chunk(pos ChunkPos) (*chunk.Chunk, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.chunks[pos]
	return c, ok
}

// LoadedChunkCount returns the number of chunks currently resident.
func (w *World) LoadedChunkCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.chunks)
}

// Block returns the block at the world block position passed. If the chunk
// holding the position is not resident, Air is returned: absence is a
// defined sentinel, never an error.
func (w *World) Block(pos BlockPos) block.Block {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.chunks[chunkPosFromBlockPos(pos)]
	if !ok {
		return block.Air
	}
	x, y, z := localPos(pos)
	return c.Block(x, y, z)
}

// SetBlock sets the block at the world block position passed and marks the
// chunk as needing a mesh rebuild. If the chunk is not resident, the call is
// a silent no-op; callers needing confirmation must check Chunk first.
//
// Known limitation: when the edited voxel sits on a shared chunk face, the
// adjacent chunk is not flagged for a rebuild.
func (w *World) SetBlock(pos BlockPos, b block.Block) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.chunks[chunkPosFromBlockPos(pos)]
	if !ok {
		return
	}
	x, y, z := localPos(pos)
	c.SetBlock(x, y, z, b)
	c.MarkDirty()
	w.resetHeights()
}

// HighestBlock returns the world-space y of the topmost non-air block in the
// column at (x, z), scanning the resident vertical chunks from top to
// bottom. The bool returned is false if no resident chunk holds a non-air
// block there. Results are cached per column until the resident set or a
// block changes; the cache makes repeated spawn-placement queries cheap.
func (w *World) HighestBlock(x, z int) (int, bool) {
	key := int64(x)<<32 | int64(uint32(int32(z)))

	w.mu.Lock()
	defer w.mu.Unlock()
	if v, ok := w.heights.Get(key); ok {
		if v == noSurface {
			return 0, false
		}
		return int(v), true
	}

	cx, cz := int32(x>>chunkShift), int32(z>>chunkShift)
	lx, _, lz := localPos(BlockPos{x, 0, z})
	for cy := w.conf.Range.maxChunkY(); cy >= w.conf.Range.minChunkY(); cy-- {
		c, ok := w.chunks[ChunkPos{cx, cy, cz}]
		if !ok {
			continue
		}
		if y, ok := c.HighestBlock(lx, lz); ok {
			world := int(cy)*chunk.Size + y
			w.heights.Put(key, int64(world))
			return world, true
		}
	}
	w.heights.Put(key, noSurface)
	return 0, false
}

// resetHeights discards the surface height cache. Callers must hold w.mu.
func (w *World) resetHeights() {
	w.heights = intintmap.New(1024, 0.6)
}

// Close shuts the generator workers down and stores all remaining chunks to
// the provider before closing it. Close blocks until outstanding generation
// work has been drained. It is safe to call Close more than once.
func (w *World) Close() error {
	var err error
	w.o.Do(func() {
		close(w.closing)
		w.running.Wait()

		w.mu.Lock()
		chunks := w.chunks
		w.chunks = map[ChunkPos]*chunk.Chunk{}
		w.resetHeights()
		w.mu.Unlock()

		for pos, c := range chunks {
			if serr := w.conf.Provider.StoreChunk(pos, c); serr != nil {
				w.conf.Log.Error("store chunk: "+serr.Error(), "X", pos[0], "Y", pos[1], "Z", pos[2])
			}
		}
		if cerr := w.conf.Provider.Close(); cerr != nil {
			err = fmt.Errorf("close provider: %w", cerr)
		}
	})
	return err
}

// loadOrGenerate produces the chunk for pos, preferring the provider's
// stored copy over generation. Provider failures other than ErrChunkNotFound
// are logged and fall through to generation: terrain must never fail to
// appear, only degrade.
func (w *World) loadOrGenerate(pos ChunkPos) *chunk.Chunk {
	c, err := w.conf.Provider.LoadChunk(pos)
	switch {
	case err == nil:
		return c
	case errors.Is(err, ErrChunkNotFound):
	default:
		w.conf.Log.Error("load chunk: "+err.Error(), "X", pos[0], "Y", pos[1], "Z", pos[2])
	}
	c = chunk.New()
	w.conf.Generator.GenerateChunk(pos, c)
	return c
}

// generatorWorker processes generation tasks until the world closes, at
// which point it drains the queue so no waiter blocks on an unfilled slot.
func (w *World) generatorWorker() {
	defer w.running.Done()
	for {
		select {
		case task := <-w.queue:
			w.runGenerationTask(task)
		case <-w.closing:
			w.drainGenerationQueue()
			return
		}
	}
}

// runGenerationTask fills the task's result slot. The slot's WaitGroup is
// decremented even if the generator panics, so EnsureRegionLoaded never
// hangs on a lost chunk; the slot is simply left empty.
func (w *World) runGenerationTask(task generationTask) {
	defer func() {
		if r := recover(); r != nil {
			w.conf.Log.Error(
				"generate chunk: panic",
				"error", fmt.Sprint(r),
				"X", task.pos[0], "Y", task.pos[1], "Z", task.pos[2],
			)
		}
		task.wg.Done()
	}()
	task.res[task.idx] = w.loadOrGenerate(task.pos)
}

// drainGenerationQueue abandons queued tasks during shutdown, releasing
// their waiters without generating.
func (w *World) drainGenerationQueue() {
	for {
		select {
		case task := <-w.queue:
			task.wg.Done()
		default:
			return
		}
	}
}

// handleGeneratorBackpressure increments the saturation counter and emits a
// throttled warning when the generator queue overflows, giving operators
// concrete guidance on adjusting worker or queue sizes.
func (w *World) handleGeneratorBackpressure() {
	count := w.saturation.Add(1)
	now := uint64(time.Now().UnixNano())
	last := w.lastSaturationLog.Load()

	if last != 0 && time.Duration(now-last) < time.Minute {
		return
	}
	if !w.lastSaturationLog.CompareAndSwap(last, now) {
		return
	}

	w.conf.Log.Warn(
		"world generator queue saturated: chunk generation ran inline.",
		"queued_tasks", count,
		"queue_size", cap(w.queue),
		"workers", w.conf.GeneratorWorkers,
	)
}
