package world

import (
	"log/slog"
	"runtime"

	"github.com/stonebound/voxelterra/world/chunk"
)

// Config contains the options of a World. After calling Config.New, the
// Config must not be modified.
type Config struct {
	// Log is the logger used for world events such as provider failures and
	// generator queue saturation. If nil, Log is set to slog.Default().
	Log *slog.Logger
	// Generator produces the blocks of newly loaded chunks. If nil, chunks
	// are generated empty (NopGenerator).
	Generator Generator
	// Provider loads chunks before generation is attempted and stores them
	// on eviction and close. If nil, NopProvider is used and nothing is
	// persisted.
	Provider Provider
	// ViewDistance is the horizontal half-extent, in chunks, of the region
	// kept resident around a view centre. The loaded window on each
	// horizontal axis is [-ViewDistance, ViewDistance).
	ViewDistance int
	// VerticalViewDistance is the vertical half-extent of the same window.
	VerticalViewDistance int
	// Range is the inclusive vertical block range of the world. Terrain
	// heights are clamped into it and no chunks are kept outside it.
	Range Range
	// GeneratorWorkers controls the number of workers generating chunks. If
	// 0 or lower, the worker count is derived from the available CPUs.
	GeneratorWorkers int
	// GeneratorQueueSize limits how many generation jobs may wait for a
	// worker. If 0 or lower, a size proportional to the worker count is
	// chosen. Saturation is logged, throttled, when the queue overflows.
	GeneratorQueueSize int
}

// New creates a World using the Config. Generator workers are started
// immediately; the World must be closed with World.Close once done with.
func (conf Config) New() *World {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Generator == nil {
		conf.Generator = NopGenerator{}
	}
	if conf.Provider == nil {
		conf.Provider = NopProvider{}
	}
	if conf.ViewDistance <= 0 {
		conf.ViewDistance = 4
	}
	if conf.VerticalViewDistance <= 0 {
		conf.VerticalViewDistance = 2
	}
	if conf.Range == (Range{}) {
		conf.Range = Range{0, 255}
	}
	if conf.GeneratorWorkers <= 0 {
		conf.GeneratorWorkers = runtime.GOMAXPROCS(0)
	}
	if conf.GeneratorQueueSize <= 0 {
		conf.GeneratorQueueSize = conf.GeneratorWorkers * 4
	}

	w := &World{
		conf:    conf,
		chunks:  make(map[ChunkPos]*chunk.Chunk),
		queue:   make(chan generationTask, conf.GeneratorQueueSize),
		closing: make(chan struct{}),
	}
	w.resetHeights()
	for i := 0; i < conf.GeneratorWorkers; i++ {
		w.running.Add(1)
		go w.generatorWorker()
	}
	return w
}
