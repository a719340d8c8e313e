package world

import "github.com/go-gl/mathgl/mgl64"

// Loader tracks a view centre moving through a world in block space and
// keeps the surrounding chunk region resident: the streaming front-end used
// by a player camera or any other roaming consumer.
type Loader struct {
	w      *World
	centre ChunkPos
	loaded bool
}

// NewLoader creates a Loader for the world passed. No chunks are loaded
// until the first Move call.
func NewLoader(w *World) *Loader {
	return &Loader{w: w}
}

// Move updates the view centre to the world-space position passed. If the
// centre crossed into a different chunk (or this is the first move), the
// region around it is loaded and chunks outside it are evicted. The number
// of newly resident chunks is returned.
func (l *Loader) Move(pos mgl64.Vec3) int {
	centre := chunkPosFromBlockPos(blockPosFromVec3(pos))
	if l.loaded && centre == l.centre {
		return 0
	}
	l.centre, l.loaded = centre, true

	n := l.w.EnsureRegionLoaded(centre)
	l.w.EvictOutsideRegion(centre)
	return n
}

// Centre returns the chunk position the loader last loaded around. The bool
// is false if the loader has not moved yet.
func (l *Loader) Centre() (ChunkPos, bool) {
	return l.centre, l.loaded
}
