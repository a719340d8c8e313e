// Package block defines the closed set of block types that voxels in a world
// may hold.
package block

// Block identifies the material of a single voxel. The zero value is Air, so
// freshly allocated chunk buffers start out empty without initialisation.
type Block uint8

const (
	Air Block = iota
	Bedrock
	Stone
	Dirt
	Grass
	Sand
	OakLog
	OakLeaves

	blockCount
)

// Valid reports whether b is one of the defined block types. It is used when
// decoding chunk data from storage.
func (b Block) Valid() bool {
	return b < blockCount
}

// Solid reports whether the block fully occupies its voxel. Air and leaves are
// not solid: leaves never carry terrain and may be overwritten by growing
// trees.
func (b Block) Solid() bool {
	return b != Air && b != OakLeaves
}

// Replaceable reports whether vegetation may overwrite the block when growing
// into its voxel.
func (b Block) Replaceable() bool {
	return b == Air || b == OakLeaves
}

// String returns the lower-case name of the block type.
func (b Block) String() string {
	switch b {
	case Air:
		return "air"
	case Bedrock:
		return "bedrock"
	case Stone:
		return "stone"
	case Dirt:
		return "dirt"
	case Grass:
		return "grass"
	case Sand:
		return "sand"
	case OakLog:
		return "oak_log"
	case OakLeaves:
		return "oak_leaves"
	}
	return "unknown"
}
