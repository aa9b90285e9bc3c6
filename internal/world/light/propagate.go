package light

import (
	"github.com/voxelworks/voxlight/internal/blocks"
	"github.com/voxelworks/voxlight/internal/world"
)

// Propagate runs the full lighting computation for the chunk the space
// covers: seed the four queues, drain each to exhaustion, and extract the
// finalized per-channel data for the core chunk region.
//
// The channels are mutually independent, so the drain order is unobservable
// in the result; a fixed order keeps runs deterministic. The space is mutated
// in place and must be exclusively owned by this call.
func Propagate(space *world.Space, registry blocks.Registry, params world.Params) *world.ChunkLight {
	qs := Seed(space, registry, params)

	Flood(&qs.Sun, Sunlight, space, registry, params)
	Flood(&qs.Red, Red, space, registry, params)
	Flood(&qs.Green, Green, space, registry, params)
	Flood(&qs.Blue, Blue, space, registry, params)

	return space.ExtractChunkLight()
}
