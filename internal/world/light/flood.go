package light

import (
	"github.com/voxelworks/voxlight/internal/blocks"
	"github.com/voxelworks/voxlight/internal/world"
)

var offsets = [6]world.Vec3{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// Flood drains one channel's queue to exhaustion, spreading light outward
// through 6-connected neighbors and mutating the space in place.
//
// Each step attenuates the level by one, with a single exception: a sunlight
// node already at the channel ceiling transmits straight down without decay,
// so an unobstructed open-air column carries full sunlight to the first
// occluder. A neighbor is skipped when it is out of bounds, not transparent,
// or when its own stored value on this channel is already at least the level
// that would be delivered; that last guard is what keeps the BFS bounded while
// still allowing a brighter value to relax a dimmer one. Nodes whose level has
// decayed to zero have nothing left to give and are never enqueued.
func Flood(q *Queue, ch Channel, space *world.Space, registry blocks.Registry, params world.Params) {
	acc := ch.access()
	isSun := ch == Sunlight
	maxLevel := params.MaxLightLevel

	for {
		n, ok := q.Pop()
		if !ok {
			return
		}
		if n.Level <= 0 {
			continue
		}

		for _, d := range offsets {
			nx, ny, nz := n.Voxel.X+d.X, n.Voxel.Y+d.Y, n.Voxel.Z+d.Z
			if ny < 0 || ny >= params.MaxHeight {
				continue
			}
			if !space.Contains(nx, nz) {
				continue
			}

			next := n.Level - 1
			if isSun && d.Y == -1 && n.Level == maxLevel {
				next = n.Level // vertical sunlight shaft
			}
			if next <= 0 {
				continue
			}

			b, ok := registry.ByID(int(space.GetVoxel(nx, ny, nz)))
			if !ok || !b.Transparent {
				continue
			}
			if acc.get(space, nx, ny, nz) >= next {
				continue
			}

			acc.set(space, nx, ny, nz, next)
			q.Push(Node{Voxel: world.Vec3{X: nx, Y: ny, Z: nz}, Level: next})
		}
	}
}
