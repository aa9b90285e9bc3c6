package light

import (
	"github.com/voxelworks/voxlight/internal/blocks"
	"github.com/voxelworks/voxlight/internal/world"
)

// Queues holds the four per-channel work queues produced by seeding.
type Queues struct {
	Sun   Queue
	Red   Queue
	Green Queue
	Blue  Queue
}

var horizontals = [4]world.Vec3{
	{X: 1}, {X: -1}, {Z: 1}, {Z: -1},
}

// Seed scans the interior of the space and builds the initial work queues.
//
// Every transparent voxel strictly above its column's skyline is direct sky:
// it gets full sunlight immediately and needs no queue entry of its own.
// Queue entries exist for the shadow boundaries — columns whose skyline is
// locally lower, where lateral spread has to carry sunlight into cave mouths,
// overhangs and cliffs — and for emissive blocks, which seed the three color
// queues. Initial light values are written into the space as seeding occurs.
//
// The outermost ring of the padded region is skipped: it exists to receive
// propagated light from neighbors, never to originate it.
func Seed(space *world.Space, registry blocks.Registry, params world.Params) *Queues {
	qs := &Queues{}
	maxLevel := params.MaxLightLevel
	seeded := make(map[world.Vec3]struct{})

	for vx := space.Min.X + 1; vx < space.Min.X+space.Width-1; vx++ {
		for vz := space.Min.Z + 1; vz < space.Min.Z+space.Width-1; vz++ {
			h := space.GetMaxHeight(vx, vz)

			for vy := params.MaxHeight - 1; vy >= 0; vy-- {
				b, ok := registry.ByID(int(space.GetVoxel(vx, vy, vz)))
				if !ok {
					continue
				}

				if vy > h && b.Transparent {
					space.SetSunlight(vx, vy, vz, maxLevel)

					for _, d := range horizontals {
						nx, nz := vx+d.X, vz+d.Z
						if !space.Contains(nx, nz) {
							continue
						}
						if space.GetMaxHeight(nx, nz) >= vy {
							continue
						}
						nb, ok := registry.ByID(int(space.GetVoxel(nx, vy, nz)))
						if !ok || !nb.Transparent {
							continue
						}

						voxel := world.Vec3{X: nx, Y: vy, Z: nz}
						if _, dup := seeded[voxel]; dup {
							continue
						}
						seeded[voxel] = struct{}{}

						space.SetSunlight(nx, vy, nz, maxLevel)
						qs.Sun.Push(Node{Voxel: voxel, Level: maxLevel})
					}
				}

				if b.IsLight() {
					voxel := world.Vec3{X: vx, Y: vy, Z: vz}
					seedEmitter(&qs.Red, Red, space, voxel, b, maxLevel)
					seedEmitter(&qs.Green, Green, space, voxel, b, maxLevel)
					seedEmitter(&qs.Blue, Blue, space, voxel, b, maxLevel)
				}
			}
		}
	}
	return qs
}

// seedEmitter writes a block's emission into the space and enqueues it on the
// channel's queue, clamped to the channel ceiling.
func seedEmitter(q *Queue, ch Channel, space *world.Space, voxel world.Vec3, b blocks.Block, maxLevel int) {
	level := ch.emission(b)
	if level <= 0 {
		return
	}
	if level > maxLevel {
		level = maxLevel
	}
	ch.access().set(space, voxel.X, voxel.Y, voxel.Z, level)
	q.Push(Node{Voxel: voxel, Level: level})
}
