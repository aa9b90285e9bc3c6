package light

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelworks/voxlight/internal/blocks"
	"github.com/voxelworks/voxlight/internal/world"
)

// Two adjacent chunks computed independently must agree on the light around
// their shared boundary when the source sits at the seam.
func TestChunkSeamContinuityTorch(t *testing.T) {
	p := testParams()
	lamp := world.Vec3{X: 16, Y: 5, Z: 8} // first column of chunk (1,0)
	g := &flatWithLamp{size: p.ChunkSize, height: p.MaxHeight, lamp: lamp}
	w := world.NewWorld(g, blocks.Default(), p)

	left := Propagate(w.BuildSpace(world.ChunkPos{X: 0, Z: 0}), w.Registry(), p)
	right := Propagate(w.BuildSpace(world.ChunkPos{X: 1, Z: 0}), w.Registry(), p)

	redAt := func(vx, vy, vz int) int {
		if vx < p.ChunkSize {
			return left.RedAt(vx, vy, vz)
		}
		return right.RedAt(vx-p.ChunkSize, vy, vz)
	}

	// Both sides of the seam match the analytic diamond falloff.
	for vx := 12; vx <= 20; vx++ {
		for vz := 4; vz <= 12; vz++ {
			for vy := 5; vy <= 9; vy++ {
				v := world.Vec3{X: vx, Y: vy, Z: vz}
				want := p.MaxLightLevel - manhattan(v, lamp)
				if want < 0 {
					want = 0
				}
				if v == lamp {
					want = p.MaxLightLevel
				}
				require.Equal(t, want, redAt(vx, vy, vz), "red at %v", v)
			}
		}
	}

	// Adjacent boundary voxels never differ by more than one step.
	for vz := 0; vz < p.ChunkSize; vz++ {
		for vy := 5; vy < 24; vy++ {
			a := left.RedAt(p.ChunkSize-1, vy, vz)
			b := right.RedAt(0, vy, vz)
			diff := a - b
			if diff < 0 {
				diff = -diff
			}
			require.LessOrEqual(t, diff, 1, "seam jump at z=%d y=%d: %d vs %d", vz, vy, a, b)
		}
	}
}

// Sunlight on both sides of a seam must agree for terrain computed with
// correct neighbor padding.
func TestChunkSeamContinuitySunlight(t *testing.T) {
	p := testParams()
	w := world.NewWorld(newTestTerrain(1234, p), blocks.Default(), p)

	left := Propagate(w.BuildSpace(world.ChunkPos{X: 0, Z: 0}), w.Registry(), p)
	right := Propagate(w.BuildSpace(world.ChunkPos{X: 1, Z: 0}), w.Registry(), p)

	leftChunk := w.GetOrGenerateChunk(0, 0)
	rightChunk := w.GetOrGenerateChunk(1, 0)

	for vz := 0; vz < p.ChunkSize; vz++ {
		ha := leftChunk.Height(p.ChunkSize-1, vz)
		hb := rightChunk.Height(0, vz)

		// Above both skylines, both sides saturate.
		for vy := max(ha, hb) + 1; vy < p.MaxHeight; vy++ {
			require.Equal(t, p.MaxLightLevel, left.SunlightAt(p.ChunkSize-1, vy, vz))
			require.Equal(t, p.MaxLightLevel, right.SunlightAt(0, vy, vz))
		}

		// Along the whole seam column, adjacent values stay within one step
		// of each other whenever both voxels are air.
		for vy := 0; vy < p.MaxHeight; vy++ {
			if leftChunk.Block(p.ChunkSize-1, vy, vz) != 0 || rightChunk.Block(0, vy, vz) != 0 {
				continue
			}
			a := left.SunlightAt(p.ChunkSize-1, vy, vz)
			b := right.SunlightAt(0, vy, vz)
			diff := a - b
			if diff < 0 {
				diff = -diff
			}
			require.LessOrEqual(t, diff, 1, "sun seam jump at z=%d y=%d: %d vs %d", vz, vy, a, b)
		}
	}
}

// Boundedness and occlusion over generated terrain: every value stays within
// the channel ceiling and opaque voxels hold nothing they did not emit.
func TestPropagateBoundsAndOcclusion(t *testing.T) {
	p := testParams()
	w := world.NewWorld(newTestTerrain(555, p), blocks.Default(), p)

	coords := world.ChunkPos{X: 0, Z: 0}
	l := Propagate(w.BuildSpace(coords), w.Registry(), p)
	c := w.GetOrGenerateChunk(0, 0)

	for x := 0; x < p.ChunkSize; x++ {
		for z := 0; z < p.ChunkSize; z++ {
			for y := 0; y < p.MaxHeight; y++ {
				for _, v := range []int{l.SunlightAt(x, y, z), l.RedAt(x, y, z), l.GreenAt(x, y, z), l.BlueAt(x, y, z)} {
					require.GreaterOrEqual(t, v, 0)
					require.LessOrEqual(t, v, p.MaxLightLevel)
				}

				if c.Block(x, y, z) == idStone {
					require.Zero(t, l.SunlightAt(x, y, z), "sunlight in stone at (%d,%d,%d)", x, y, z)
					require.Zero(t, l.RedAt(x, y, z), "red in stone at (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
}
