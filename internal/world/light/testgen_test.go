package light

import (
	"github.com/voxelworks/voxlight/internal/world"
	"github.com/voxelworks/voxlight/internal/world/gen"
)

// testTerrain is a tiny deterministic generator: rolling stone terrain whose
// height depends only on the world column and seed. No caves, no emitters, so
// every lighting feature it feeds is attributable to terrain shape alone.
type testTerrain struct {
	seed   int64
	size   int
	height int
}

func newTestTerrain(seed int64, p world.Params) *testTerrain {
	return &testTerrain{seed: seed, size: p.ChunkSize, height: p.MaxHeight}
}

func (g *testTerrain) HeightAt(bx, bz int) int {
	v := int64(bx)*2654435761 + int64(bz)*40503 + g.seed*7919
	if v < 0 {
		v = -v
	}
	return 8 + int(v%5)
}

func (g *testTerrain) Generate(cx, cz int) *gen.ChunkData {
	c := gen.NewChunkData(g.size, g.height)
	for x := 0; x < g.size; x++ {
		for z := 0; z < g.size; z++ {
			h := g.HeightAt(cx*g.size+x, cz*g.size+z)
			for y := 0; y <= h; y++ {
				c.Set(x, y, z, idStone)
			}
		}
	}
	return c
}

// flatWithLamp is a superflat floor with one red lamp standing at a fixed
// world position, for seam tests that need a source straddling two chunks.
type flatWithLamp struct {
	size   int
	height int
	lamp   world.Vec3
}

func (g *flatWithLamp) HeightAt(_, _ int) int {
	return 4
}

func (g *flatWithLamp) Generate(cx, cz int) *gen.ChunkData {
	c := gen.NewChunkData(g.size, g.height)
	for x := 0; x < g.size; x++ {
		for z := 0; z < g.size; z++ {
			for y := 0; y <= 4; y++ {
				c.Set(x, y, z, idStone)
			}
		}
	}

	lx := g.lamp.X - cx*g.size
	lz := g.lamp.Z - cz*g.size
	if lx >= 0 && lx < g.size && lz >= 0 && lz < g.size {
		c.Set(lx, g.lamp.Y, lz, idRedLamp)
	}
	return c
}
