package gen

// Block ids matching the default registry in internal/blocks.
const (
	blockAir       = 0
	blockStone     = 1
	blockDirt      = 2
	blockGrass     = 3
	blockSand      = 4
	blockBedrock   = 5
	blockWater     = 6
	blockGlass     = 7
	blockGlowstone = 8
	blockRedLamp   = 9
	blockGreenLamp = 10
	blockBlueLamp  = 11
	blockLantern   = 12
)

// FlatGenerator generates a superflat world: bedrock at y=0, stone y=1..2,
// dirt y=3, grass y=4.
type FlatGenerator struct {
	size   int
	height int
}

// NewFlatGenerator creates a FlatGenerator for the given chunk dimensions.
func NewFlatGenerator(size, height int) *FlatGenerator {
	return &FlatGenerator{size: size, height: height}
}

func (g *FlatGenerator) Generate(_, _ int) *ChunkData {
	c := NewChunkData(g.size, g.height)

	for x := 0; x < g.size; x++ {
		for z := 0; z < g.size; z++ {
			c.Set(x, 0, z, blockBedrock)
			c.Set(x, 1, z, blockStone)
			c.Set(x, 2, z, blockStone)
			c.Set(x, 3, z, blockDirt)
			c.Set(x, 4, z, blockGrass)
		}
	}
	return c
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	return 4 // top solid block is at y=4 (grass)
}
