package gen

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseGenerator produces rolling terrain with carved caves and scattered
// emissive blocks, so lit worlds exercise every light channel.
type NoiseGenerator struct {
	size    int
	height  int
	terrain opensimplex.Noise
	detail  opensimplex.Noise
	caves   opensimplex.Noise
	lamps   opensimplex.Noise
}

const (
	baseHeight    = 64.0
	amplitude     = 24.0
	caveThreshold = 0.62
)

// NewNoiseGenerator creates a seeded NoiseGenerator for the given chunk
// dimensions.
func NewNoiseGenerator(seed int64, size, height int) *NoiseGenerator {
	return &NoiseGenerator{
		size:    size,
		height:  height,
		terrain: opensimplex.New(seed),
		detail:  opensimplex.New(seed + 1),
		caves:   opensimplex.New(seed + 2),
		lamps:   opensimplex.New(seed + 3),
	}
}

func (g *NoiseGenerator) Generate(chunkX, chunkZ int) *ChunkData {
	c := NewChunkData(g.size, g.height)

	for x := 0; x < g.size; x++ {
		for z := 0; z < g.size; z++ {
			bx := chunkX*g.size + x
			bz := chunkZ*g.size + z

			h := g.HeightAt(bx, bz)
			g.fillColumn(c, x, z, bx, bz, h)
		}
	}
	return c
}

// HeightAt computes the terrain surface height at a world block coordinate.
func (g *NoiseGenerator) HeightAt(blockX, blockZ int) int {
	nx := float64(blockX) / 128.0
	nz := float64(blockZ) / 128.0
	base := g.octave2(g.terrain, nx, nz, 4, 0.5)

	dx := float64(blockX) / 32.0
	dz := float64(blockZ) / 32.0
	detail := g.octave2(g.detail, dx, dz, 2, 0.5)

	h := int(baseHeight + base*amplitude + detail*4.0)
	if h < 1 {
		h = 1
	}
	if h > g.height-6 {
		h = g.height - 6
	}
	return h
}

// fillColumn fills one block column: bedrock floor, stone body, dirt and grass
// surface, with caves carved out and the occasional lamp on a cave floor.
func (g *NoiseGenerator) fillColumn(c *ChunkData, x, z, bx, bz, height int) {
	c.Set(x, 0, z, blockBedrock)

	for y := 1; y <= height; y++ {
		if g.isCave(bx, y, bz) {
			// Carved out; maybe drop a lamp on the cave floor.
			if id := g.caveLamp(bx, y, bz); id != blockAir {
				c.Set(x, y, z, id)
			}
			continue
		}

		switch {
		case y == height:
			c.Set(x, y, z, blockGrass)
		case y >= height-3:
			c.Set(x, y, z, blockDirt)
		default:
			c.Set(x, y, z, blockStone)
		}
	}
}

func (g *NoiseGenerator) isCave(bx, y, bz int) bool {
	if y < 4 {
		return false
	}
	v := g.caves.Eval3(float64(bx)/48.0, float64(y)/24.0, float64(bz)/48.0)
	return v > caveThreshold
}

// caveLamp occasionally places an emissive block just above a cave floor.
func (g *NoiseGenerator) caveLamp(bx, y, bz int) uint16 {
	if g.isCave(bx, y-1, bz) || y < 5 {
		return blockAir // only on cave floors
	}
	v := g.lamps.Eval3(float64(bx)/3.0, float64(y)/3.0, float64(bz)/3.0)
	switch {
	case v > 0.88:
		return blockGlowstone
	case v < -0.90:
		return blockLantern
	default:
		return blockAir
	}
}

// octave2 sums octaves of 2D noise with the given persistence, normalized
// back into [-1, 1].
func (g *NoiseGenerator) octave2(n opensimplex.Noise, x, z float64, octaves int, persistence float64) float64 {
	var total, frequency, amplitude, maxValue float64 = 0, 1, 1, 0
	for i := 0; i < octaves; i++ {
		total += n.Eval2(x*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxValue
}
