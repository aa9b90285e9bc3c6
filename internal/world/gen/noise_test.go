package gen

import "testing"

func TestNoiseGeneratorDeterministic(t *testing.T) {
	g1 := NewNoiseGenerator(12345, 16, 256)
	g2 := NewNoiseGenerator(12345, 16, 256)

	c1 := g1.Generate(3, -2)
	c2 := g2.Generate(3, -2)

	for i := range c1.Blocks {
		if c1.Blocks[i] != c2.Blocks[i] {
			t.Fatalf("blocks differ at index %d: %d vs %d", i, c1.Blocks[i], c2.Blocks[i])
		}
	}
}

func TestNoiseGeneratorDifferentSeeds(t *testing.T) {
	g1 := NewNoiseGenerator(1, 16, 256)
	g2 := NewNoiseGenerator(2, 16, 256)

	c1 := g1.Generate(0, 0)
	c2 := g2.Generate(0, 0)

	different := false
	for i := range c1.Blocks {
		if c1.Blocks[i] != c2.Blocks[i] {
			different = true
			break
		}
	}
	if !different {
		t.Error("different seeds should produce different terrain")
	}
}

func TestHeightAtRange(t *testing.T) {
	g := NewNoiseGenerator(42, 16, 256)

	for i := 0; i < 1000; i++ {
		h := g.HeightAt(i*7-3500, i*13-6500)
		if h < 1 || h > 250 {
			t.Fatalf("HeightAt out of range: %d", h)
		}
	}
}

func TestNoiseGeneratorBedrockFloor(t *testing.T) {
	g := NewNoiseGenerator(7, 16, 256)
	c := g.Generate(0, 0)

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			if c.Get(x, 0, z) != blockBedrock {
				t.Fatalf("missing bedrock at (%d,0,%d)", x, z)
			}
		}
	}
}

func TestFlatGenerator(t *testing.T) {
	g := NewFlatGenerator(16, 64)
	c := g.Generate(5, 5)

	if c.Get(0, 4, 0) != blockGrass {
		t.Errorf("block at y=4 = %d, want grass (%d)", c.Get(0, 4, 0), blockGrass)
	}
	if c.Get(8, 5, 8) != blockAir {
		t.Errorf("block at y=5 = %d, want air", c.Get(8, 5, 8))
	}
	if g.HeightAt(100, -100) != 4 {
		t.Errorf("HeightAt = %d, want 4", g.HeightAt(100, -100))
	}
}

func TestChunkDataOutOfRange(t *testing.T) {
	c := NewChunkData(16, 64)
	c.Set(-1, 0, 0, 5)
	c.Set(0, 64, 0, 5)
	if c.Get(-1, 0, 0) != 0 || c.Get(0, 64, 0) != 0 {
		t.Error("out-of-range access should read as air")
	}
}
