package world

import "fmt"

// Params are the world-level scalars every lighting computation needs.
type Params struct {
	ChunkSize     int // horizontal chunk extent in voxels
	MaxHeight     int // vertical world extent
	MaxLightLevel int // channel ceiling
	Margin        int // padding voxels around a chunk absorbing cross-chunk bleed
}

// DefaultParams returns the standard 16×256 world with nibble-sized light levels.
func DefaultParams() Params {
	return Params{ChunkSize: 16, MaxHeight: 256, MaxLightLevel: 15, Margin: 4}
}

// Validate checks that the parameters can support a lighting computation.
func (p Params) Validate() error {
	if p.ChunkSize <= 0 {
		return fmt.Errorf("chunk size %d must be positive", p.ChunkSize)
	}
	if p.MaxHeight <= 0 {
		return fmt.Errorf("max height %d must be positive", p.MaxHeight)
	}
	if p.MaxLightLevel <= 0 || p.MaxLightLevel > 15 {
		return fmt.Errorf("max light level %d must be in [1,15]", p.MaxLightLevel)
	}
	if p.Margin < 1 || p.Margin >= p.ChunkSize {
		return fmt.Errorf("margin %d must be in [1,%d)", p.Margin, p.ChunkSize)
	}
	return nil
}
