package world

import (
	"github.com/voxelworks/voxlight/internal/blocks"
	"github.com/voxelworks/voxlight/internal/world/gen"
)

// Chunk is one generated chunk column plus the metadata derived from it.
// Block data is immutable after generation; Light is attached once a lighting
// computation for the chunk completes.
type Chunk struct {
	Coords ChunkPos
	Min    Vec3 // world coordinate of the (0,0,0) corner

	data    *gen.ChunkData
	heights []int // per column, y of the topmost non-transparent block, -1 if none

	Light *ChunkLight
}

func newChunk(coords ChunkPos, data *gen.ChunkData, registry blocks.Registry) *Chunk {
	c := &Chunk{
		Coords:  coords,
		Min:     Vec3{coords.X * data.Size, 0, coords.Z * data.Size},
		data:    data,
		heights: make([]int, data.Size*data.Size),
	}
	c.computeHeights(registry)
	return c
}

// computeHeights scans each column top-down for the first block that stops
// sunlight. Unknown block ids are treated as opaque.
func (c *Chunk) computeHeights(registry blocks.Registry) {
	size := c.data.Size
	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			h := -1
			for y := c.data.Height - 1; y >= 0; y-- {
				b, ok := registry.ByID(int(c.data.Get(x, y, z)))
				if !ok || !b.Transparent {
					h = y
					break
				}
			}
			c.heights[z*size+x] = h
		}
	}
}

// Block returns the block id at local coordinates, air if out of range.
func (c *Chunk) Block(x, y, z int) uint16 {
	return c.data.Get(x, y, z)
}

// Height returns the column skyline at local coordinates, -1 for an all-air
// column.
func (c *Chunk) Height(x, z int) int {
	if x < 0 || x >= c.data.Size || z < 0 || z >= c.data.Size {
		return -1
	}
	return c.heights[z*c.data.Size+x]
}

// Size returns the horizontal extent of the chunk.
func (c *Chunk) Size() int {
	return c.data.Size
}
