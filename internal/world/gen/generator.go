package gen

// ChunkData holds the generated block ids for one chunk column.
// Index = (y*Size + z)*Size + x.
type ChunkData struct {
	Size   int
	Height int
	Blocks []uint16
}

// NewChunkData allocates an all-air chunk of the given dimensions.
func NewChunkData(size, height int) *ChunkData {
	return &ChunkData{
		Size:   size,
		Height: height,
		Blocks: make([]uint16, size*height*size),
	}
}

// Set writes a block id at the given local coordinates. Out-of-range
// coordinates are ignored.
func (c *ChunkData) Set(x, y, z int, id uint16) {
	if x < 0 || x >= c.Size || z < 0 || z >= c.Size || y < 0 || y >= c.Height {
		return
	}
	c.Blocks[(y*c.Size+z)*c.Size+x] = id
}

// Get returns the block id at the given local coordinates, air if out of range.
func (c *ChunkData) Get(x, y, z int) uint16 {
	if x < 0 || x >= c.Size || z < 0 || z >= c.Size || y < 0 || y >= c.Height {
		return 0
	}
	return c.Blocks[(y*c.Size+z)*c.Size+x]
}

// Generator produces chunk data deterministically from a seed.
type Generator interface {
	Generate(chunkX, chunkZ int) *ChunkData
	HeightAt(blockX, blockZ int) int
}
