package world

import (
	"github.com/voxelworks/voxlight/internal/blocks"
)

// Space is a padded voxel region over one chunk plus Margin voxels of each
// horizontal neighbor. It carries private copies of block ids and column
// skylines, plus the four light channels the propagator fills in. A Space is
// exclusively owned by one in-flight lighting computation; nothing here locks.
type Space struct {
	Coords ChunkPos
	Min    Vec3 // world coordinate of the region's origin corner
	Shape  Vec3 // extents along each axis
	Width  int  // horizontal extent (the horizontal axes are square)

	params Params

	blocks  []uint16
	heights []int

	sunlight []uint8
	red      []uint8
	green    []uint8
	blue     []uint8
}

// NewSpace allocates an all-air Space for the chunk at coords. Callers place
// blocks with SetVoxel and then ComputeHeights before lighting.
func NewSpace(coords ChunkPos, params Params) *Space {
	size := params.ChunkSize
	margin := params.Margin
	height := params.MaxHeight
	width := size + 2*margin

	s := &Space{
		Coords:   coords,
		Min:      Vec3{coords.X*size - margin, 0, coords.Z*size - margin},
		Shape:    Vec3{width, height, width},
		Width:    width,
		params:   params,
		blocks:   make([]uint16, width*height*width),
		heights:  make([]int, width*width),
		sunlight: make([]uint8, width*height*width),
		red:      make([]uint8, width*height*width),
		green:    make([]uint8, width*height*width),
		blue:     make([]uint8, width*height*width),
	}
	for i := range s.heights {
		s.heights[i] = -1
	}
	return s
}

// BuildSpace snapshots the chunk at coords and its neighbors into a Space
// ready for lighting. Neighbor chunks are generated on demand so the padding
// always holds real block data.
func (w *World) BuildSpace(coords ChunkPos) *Space {
	s := NewSpace(coords, w.params)
	size := w.params.ChunkSize

	cache := make(map[ChunkPos]*Chunk, 9)
	for lx := 0; lx < s.Width; lx++ {
		for lz := 0; lz < s.Width; lz++ {
			wx := s.Min.X + lx
			wz := s.Min.Z + lz

			cpos := ChunkPos{X: FloorDiv(wx, size), Z: FloorDiv(wz, size)}
			c, ok := cache[cpos]
			if !ok {
				c = w.GetOrGenerateChunk(cpos.X, cpos.Z)
				cache[cpos] = c
			}

			bx, bz := Mod(wx, size), Mod(wz, size)
			s.heights[lz*s.Width+lx] = c.Height(bx, bz)
			for y := 0; y < s.Shape.Y; y++ {
				s.blocks[(y*s.Width+lz)*s.Width+lx] = c.Block(bx, y, bz)
			}
		}
	}
	return s
}

// Contains reports whether a world column falls inside the padded region.
func (s *Space) Contains(vx, vz int) bool {
	lx := vx - s.Min.X
	lz := vz - s.Min.Z
	return lx >= 0 && lx < s.Width && lz >= 0 && lz < s.Width
}

func (s *Space) inRange(vx, vy, vz int) bool {
	return s.Contains(vx, vz) && vy >= 0 && vy < s.Shape.Y
}

func (s *Space) index(vx, vy, vz int) int {
	lx := vx - s.Min.X
	lz := vz - s.Min.Z
	return (vy*s.Width+lz)*s.Width + lx
}

// SetVoxel writes a block id at a world coordinate. Writes outside the region
// are ignored.
func (s *Space) SetVoxel(vx, vy, vz int, id uint16) {
	if !s.inRange(vx, vy, vz) {
		return
	}
	s.blocks[s.index(vx, vy, vz)] = id
}

// GetVoxel returns the block id at a world coordinate, air outside the region.
func (s *Space) GetVoxel(vx, vy, vz int) uint16 {
	if !s.inRange(vx, vy, vz) {
		return 0
	}
	return s.blocks[s.index(vx, vy, vz)]
}

// ComputeHeights rebuilds every column skyline from the block data. BuildSpace
// copies skylines from the chunks instead; this is for spaces assembled by
// hand.
func (s *Space) ComputeHeights(registry blocks.Registry) {
	for lx := 0; lx < s.Width; lx++ {
		for lz := 0; lz < s.Width; lz++ {
			h := -1
			for y := s.Shape.Y - 1; y >= 0; y-- {
				id := s.blocks[(y*s.Width+lz)*s.Width+lx]
				b, ok := registry.ByID(int(id))
				if !ok || !b.Transparent {
					h = y
					break
				}
			}
			s.heights[lz*s.Width+lx] = h
		}
	}
}

// GetMaxHeight returns the column skyline at a world coordinate, -1 for an
// all-air column or a column outside the region.
func (s *Space) GetMaxHeight(vx, vz int) int {
	if !s.Contains(vx, vz) {
		return -1
	}
	return s.heights[(vz-s.Min.Z)*s.Width+(vx-s.Min.X)]
}

// GetSunlight returns the sunlight level at a world coordinate.
func (s *Space) GetSunlight(vx, vy, vz int) int {
	if !s.inRange(vx, vy, vz) {
		return 0
	}
	return int(s.sunlight[s.index(vx, vy, vz)])
}

// SetSunlight writes the sunlight level at a world coordinate.
func (s *Space) SetSunlight(vx, vy, vz, level int) {
	if !s.inRange(vx, vy, vz) {
		return
	}
	s.sunlight[s.index(vx, vy, vz)] = uint8(level)
}

// GetRedLight returns the red torch level at a world coordinate.
func (s *Space) GetRedLight(vx, vy, vz int) int {
	if !s.inRange(vx, vy, vz) {
		return 0
	}
	return int(s.red[s.index(vx, vy, vz)])
}

// SetRedLight writes the red torch level at a world coordinate.
func (s *Space) SetRedLight(vx, vy, vz, level int) {
	if !s.inRange(vx, vy, vz) {
		return
	}
	s.red[s.index(vx, vy, vz)] = uint8(level)
}

// GetGreenLight returns the green torch level at a world coordinate.
func (s *Space) GetGreenLight(vx, vy, vz int) int {
	if !s.inRange(vx, vy, vz) {
		return 0
	}
	return int(s.green[s.index(vx, vy, vz)])
}

// SetGreenLight writes the green torch level at a world coordinate.
func (s *Space) SetGreenLight(vx, vy, vz, level int) {
	if !s.inRange(vx, vy, vz) {
		return
	}
	s.green[s.index(vx, vy, vz)] = uint8(level)
}

// GetBlueLight returns the blue torch level at a world coordinate.
func (s *Space) GetBlueLight(vx, vy, vz int) int {
	if !s.inRange(vx, vy, vz) {
		return 0
	}
	return int(s.blue[s.index(vx, vy, vz)])
}

// SetBlueLight writes the blue torch level at a world coordinate.
func (s *Space) SetBlueLight(vx, vy, vz, level int) {
	if !s.inRange(vx, vy, vz) {
		return
	}
	s.blue[s.index(vx, vy, vz)] = uint8(level)
}

// Params returns the world parameters the space was built with.
func (s *Space) Params() Params {
	return s.params
}

// ExtractChunkLight copies the finalized light values of the core (non-padded)
// chunk region out of the space.
func (s *Space) ExtractChunkLight() *ChunkLight {
	size := s.params.ChunkSize
	margin := s.params.Margin
	l := NewChunkLight(s.Coords, size, s.Shape.Y)

	for y := 0; y < s.Shape.Y; y++ {
		for z := 0; z < size; z++ {
			for x := 0; x < size; x++ {
				src := (y*s.Width+(z+margin))*s.Width + (x + margin)
				dst := l.index(x, y, z)
				l.Sunlight[dst] = s.sunlight[src]
				l.Red[dst] = s.red[src]
				l.Green[dst] = s.green[src]
				l.Blue[dst] = s.blue[src]
			}
		}
	}
	return l
}
