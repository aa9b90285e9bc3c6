package world

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ChunkLight is the finalized per-channel light data for one chunk, read back
// out of a Space after propagation. Index = (y*Size + z)*Size + x.
type ChunkLight struct {
	Coords ChunkPos
	Size   int
	Height int

	Sunlight []uint8
	Red      []uint8
	Green    []uint8
	Blue     []uint8
}

// NewChunkLight allocates zeroed light data for one chunk.
func NewChunkLight(coords ChunkPos, size, height int) *ChunkLight {
	n := size * height * size
	return &ChunkLight{
		Coords:   coords,
		Size:     size,
		Height:   height,
		Sunlight: make([]uint8, n),
		Red:      make([]uint8, n),
		Green:    make([]uint8, n),
		Blue:     make([]uint8, n),
	}
}

func (l *ChunkLight) index(x, y, z int) int {
	return (y*l.Size+z)*l.Size + x
}

func (l *ChunkLight) inRange(x, y, z int) bool {
	return x >= 0 && x < l.Size && z >= 0 && z < l.Size && y >= 0 && y < l.Height
}

// SunlightAt returns the sunlight level at local coordinates, 0 out of range.
func (l *ChunkLight) SunlightAt(x, y, z int) int {
	if !l.inRange(x, y, z) {
		return 0
	}
	return int(l.Sunlight[l.index(x, y, z)])
}

// RedAt returns the red torch level at local coordinates, 0 out of range.
func (l *ChunkLight) RedAt(x, y, z int) int {
	if !l.inRange(x, y, z) {
		return 0
	}
	return int(l.Red[l.index(x, y, z)])
}

// GreenAt returns the green torch level at local coordinates, 0 out of range.
func (l *ChunkLight) GreenAt(x, y, z int) int {
	if !l.inRange(x, y, z) {
		return 0
	}
	return int(l.Green[l.index(x, y, z)])
}

// BlueAt returns the blue torch level at local coordinates, 0 out of range.
func (l *ChunkLight) BlueAt(x, y, z int) int {
	if !l.inRange(x, y, z) {
		return 0
	}
	return int(l.Blue[l.index(x, y, z)])
}

// Digest returns a content hash of the light data, used for seam diagnostics
// and snapshot integrity checks.
func (l *ChunkLight) Digest() uint64 {
	h := xxhash.New()

	var hdr [24]byte
	binary.LittleEndian.PutUint64(hdr[0:], uint64(int64(l.Coords.X)))
	binary.LittleEndian.PutUint64(hdr[8:], uint64(int64(l.Coords.Z)))
	binary.LittleEndian.PutUint32(hdr[16:], uint32(l.Size))
	binary.LittleEndian.PutUint32(hdr[20:], uint32(l.Height))
	h.Write(hdr[:])

	h.Write(l.Sunlight)
	h.Write(l.Red)
	h.Write(l.Green)
	h.Write(l.Blue)
	return h.Sum64()
}
